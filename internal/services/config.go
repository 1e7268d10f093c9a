package services

import (
	"context"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/utils"
)

type ConfigService struct {
	configRepo repositories.ConfigRepositoryInterface
	logger     *zap.Logger
}

func NewConfigService(configRepo repositories.ConfigRepositoryInterface, logger *zap.Logger) *ConfigService {
	return &ConfigService{configRepo: configRepo, logger: logger}
}

func (s *ConfigService) Get(ctx context.Context) (*dto.SystemConfigurationDTO, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return configToDTO(cfg), nil
}

// Update changes the shop defaults. New values apply to orders created after
// the change; existing orders keep the rates snapshotted on their bills.
func (s *ConfigService) Update(ctx context.Context, payload dto.UpdateSystemConfigurationDTO) (*dto.SystemConfigurationDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := s.configRepo.Update(ctx, payload, actorID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("system configuration updated", zap.Uint64("updatedBy", actorID))
	return configToDTO(updated), nil
}

func configToDTO(c *entities.SystemConfiguration) *dto.SystemConfigurationDTO {
	return &dto.SystemConfigurationDTO{
		ShopName:          c.ShopName,
		TaxRate:           c.TaxRate.StringFixed(2),
		UrgencyMultiplier: c.UrgencyMultiplier.String(),
		InvoiceDueDays:    c.InvoiceDueDays,
		CurrencyCode:      c.CurrencyCode,
		UpdatedAt:         utils.FormatTimestamp(c.UpdatedAt),
	}
}
