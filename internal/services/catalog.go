package services

import (
	"context"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/utils"
)

type CatalogService struct {
	garmentRepo  repositories.GarmentTypeRepositoryInterface
	workTypeRepo repositories.WorkTypeRepositoryInterface
	logger       *zap.Logger
}

func NewCatalogService(
	garmentRepo repositories.GarmentTypeRepositoryInterface,
	workTypeRepo repositories.WorkTypeRepositoryInterface,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		garmentRepo:  garmentRepo,
		workTypeRepo: workTypeRepo,
		logger:       logger,
	}
}

func (s *CatalogService) GetGarmentTypes(ctx context.Context, limit, offset uint64, search string) ([]dto.GarmentTypeDTO, uint64, error) {
	garments, total, err := s.garmentRepo.GetGarmentTypes(ctx, limit, offset, search)
	if err != nil {
		return nil, 0, err
	}
	list := make([]dto.GarmentTypeDTO, 0, len(garments))
	for i := range garments {
		list = append(list, garmentTypeToDTO(&garments[i]))
	}
	return list, total, nil
}

func (s *CatalogService) FindGarmentType(ctx context.Context, id uint64) (*dto.GarmentTypeDTO, error) {
	garment, err := s.garmentRepo.FindGarmentType(ctx, id)
	if err != nil {
		return nil, err
	}
	garmentDTO := garmentTypeToDTO(garment)
	return &garmentDTO, nil
}

func (s *CatalogService) CreateGarmentType(ctx context.Context, payload dto.CreateGarmentTypeDTO) (*dto.GarmentTypeDTO, error) {
	created, err := s.garmentRepo.CreateGarmentType(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("garment type created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	garmentDTO := garmentTypeToDTO(created)
	return &garmentDTO, nil
}

func (s *CatalogService) UpdateGarmentType(ctx context.Context, id uint64, payload dto.UpdateGarmentTypeDTO) (*dto.GarmentTypeDTO, error) {
	updated, err := s.garmentRepo.UpdateGarmentType(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	garmentDTO := garmentTypeToDTO(updated)
	return &garmentDTO, nil
}

func (s *CatalogService) GetWorkTypes(ctx context.Context) ([]dto.WorkTypeDTO, error) {
	workTypes, err := s.workTypeRepo.GetWorkTypes(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]dto.WorkTypeDTO, 0, len(workTypes))
	for i := range workTypes {
		list = append(list, workTypeToDTO(&workTypes[i]))
	}
	return list, nil
}

func (s *CatalogService) CreateWorkType(ctx context.Context, payload dto.CreateWorkTypeDTO) (*dto.WorkTypeDTO, error) {
	created, err := s.workTypeRepo.CreateWorkType(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("work type created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	workTypeDTO := workTypeToDTO(created)
	return &workTypeDTO, nil
}

func (s *CatalogService) UpdateWorkType(ctx context.Context, id uint64, payload dto.UpdateWorkTypeDTO) (*dto.WorkTypeDTO, error) {
	updated, err := s.workTypeRepo.UpdateWorkType(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	workTypeDTO := workTypeToDTO(updated)
	return &workTypeDTO, nil
}

func garmentTypeToDTO(g *entities.GarmentType) dto.GarmentTypeDTO {
	return dto.GarmentTypeDTO{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		BasePrice:     g.BasePrice.StringFixed(2),
		EstimatedDays: g.EstimatedDays,
		IsActive:      g.IsActive,
		CreatedAt:     utils.FormatTimestamp(g.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(g.UpdatedAt),
	}
}

func workTypeToDTO(w *entities.WorkType) dto.WorkTypeDTO {
	return dto.WorkTypeDTO{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		ExtraCharge: w.ExtraCharge.StringFixed(2),
		IsActive:    w.IsActive,
		CreatedAt:   utils.FormatTimestamp(w.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(w.UpdatedAt),
	}
}
