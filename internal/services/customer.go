package services

import (
	"context"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/constants"
	"tailorshop/pkg/utils"
)

type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	activityRepo repositories.ActivityLogRepositoryInterface
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	activityRepo repositories.ActivityLogRepositoryInterface,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (s *CustomerService) GetCustomers(ctx context.Context, limit, offset uint64, search string) (*dto.CustomerListResponseDTO, error) {
	customers, total, err := s.customerRepo.GetCustomers(ctx, limit, offset, search)
	if err != nil {
		return nil, err
	}
	list := make([]dto.CustomerDTO, 0, len(customers))
	for i := range customers {
		list = append(list, customerToDTO(&customers[i]))
	}
	return &dto.CustomerListResponseDTO{List: list, TotalCount: total}, nil
}

func (s *CustomerService) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.FindCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customerDTO := customerToDTO(customer)
	return &customerDTO, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	created, err := s.customerRepo.CreateCustomer(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := s.activityRepo.Create(ctx, entities.ActivityLog{
		ActorID:    actorID,
		Action:     constants.ActionCreate,
		EntityType: constants.EntityCustomer,
		EntityID:   created.ID,
	}); err != nil {
		s.logger.Warn("failed to write activity log", zap.Uint64("customerID", created.ID), zap.Error(err))
	}
	customerDTO := customerToDTO(created)
	return &customerDTO, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	updated, err := s.customerRepo.UpdateCustomer(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	customerDTO := customerToDTO(updated)
	return &customerDTO, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	return s.customerRepo.SoftDeleteCustomer(ctx, id)
}

func (s *CustomerService) AddMeasurement(ctx context.Context, customerID uint64, payload dto.CreateMeasurementDTO) (*dto.MeasurementDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.FindCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	created, err := s.customerRepo.CreateMeasurement(ctx, entities.Measurement{
		CustomerID: customerID,
		Name:       payload.Name,
		Value:      payload.Value,
		Unit:       payload.Unit,
		TakenByID:  actorID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.MeasurementDTO{
		ID:      created.ID,
		Name:    created.Name,
		Value:   created.Value,
		Unit:    created.Unit,
		TakenAt: utils.FormatTimestamp(created.TakenAt),
	}, nil
}

func (s *CustomerService) GetMeasurements(ctx context.Context, customerID uint64) ([]dto.MeasurementDTO, error) {
	if _, err := s.customerRepo.FindCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	measurements, err := s.customerRepo.GetMeasurements(ctx, customerID)
	if err != nil {
		return nil, err
	}
	list := make([]dto.MeasurementDTO, 0, len(measurements))
	for _, m := range measurements {
		list = append(list, dto.MeasurementDTO{
			ID:      m.ID,
			Name:    m.Name,
			Value:   m.Value,
			Unit:    m.Unit,
			TakenAt: utils.FormatTimestamp(m.TakenAt),
		})
	}
	return list, nil
}

func customerToDTO(c *entities.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: utils.FormatTimestamp(c.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(c.UpdatedAt),
	}
}
