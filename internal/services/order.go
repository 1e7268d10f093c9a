package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/events"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/eventbus"
	"tailorshop/pkg/utils"
)

const (
	counterScopeOrder   = "order"
	counterScopeInvoice = "invoice"
)

// FormatOrderNumber renders the ORD-YYYY-NNNN business number.
func FormatOrderNumber(year, seq int) string {
	return fmt.Sprintf("ORD-%d-%04d", year, seq)
}

// FormatInvoiceNumber renders the INV-YYYY-NNNN business number.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

type OrderService struct {
	orderRepo    repositories.OrderRepositoryInterface
	counterRepo  repositories.CounterRepositoryInterface
	garmentRepo  repositories.GarmentTypeRepositoryInterface
	workTypeRepo repositories.WorkTypeRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	billRepo     repositories.BillRepositoryInterface
	invoiceRepo  repositories.InvoiceRepositoryInterface
	configRepo   repositories.ConfigRepositoryInterface
	activityRepo repositories.ActivityLogRepositoryInterface
	registry     *StatusRegistryService
	txm          repositories.TxManagerInterface
	bus          *eventbus.Bus
	logger       *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	counterRepo repositories.CounterRepositoryInterface,
	garmentRepo repositories.GarmentTypeRepositoryInterface,
	workTypeRepo repositories.WorkTypeRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	billRepo repositories.BillRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	configRepo repositories.ConfigRepositoryInterface,
	activityRepo repositories.ActivityLogRepositoryInterface,
	registry *StatusRegistryService,
	txm repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		counterRepo:  counterRepo,
		garmentRepo:  garmentRepo,
		workTypeRepo: workTypeRepo,
		customerRepo: customerRepo,
		billRepo:     billRepo,
		invoiceRepo:  invoiceRepo,
		configRepo:   configRepo,
		activityRepo: activityRepo,
		registry:     registry,
		txm:          txm,
		bus:          bus,
		logger:       logger,
	}
}

// CreateOrder books a new order: it snapshots garment and work type pricing,
// derives the initial bill, and issues the invoice, all in one transaction.
// The order always starts in the booked status.
func (s *OrderService) CreateOrder(ctx context.Context, payload dto.CreateOrderDTO) (*dto.OrderResponseDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomer(ctx, payload.CustomerID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("customer %d does not exist", payload.CustomerID)
	}
	garment, err := s.garmentRepo.FindGarmentType(ctx, payload.GarmentTypeID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("garment type %d does not exist", payload.GarmentTypeID)
	}
	if !garment.IsActive {
		return nil, apperrors.NewInvalidInputError("garment type %q is not active", garment.Name)
	}

	expectedDelivery, err := time.Parse("2006-01-02", payload.ExpectedDeliveryDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("expected_delivery_date must be YYYY-MM-DD")
	}

	advance := decimal.Zero
	if payload.AdvanceAmount != "" {
		advance, err = decimal.NewFromString(payload.AdvanceAmount)
		if err != nil || advance.IsNegative() {
			return nil, apperrors.NewInvalidInputError("advance_amount must be a non-negative amount")
		}
	}

	workTypes, err := s.workTypeRepo.FindWorkTypesByIDs(ctx, payload.WorkTypeIDs)
	if err != nil {
		return nil, err
	}
	if len(workTypes) != len(payload.WorkTypeIDs) {
		return nil, apperrors.NewInvalidInputError("one or more work types do not exist")
	}
	includedInBase, err := s.garmentRepo.GetIncludedWorkTypeIDs(ctx, garment.ID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.registry.FindStatusByCode(ctx, constants.StatusBooked)
	if err != nil {
		return nil, err
	}

	var created *entities.Order
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		year := time.Now().Year()
		orderSeq, err := s.counterRepo.NextNumberInTx(ctx, tx, counterScopeOrder, year)
		if err != nil {
			return err
		}

		order := entities.Order{
			OrderNumber:          FormatOrderNumber(year, orderSeq),
			CustomerID:           customer.ID,
			GarmentTypeID:        garment.ID,
			CurrentStatusID:      booked.ID,
			ExpectedDeliveryDate: expectedDelivery,
			IsUrgent:             payload.IsUrgent,
			UrgencyMultiplier:    cfg.UrgencyMultiplier,
			SpecialInstructions:  payload.SpecialInstructions,
		}
		created, err = s.orderRepo.CreateOrderInTx(ctx, tx, order)
		if err != nil {
			return err
		}

		// Work types included in the garment's base price are attached with
		// a zero charge so the snapshot still records what was requested.
		workCharges := make([]decimal.Decimal, 0, len(workTypes))
		for _, wt := range workTypes {
			charge := wt.ExtraCharge
			if includedInBase[wt.ID] {
				charge = decimal.Zero
			}
			if err := s.orderRepo.AddOrderWorkTypeInTx(ctx, tx, entities.OrderWorkType{
				OrderID:     created.ID,
				WorkTypeID:  wt.ID,
				ExtraCharge: charge,
			}); err != nil {
				return err
			}
			workCharges = append(workCharges, charge)
		}

		bill := ComputeBill(BillingInput{
			BaseGarmentPrice:  garment.BasePrice,
			WorkTypeCharges:   workCharges,
			IsUrgent:          payload.IsUrgent,
			UrgencyMultiplier: cfg.UrgencyMultiplier,
			TaxRate:           cfg.TaxRate,
			AdvanceAmount:     advance,
		})
		bill.OrderID = created.ID
		createdBill, err := s.billRepo.CreateInTx(ctx, tx, bill)
		if err != nil {
			return err
		}

		invoiceSeq, err := s.counterRepo.NextNumberInTx(ctx, tx, counterScopeInvoice, year)
		if err != nil {
			return err
		}
		invoiceDate := time.Now()
		_, err = s.invoiceRepo.CreateInTx(ctx, tx, entities.Invoice{
			InvoiceNumber: FormatInvoiceNumber(year, invoiceSeq),
			BillID:        createdBill.ID,
			OrderID:       created.ID,
			InvoiceDate:   invoiceDate,
			DueDate:       invoiceDueDate(invoiceDate, cfg.InvoiceDueDays),
			CustomerName:  customer.FullName,
			CustomerPhone: customer.Phone,
			Status:        constants.InvoiceIssued,
			GeneratedByID: actorID,
		})
		if err != nil {
			return err
		}

		return s.activityRepo.CreateInTx(ctx, tx, entities.ActivityLog{
			ActorID:    actorID,
			Action:     constants.ActionCreate,
			EntityType: constants.EntityOrder,
			EntityID:   created.ID,
			Details:    utils.Ptr(created.OrderNumber),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint64("orderID", created.ID),
		zap.String("orderNumber", created.OrderNumber),
		zap.Uint64("actorID", actorID))

	s.bus.Publish(ctx, events.OrderCreated{
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		CustomerID:  customer.ID,
		ActorID:     actorID,
	})

	return s.FindOrder(ctx, created.ID)
}

func (s *OrderService) FindOrder(ctx context.Context, id uint64) (*dto.OrderResponseDTO, error) {
	detail, err := s.orderRepo.FindOrderDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	workTypes, err := s.orderRepo.GetOrderWorkTypes(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, wt := range workTypes {
		detail.WorkTypes = append(detail.WorkTypes, dto.OrderWorkTypeDTO{
			WorkTypeID:  wt.WorkTypeID,
			Name:        wt.WorkTypeName,
			ExtraCharge: wt.ExtraCharge.StringFixed(2),
		})
	}
	return detail, nil
}

func (s *OrderService) GetOrders(ctx context.Context, limit, offset uint64, filter dto.OrderFilterDTO) (*dto.OrderListResponseDTO, error) {
	orders, total, err := s.orderRepo.GetOrders(ctx, limit, offset, filter)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponseDTO{List: orders, TotalCount: total}, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateOrderDTO) (*dto.OrderResponseDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateOrder(ctx, id, payload); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Create(ctx, entities.ActivityLog{
		ActorID:    actorID,
		Action:     constants.ActionUpdate,
		EntityType: constants.EntityOrder,
		EntityID:   id,
	}); err != nil {
		s.logger.Warn("failed to write activity log", zap.Uint64("orderID", id), zap.Error(err))
	}
	return s.FindOrder(ctx, id)
}

// DeleteOrder soft-deletes. Orders that have progressed past booking keep
// their paper trail and must be closed through the lifecycle instead.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	order, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return err
	}
	booked, err := s.registry.FindStatusByCode(ctx, constants.StatusBooked)
	if err != nil {
		return err
	}
	if order.CurrentStatusID != booked.ID {
		return apperrors.NewInvalidInputError("only booked orders can be deleted")
	}
	if err := s.orderRepo.SoftDeleteOrder(ctx, id); err != nil {
		return err
	}
	if err := s.activityRepo.Create(ctx, entities.ActivityLog{
		ActorID:    actorID,
		Action:     constants.ActionDelete,
		EntityType: constants.EntityOrder,
		EntityID:   id,
		Details:    utils.Ptr(order.OrderNumber),
	}); err != nil {
		s.logger.Warn("failed to write activity log", zap.Uint64("orderID", id), zap.Error(err))
	}
	return nil
}
