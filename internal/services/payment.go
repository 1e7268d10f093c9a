package services

import (
	"context"

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

type PaymentService struct {
	paymentRepo  repositories.PaymentRepositoryInterface
	orderRepo    repositories.OrderRepositoryInterface
	billRepo     repositories.BillRepositoryInterface
	invoiceRepo  repositories.InvoiceRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	activityRepo repositories.ActivityLogRepositoryInterface
	txm          repositories.TxManagerInterface
	bus          *eventbus.Bus
	logger       *zap.Logger
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	billRepo repositories.BillRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	activityRepo repositories.ActivityLogRepositoryInterface,
	txm repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		orderRepo:    orderRepo,
		billRepo:     billRepo,
		invoiceRepo:  invoiceRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		txm:          txm,
		bus:          bus,
		logger:       logger,
	}
}

// RecordPayment books a received payment against the order, folds it into
// the bill's advance, and rolls the invoice status forward, atomically.
func (s *PaymentService) RecordPayment(ctx context.Context, payload dto.CreatePaymentDTO) (*dto.PaymentDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewInvalidInputError("amount must be a positive amount")
	}

	order, err := s.orderRepo.FindOrder(ctx, payload.OrderID)
	if err != nil {
		return nil, err
	}
	mode, err := s.paymentRepo.FindPaymentMode(ctx, payload.PaymentModeID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("payment mode %d does not exist", payload.PaymentModeID)
	}
	if !mode.IsActive {
		return nil, apperrors.NewInvalidInputError("payment mode %q is not active", mode.Name)
	}

	invoice, err := s.invoiceRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	var created *entities.Payment
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		created, err = s.paymentRepo.CreateInTx(ctx, tx, entities.Payment{
			OrderID:       order.ID,
			InvoiceID:     &invoice.ID,
			PaymentModeID: mode.ID,
			Amount:        amount,
			Status:        constants.PaymentCompleted,
			Reference:     payload.Reference,
			Notes:         payload.Notes,
			ReceivedByID:  actorID,
		})
		if err != nil {
			return err
		}

		if err := s.billRepo.AddAdvanceInTx(ctx, tx, order.ID, amount); err != nil {
			return err
		}
		bill, err := s.billRepo.FindByOrderIDInTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}

		// Settlement is judged from the payments ledger, not the bill's
		// advance, so refunded or failed rows never count.
		paid, err := s.paymentRepo.SumCompletedInTx(ctx, tx, order.ID)
		if err != nil {
			return err
		}
		invoiceStatus := constants.InvoicePartiallyPaid
		if paid.GreaterThanOrEqual(bill.TotalAmount) {
			invoiceStatus = constants.InvoicePaid
		}
		if err := s.invoiceRepo.SetStatusInTx(ctx, tx, invoice.ID, invoiceStatus); err != nil {
			return err
		}

		return s.activityRepo.CreateInTx(ctx, tx, entities.ActivityLog{
			ActorID:    actorID,
			Action:     constants.ActionCreate,
			EntityType: constants.EntityPayment,
			EntityID:   created.ID,
			Details:    utils.Ptr(order.OrderNumber + " " + amount.StringFixed(2)),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.Uint64("orderID", order.ID),
		zap.Uint64("paymentID", created.ID),
		zap.String("amount", amount.StringFixed(2)))

	s.bus.Publish(ctx, events.PaymentRecorded{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PaymentID:   created.ID,
		Amount:      amount.StringFixed(2),
		ActorID:     actorID,
	})

	return s.paymentToDTO(ctx, created, mode.Name)
}

func (s *PaymentService) GetPaymentsByOrder(ctx context.Context, orderID uint64) (*dto.PaymentListResponseDTO, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	modes, err := s.paymentRepo.GetPaymentModes(ctx)
	if err != nil {
		return nil, err
	}
	modeNames := make(map[uint64]string, len(modes))
	for _, m := range modes {
		modeNames[m.ID] = m.Name
	}

	list := make([]dto.PaymentDTO, 0, len(payments))
	for i := range payments {
		p, err := s.paymentToDTO(ctx, &payments[i], modeNames[payments[i].PaymentModeID])
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return &dto.PaymentListResponseDTO{List: list, TotalCount: uint64(len(list))}, nil
}

func (s *PaymentService) GetPaymentModes(ctx context.Context) ([]dto.PaymentModeDTO, error) {
	modes, err := s.paymentRepo.GetPaymentModes(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]dto.PaymentModeDTO, 0, len(modes))
	for _, m := range modes {
		list = append(list, dto.PaymentModeDTO{ID: m.ID, Code: m.Code, Name: m.Name, IsActive: m.IsActive})
	}
	return list, nil
}

func (s *PaymentService) paymentToDTO(ctx context.Context, p *entities.Payment, modeName string) (*dto.PaymentDTO, error) {
	receivedBy := dto.ShortUserDTO{ID: p.ReceivedByID}
	if user, err := s.userRepo.FindUser(ctx, p.ReceivedByID); err == nil {
		receivedBy.FullName = user.FullName
	}
	return &dto.PaymentDTO{
		ID:          p.ID,
		OrderID:     p.OrderID,
		InvoiceID:   p.InvoiceID,
		PaymentMode: modeName,
		Amount:      p.Amount.StringFixed(2),
		Status:      p.Status,
		Reference:   p.Reference,
		Notes:       p.Notes,
		ReceivedBy:  receivedBy,
		PaidAt:      utils.FormatTimestamp(p.PaidAt),
	}, nil
}
