package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

// preconditionCheck verifies a named business rule against the order while
// the transition transaction holds the order's row lock.
type preconditionCheck func(ctx context.Context, tx pgx.Tx, order *entities.Order) error

// OrderLifecycleService owns every status change: it validates the requested
// edge against the transition table, checks the actor's roles, evaluates the
// edge's precondition, and applies the move together with its history record
// in one transaction.
type OrderLifecycleService struct {
	registry     *StatusRegistryService
	orderRepo    repositories.OrderRepositoryInterface
	historyRepo  repositories.OrderHistoryRepositoryInterface
	paymentRepo  repositories.PaymentRepositoryInterface
	activityRepo repositories.ActivityLogRepositoryInterface
	txm          repositories.TxManagerInterface
	bus          *eventbus.Bus
	logger       *zap.Logger

	preconditions map[string]preconditionCheck
}

func NewOrderLifecycleService(
	registry *StatusRegistryService,
	orderRepo repositories.OrderRepositoryInterface,
	historyRepo repositories.OrderHistoryRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	activityRepo repositories.ActivityLogRepositoryInterface,
	txm repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *OrderLifecycleService {
	s := &OrderLifecycleService{
		registry:     registry,
		orderRepo:    orderRepo,
		historyRepo:  historyRepo,
		paymentRepo:  paymentRepo,
		activityRepo: activityRepo,
		txm:          txm,
		bus:          bus,
		logger:       logger,
	}
	s.preconditions = map[string]preconditionCheck{
		constants.PreconditionPaymentCompleted: s.checkPaymentCompleted,
	}
	return s
}

func (s *OrderLifecycleService) checkPaymentCompleted(ctx context.Context, tx pgx.Tx, order *entities.Order) error {
	covered, err := s.paymentRepo.HasCompletedPayment(ctx, tx, order.ID)
	if err != nil {
		return err
	}
	if !covered {
		return apperrors.NewPreconditionError(constants.PreconditionPaymentCompleted,
			"order %s has no completed payment", order.OrderNumber)
	}
	return nil
}

// AttemptTransition moves the order to toStatusID on behalf of the
// authenticated actor. The order row is locked for the duration of the
// check-and-apply, and a concurrent status change observed between the
// caller's read and the lock yields ErrConflict so the caller can retry
// against fresh state.
func (s *OrderLifecycleService) AttemptTransition(ctx context.Context, orderID uint64, payload dto.ChangeOrderStatusDTO) (*dto.OrderResponseDTO, error) {
	actorID, roles, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	observedStatusID := order.CurrentStatusID

	toStatus, err := s.registry.FindStatus(ctx, payload.ToStatusID)
	if err != nil {
		return nil, apperrors.ErrInvalidTransition
	}

	var fromStatus *entities.OrderStatus
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		locked, err := s.orderRepo.FindOrderForUpdateInTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if locked.CurrentStatusID != observedStatusID {
			return apperrors.ErrConflict
		}

		fromStatus, err = s.registry.FindStatus(ctx, locked.CurrentStatusID)
		if err != nil {
			return err
		}

		// Terminal statuses are dead ends because the transition table has
		// no edges out of them; is_terminal itself only drives reporting.
		transition, err := s.registry.FindTransition(ctx, locked.CurrentStatusID, payload.ToStatusID)
		if err != nil {
			return err
		}
		if !transition.AllowsAnyRole(roles) {
			return apperrors.ErrRoleNotAllowed
		}
		if transition.Precondition != nil {
			check, ok := s.preconditions[*transition.Precondition]
			if !ok {
				return apperrors.NewPreconditionError(*transition.Precondition, "precondition is not registered")
			}
			if err := check(ctx, tx, locked); err != nil {
				return err
			}
		}

		var deliveredAt *time.Time
		if toStatus.Code == constants.StatusDelivered {
			now := time.Now()
			deliveredAt = &now
		}

		if err := s.orderRepo.SetOrderStatusInTx(ctx, tx, orderID, payload.ToStatusID, deliveredAt); err != nil {
			return err
		}
		if err := s.historyRepo.CreateInTx(ctx, tx, orderID, locked.CurrentStatusID, payload.ToStatusID, actorID, payload.ChangeReason); err != nil {
			return err
		}
		return s.activityRepo.CreateInTx(ctx, tx, entities.ActivityLog{
			ActorID:    actorID,
			Action:     constants.ActionStatusChange,
			EntityType: constants.EntityOrder,
			EntityID:   orderID,
			Details:    utils.Ptr(fromStatus.Code + " -> " + toStatus.Code),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.Uint64("orderID", orderID),
		zap.String("from", fromStatus.Code),
		zap.String("to", toStatus.Code),
		zap.Uint64("actorID", actorID))

	s.bus.Publish(ctx, events.OrderStatusChanged{
		OrderID:        orderID,
		OrderNumber:    order.OrderNumber,
		FromStatusCode: fromStatus.Code,
		ToStatusCode:   toStatus.Code,
		ActorID:        actorID,
	})

	return s.orderRepo.FindOrderDetail(ctx, orderID)
}

// AvailableTransitions lists the targets the actor may move the order to
// right now. Precondition edges are included even when the precondition does
// not currently hold; the name tells the caller what would be checked.
func (s *OrderLifecycleService) AvailableTransitions(ctx context.Context, orderID uint64) ([]dto.AvailableTransitionDTO, error) {
	_, roles, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	transitions, err := s.registry.TransitionsFrom(ctx, order.CurrentStatusID)
	if err != nil {
		return nil, err
	}

	available := make([]dto.AvailableTransitionDTO, 0)
	for _, t := range transitions {
		if !t.AllowsAnyRole(roles) {
			continue
		}
		to, err := s.registry.FindStatus(ctx, t.ToStatusID)
		if err != nil {
			return nil, err
		}
		available = append(available, dto.AvailableTransitionDTO{
			TransitionID: t.ID,
			ToStatus:     dto.ShortStatusDTO{ID: to.ID, Code: to.Code, Label: to.Label},
			Precondition: t.Precondition,
		})
	}
	return available, nil
}

func (s *OrderLifecycleService) GetHistory(ctx context.Context, orderID uint64) ([]dto.OrderHistoryDTO, error) {
	if _, err := s.orderRepo.FindOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.historyRepo.GetByOrderID(ctx, orderID)
}
