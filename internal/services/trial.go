package services

import (
	"context"
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

type TrialService struct {
	trialRepo repositories.TrialRepositoryInterface
	orderRepo repositories.OrderRepositoryInterface
	billing   *BillingService
	txm       repositories.TxManagerInterface
	bus       *eventbus.Bus
	logger    *zap.Logger
}

func NewTrialService(
	trialRepo repositories.TrialRepositoryInterface,
	orderRepo repositories.OrderRepositoryInterface,
	billing *BillingService,
	txm repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *TrialService {
	return &TrialService{
		trialRepo: trialRepo,
		orderRepo: orderRepo,
		billing:   billing,
		txm:       txm,
		bus:       bus,
		logger:    logger,
	}
}

func (s *TrialService) ScheduleTrial(ctx context.Context, payload dto.CreateTrialDTO) (*dto.TrialDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := time.Parse(time.RFC3339, payload.ScheduledAt)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("scheduled_at must be an RFC 3339 timestamp")
	}
	if _, err := s.orderRepo.FindOrder(ctx, payload.OrderID); err != nil {
		return nil, err
	}

	created, err := s.trialRepo.CreateTrial(ctx, entities.Trial{
		OrderID:       payload.OrderID,
		ScheduledAt:   scheduledAt,
		ScheduledByID: actorID,
	})
	if err != nil {
		return nil, err
	}
	trialDTO := trialToDTO(created)
	return &trialDTO, nil
}

func (s *TrialService) GetTrialsByOrder(ctx context.Context, orderID uint64) ([]dto.TrialDTO, error) {
	trials, err := s.trialRepo.GetTrialsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	list := make([]dto.TrialDTO, 0, len(trials))
	for i := range trials {
		list = append(list, trialToDTO(&trials[i]))
	}
	return list, nil
}

func (s *TrialService) UpdateTrial(ctx context.Context, id uint64, payload dto.UpdateTrialDTO) (*dto.TrialDTO, error) {
	updated, err := s.trialRepo.UpdateTrial(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	trialDTO := trialToDTO(updated)
	return &trialDTO, nil
}

func (s *TrialService) RequestAlteration(ctx context.Context, payload dto.CreateAlterationDTO) (*dto.AlterationDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	charge, err := decimal.NewFromString(payload.Charge)
	if err != nil || charge.IsNegative() {
		return nil, apperrors.NewInvalidInputError("charge must be a non-negative amount")
	}
	if _, err := s.orderRepo.FindOrder(ctx, payload.OrderID); err != nil {
		return nil, err
	}
	if payload.TrialID != nil {
		trial, err := s.trialRepo.FindTrial(ctx, *payload.TrialID)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("trial %d does not exist", *payload.TrialID)
		}
		if trial.OrderID != payload.OrderID {
			return nil, apperrors.NewInvalidInputError("trial %d belongs to a different order", *payload.TrialID)
		}
	}

	created, err := s.trialRepo.CreateAlteration(ctx, entities.Alteration{
		OrderID:           payload.OrderID,
		TrialID:           payload.TrialID,
		Description:       payload.Description,
		Charge:            charge,
		IsIncludedInPrice: payload.IsIncludedInPrice,
		RequestedByID:     actorID,
	})
	if err != nil {
		return nil, err
	}
	alterationDTO := alterationToDTO(created)
	return &alterationDTO, nil
}

func (s *TrialService) GetAlterationsByOrder(ctx context.Context, orderID uint64) ([]dto.AlterationDTO, error) {
	alterations, err := s.trialRepo.GetAlterationsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	list := make([]dto.AlterationDTO, 0, len(alterations))
	for i := range alterations {
		list = append(list, alterationToDTO(&alterations[i]))
	}
	return list, nil
}

// ApproveAlteration moves a proposed alteration to approved and folds its
// charge into the order's bill in the same transaction.
func (s *TrialService) ApproveAlteration(ctx context.Context, id uint64) (*dto.AlterationDTO, error) {
	actorID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	alteration, err := s.trialRepo.FindAlteration(ctx, id)
	if err != nil {
		return nil, err
	}
	if alteration.Status != constants.AlterationProposed {
		return nil, apperrors.NewInvalidInputError("only proposed alterations can be approved")
	}

	var approved *entities.Alteration
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		approved, err = s.trialRepo.SetAlterationStatusInTx(ctx, tx, id, constants.AlterationApproved)
		if err != nil {
			return err
		}
		if !approved.IsIncludedInPrice {
			if _, err := s.billing.RecomputeBillInTx(ctx, tx, approved.OrderID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("alteration approved",
		zap.Uint64("alterationID", id),
		zap.Uint64("orderID", approved.OrderID))

	s.bus.Publish(ctx, events.AlterationApproved{
		OrderID:      approved.OrderID,
		AlterationID: approved.ID,
		Charge:       approved.Charge.StringFixed(2),
		ActorID:      actorID,
	})

	alterationDTO := alterationToDTO(approved)
	return &alterationDTO, nil
}

// SetAlterationStatus handles the in-progress and completed steps after
// approval. The bill is untouched: only approval changes what is billable.
func (s *TrialService) SetAlterationStatus(ctx context.Context, id uint64, status string) (*dto.AlterationDTO, error) {
	alteration, err := s.trialRepo.FindAlteration(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := map[string][]string{
		constants.AlterationApproved:   {constants.AlterationInProgress},
		constants.AlterationInProgress: {constants.AlterationCompleted},
	}
	valid := false
	for _, next := range allowed[alteration.Status] {
		if next == status {
			valid = true
		}
	}
	if !valid {
		return nil, apperrors.NewInvalidInputError("alteration cannot move from %s to %s", alteration.Status, status)
	}

	var updated *entities.Alteration
	err = s.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		updated, err = s.trialRepo.SetAlterationStatusInTx(ctx, tx, id, status)
		return err
	})
	if err != nil {
		return nil, err
	}
	alterationDTO := alterationToDTO(updated)
	return &alterationDTO, nil
}

func trialToDTO(t *entities.Trial) dto.TrialDTO {
	return dto.TrialDTO{
		ID:          t.ID,
		OrderID:     t.OrderID,
		ScheduledAt: utils.FormatTimestamp(t.ScheduledAt),
		Status:      t.Status,
		Feedback:    t.Feedback,
		CreatedAt:   utils.FormatTimestamp(t.CreatedAt),
	}
}

func alterationToDTO(a *entities.Alteration) dto.AlterationDTO {
	var completedAt *string
	if a.CompletedAt != nil {
		completedAt = utils.Ptr(utils.FormatTimestamp(*a.CompletedAt))
	}
	return dto.AlterationDTO{
		ID:                a.ID,
		OrderID:           a.OrderID,
		TrialID:           a.TrialID,
		Description:       a.Description,
		Charge:            a.Charge.StringFixed(2),
		IsIncludedInPrice: a.IsIncludedInPrice,
		Status:            a.Status,
		CompletedAt:       completedAt,
		CreatedAt:         utils.FormatTimestamp(a.CreatedAt),
	}
}
