package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/utils"
)

const (
	statusesCacheKey    = "registry:statuses"
	transitionsCacheKey = "registry:transitions"
)

// StatusRegistryService serves the status registry and the transition table.
// Both are small and nearly immutable, so reads go through a redis cache and
// writes invalidate it.
type StatusRegistryService struct {
	statusRepo     repositories.StatusRepositoryInterface
	transitionRepo repositories.TransitionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewStatusRegistryService(
	statusRepo repositories.StatusRepositoryInterface,
	transitionRepo repositories.TransitionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatusRegistryService {
	return &StatusRegistryService{
		statusRepo:     statusRepo,
		transitionRepo: transitionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func (s *StatusRegistryService) GetStatuses(ctx context.Context) ([]entities.OrderStatus, error) {
	if cached, err := s.cacheRepo.Get(ctx, statusesCacheKey); err == nil {
		var statuses []entities.OrderStatus
		if err := json.Unmarshal([]byte(cached), &statuses); err == nil {
			return statuses, nil
		}
		s.logger.Warn("discarding corrupt status cache entry", zap.String("key", statusesCacheKey))
	}

	statuses, err := s.statusRepo.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(statuses); err == nil {
		if err := s.cacheRepo.Set(ctx, statusesCacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache statuses", zap.Error(err))
		}
	}
	return statuses, nil
}

func (s *StatusRegistryService) FindStatus(ctx context.Context, id uint64) (*entities.OrderStatus, error) {
	statuses, err := s.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range statuses {
		if statuses[i].ID == id {
			return &statuses[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *StatusRegistryService) FindStatusByCode(ctx context.Context, code string) (*entities.OrderStatus, error) {
	statuses, err := s.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range statuses {
		if statuses[i].Code == code {
			return &statuses[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *StatusRegistryService) GetTransitions(ctx context.Context) ([]entities.StatusTransition, error) {
	if cached, err := s.cacheRepo.Get(ctx, transitionsCacheKey); err == nil {
		var transitions []entities.StatusTransition
		if err := json.Unmarshal([]byte(cached), &transitions); err == nil {
			return transitions, nil
		}
		s.logger.Warn("discarding corrupt transition cache entry", zap.String("key", transitionsCacheKey))
	}

	transitions, err := s.transitionRepo.GetTransitions(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(transitions); err == nil {
		if err := s.cacheRepo.Set(ctx, transitionsCacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache transitions", zap.Error(err))
		}
	}
	return transitions, nil
}

func (s *StatusRegistryService) TransitionsFrom(ctx context.Context, fromStatusID uint64) ([]entities.StatusTransition, error) {
	transitions, err := s.GetTransitions(ctx)
	if err != nil {
		return nil, err
	}
	from := make([]entities.StatusTransition, 0)
	for _, t := range transitions {
		if t.FromStatusID == fromStatusID {
			from = append(from, t)
		}
	}
	return from, nil
}

// FindTransition returns the configured edge, or ErrInvalidTransition when
// the edge does not exist in the table.
func (s *StatusRegistryService) FindTransition(ctx context.Context, fromStatusID, toStatusID uint64) (*entities.StatusTransition, error) {
	transitions, err := s.GetTransitions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range transitions {
		if transitions[i].FromStatusID == fromStatusID && transitions[i].ToStatusID == toStatusID {
			return &transitions[i], nil
		}
	}
	return nil, apperrors.ErrInvalidTransition
}

func (s *StatusRegistryService) CreateStatus(ctx context.Context, payload dto.CreateStatusDTO) (*entities.OrderStatus, error) {
	created, err := s.statusRepo.CreateStatus(ctx, entities.OrderStatus{
		Code:        payload.Code,
		Label:       payload.Label,
		Description: payload.Description,
		Sequence:    payload.Sequence,
		IsTerminal:  payload.IsTerminal,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *StatusRegistryService) CreateTransition(ctx context.Context, t entities.StatusTransition) (*entities.StatusTransition, error) {
	created, err := s.transitionRepo.CreateTransition(ctx, t)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *StatusRegistryService) DeleteTransition(ctx context.Context, id uint64) error {
	if err := s.transitionRepo.DeleteTransition(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *StatusRegistryService) invalidate(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, statusesCacheKey, transitionsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate registry cache", zap.Error(err))
	}
}

func (s *StatusRegistryService) GetStatusDTOs(ctx context.Context) ([]dto.StatusDTO, error) {
	statuses, err := s.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StatusDTO, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, dto.StatusDTO{
			ID:          st.ID,
			Code:        st.Code,
			Label:       st.Label,
			Description: st.Description,
			Sequence:    st.Sequence,
			IsTerminal:  st.IsTerminal,
			CreatedAt:   utils.FormatTimestamp(st.CreatedAt),
		})
	}
	return result, nil
}

func (s *StatusRegistryService) GetTransitionDTOs(ctx context.Context) ([]dto.TransitionDTO, error) {
	transitions, err := s.GetTransitions(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := s.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]entities.OrderStatus, len(statuses))
	for _, st := range statuses {
		byID[st.ID] = st
	}

	result := make([]dto.TransitionDTO, 0, len(transitions))
	for _, t := range transitions {
		from := byID[t.FromStatusID]
		to := byID[t.ToStatusID]
		result = append(result, dto.TransitionDTO{
			ID:           t.ID,
			FromStatus:   dto.ShortStatusDTO{ID: from.ID, Code: from.Code, Label: from.Label},
			ToStatus:     dto.ShortStatusDTO{ID: to.ID, Code: to.Code, Label: to.Label},
			AllowedRoles: t.AllowedRoles,
			Precondition: t.Precondition,
			Description:  t.Description,
		})
	}
	return result, nil
}
