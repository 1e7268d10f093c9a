package services

import (
	"context"

	"go.uber.org/zap"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	"tailorshop/pkg/utils"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	userRepo         repositories.UserRepositoryInterface
	logger           *zap.Logger
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// NotifyRoles fans a notification out to every active user holding one of
// the given roles. Delivery is best effort: a failed insert is logged and
// skipped, never propagated to the caller.
func (s *NotificationService) NotifyRoles(ctx context.Context, roleNames []string, title, message string, entityType *string, entityID *uint64) {
	userIDs, err := s.userRepo.GetUserIDsByRoleNames(ctx, roleNames)
	if err != nil {
		s.logger.Error("failed to resolve notification recipients", zap.Strings("roles", roleNames), zap.Error(err))
		return
	}
	for _, userID := range userIDs {
		err := s.notificationRepo.Create(ctx, entities.Notification{
			UserID:     userID,
			Title:      title,
			Message:    message,
			EntityType: entityType,
			EntityID:   entityID,
		})
		if err != nil {
			s.logger.Error("failed to create notification", zap.Uint64("userID", userID), zap.Error(err))
		}
	}
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, limit, offset uint64) (*dto.NotificationListResponseDTO, error) {
	userID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	notifications, total, err := s.notificationRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, dto.NotificationDTO{
			ID:         n.ID,
			Title:      n.Title,
			Message:    n.Message,
			EntityType: n.EntityType,
			EntityID:   n.EntityID,
			IsRead:     n.IsRead,
			CreatedAt:  utils.FormatTimestamp(n.CreatedAt),
		})
	}
	return &dto.NotificationListResponseDTO{List: list, TotalCount: total}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID uint64) error {
	userID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	userID, _, err := utils.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
