package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n entities.Notification) error
	GetByUserID(ctx context.Context, userID uint64, limit, offset uint64) ([]entities.Notification, uint64, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
}

type notificationRepository struct{ storage *pgxpool.Pool }

func NewNotificationRepository(storage *pgxpool.Pool) NotificationRepositoryInterface {
	return &notificationRepository{storage: storage}
}

func (r *notificationRepository) Create(ctx context.Context, n entities.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message, entity_type, entity_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.storage.Exec(ctx, query, n.UserID, n.Title, n.Message, n.EntityType, n.EntityID)
	return err
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID uint64, limit, offset uint64) ([]entities.Notification, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Notification{}, 0, nil
	}

	query := `SELECT id, user_id, title, message, entity_type, entity_id, is_read, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.EntityType, &n.EntityID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	query := "UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2"
	result, err := r.storage.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint64) error {
	_, err := r.storage.Exec(ctx, "UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE", userID)
	return err
}
