package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/entities"
)

type ActivityLogRepositoryInterface interface {
	Create(ctx context.Context, log entities.ActivityLog) error
	CreateInTx(ctx context.Context, tx pgx.Tx, log entities.ActivityLog) error
	GetByEntity(ctx context.Context, entityType string, entityID uint64, limit, offset uint64) ([]entities.ActivityLog, uint64, error)
}

type activityLogRepository struct{ storage *pgxpool.Pool }

func NewActivityLogRepository(storage *pgxpool.Pool) ActivityLogRepositoryInterface {
	return &activityLogRepository{storage: storage}
}

const insertActivityLog = `INSERT INTO activity_logs (actor_id, action, entity_type, entity_id, details)
	VALUES ($1, $2, $3, $4, $5)`

func (r *activityLogRepository) Create(ctx context.Context, log entities.ActivityLog) error {
	_, err := r.storage.Exec(ctx, insertActivityLog, log.ActorID, log.Action, log.EntityType, log.EntityID, log.Details)
	return err
}

func (r *activityLogRepository) CreateInTx(ctx context.Context, tx pgx.Tx, log entities.ActivityLog) error {
	_, err := tx.Exec(ctx, insertActivityLog, log.ActorID, log.Action, log.EntityType, log.EntityID, log.Details)
	return err
}

func (r *activityLogRepository) GetByEntity(ctx context.Context, entityType string, entityID uint64, limit, offset uint64) ([]entities.ActivityLog, uint64, error) {
	var total uint64
	countQuery := "SELECT COUNT(*) FROM activity_logs WHERE entity_type = $1 AND entity_id = $2"
	if err := r.storage.QueryRow(ctx, countQuery, entityType, entityID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.ActivityLog{}, 0, nil
	}

	query := `SELECT id, actor_id, action, entity_type, entity_id, details, created_at
		FROM activity_logs WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.storage.Query(ctx, query, entityType, entityID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]entities.ActivityLog, 0)
	for rows.Next() {
		var l entities.ActivityLog
		if err := rows.Scan(&l.ID, &l.ActorID, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	return logs, total, rows.Err()
}
