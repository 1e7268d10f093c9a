package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/dto"
	"tailorshop/pkg/utils"
)

type OrderHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, orderID, fromStatusID, toStatusID, changedByID uint64, changeReason *string) error
	GetByOrderID(ctx context.Context, orderID uint64) ([]dto.OrderHistoryDTO, error)
}

type orderHistoryRepository struct{ storage *pgxpool.Pool }

func NewOrderHistoryRepository(storage *pgxpool.Pool) OrderHistoryRepositoryInterface {
	return &orderHistoryRepository{storage: storage}
}

func (r *orderHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, orderID, fromStatusID, toStatusID, changedByID uint64, changeReason *string) error {
	query := `INSERT INTO order_status_history (order_id, from_status_id, to_status_id, changed_by_id, change_reason)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, orderID, fromStatusID, toStatusID, changedByID, changeReason)
	return err
}

func (r *orderHistoryRepository) GetByOrderID(ctx context.Context, orderID uint64) ([]dto.OrderHistoryDTO, error) {
	query := `SELECT h.id,
			fs.id, fs.code, fs.label,
			ts.id, ts.code, ts.label,
			u.id, u.full_name,
			h.change_reason, h.changed_at
		FROM order_status_history h
		JOIN order_statuses fs ON h.from_status_id = fs.id
		JOIN order_statuses ts ON h.to_status_id = ts.id
		JOIN users u ON h.changed_by_id = u.id
		WHERE h.order_id = $1
		ORDER BY h.changed_at DESC, h.id DESC`

	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]dto.OrderHistoryDTO, 0)
	for rows.Next() {
		var (
			item      dto.OrderHistoryDTO
			changedAt time.Time
		)
		if err := rows.Scan(&item.ID,
			&item.FromStatus.ID, &item.FromStatus.Code, &item.FromStatus.Label,
			&item.ToStatus.ID, &item.ToStatus.Code, &item.ToStatus.Label,
			&item.ChangedBy.ID, &item.ChangedBy.FullName,
			&item.ChangeReason, &changedAt); err != nil {
			return nil, err
		}
		item.ChangedAt = utils.FormatTimestamp(changedAt)
		history = append(history, item)
	}
	return history, rows.Err()
}
