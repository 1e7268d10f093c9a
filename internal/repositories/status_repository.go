package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

const (
	statusTable  = "order_statuses"
	statusFields = "id, code, label, description, sequence, is_terminal, created_at"
)

type StatusRepositoryInterface interface {
	GetStatuses(ctx context.Context) ([]entities.OrderStatus, error)
	FindStatus(ctx context.Context, id uint64) (*entities.OrderStatus, error)
	FindByCode(ctx context.Context, code string) (*entities.OrderStatus, error)
	CreateStatus(ctx context.Context, status entities.OrderStatus) (*entities.OrderStatus, error)
}

type statusRepository struct{ storage *pgxpool.Pool }

func NewStatusRepository(storage *pgxpool.Pool) StatusRepositoryInterface {
	return &statusRepository{storage: storage}
}

func scanStatus(row pgx.Row) (*entities.OrderStatus, error) {
	var s entities.OrderStatus
	err := row.Scan(&s.ID, &s.Code, &s.Label, &s.Description, &s.Sequence, &s.IsTerminal, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *statusRepository) GetStatuses(ctx context.Context) ([]entities.OrderStatus, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY sequence", statusFields, statusTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]entities.OrderStatus, 0)
	for rows.Next() {
		var s entities.OrderStatus
		if err := rows.Scan(&s.ID, &s.Code, &s.Label, &s.Description, &s.Sequence, &s.IsTerminal, &s.CreatedAt); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *statusRepository) FindStatus(ctx context.Context, id uint64) (*entities.OrderStatus, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", statusFields, statusTable)
	return scanStatus(r.storage.QueryRow(ctx, query, id))
}

func (r *statusRepository) FindByCode(ctx context.Context, code string) (*entities.OrderStatus, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE code = $1", statusFields, statusTable)
	return scanStatus(r.storage.QueryRow(ctx, query, code))
}

func (r *statusRepository) CreateStatus(ctx context.Context, status entities.OrderStatus) (*entities.OrderStatus, error) {
	query := fmt.Sprintf(`INSERT INTO %s (code, label, description, sequence, is_terminal)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, statusTable, statusFields)
	created, err := scanStatus(r.storage.QueryRow(ctx, query,
		status.Code, status.Label, status.Description, status.Sequence, status.IsTerminal))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}
