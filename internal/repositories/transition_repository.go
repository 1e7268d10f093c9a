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
	transitionTable  = "order_status_transitions"
	transitionFields = "id, from_status_id, to_status_id, allowed_roles, precondition, description"
)

type TransitionRepositoryInterface interface {
	GetTransitions(ctx context.Context) ([]entities.StatusTransition, error)
	GetTransitionsFrom(ctx context.Context, fromStatusID uint64) ([]entities.StatusTransition, error)
	FindTransition(ctx context.Context, fromStatusID, toStatusID uint64) (*entities.StatusTransition, error)
	CreateTransition(ctx context.Context, t entities.StatusTransition) (*entities.StatusTransition, error)
	DeleteTransition(ctx context.Context, id uint64) error
}

type transitionRepository struct{ storage *pgxpool.Pool }

func NewTransitionRepository(storage *pgxpool.Pool) TransitionRepositoryInterface {
	return &transitionRepository{storage: storage}
}

func scanTransitionRows(rows pgx.Rows) ([]entities.StatusTransition, error) {
	defer rows.Close()
	transitions := make([]entities.StatusTransition, 0)
	for rows.Next() {
		var t entities.StatusTransition
		if err := rows.Scan(&t.ID, &t.FromStatusID, &t.ToStatusID, &t.AllowedRoles, &t.Precondition, &t.Description); err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}
	return transitions, rows.Err()
}

func (r *transitionRepository) GetTransitions(ctx context.Context) ([]entities.StatusTransition, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY from_status_id, to_status_id", transitionFields, transitionTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanTransitionRows(rows)
}

func (r *transitionRepository) GetTransitionsFrom(ctx context.Context, fromStatusID uint64) ([]entities.StatusTransition, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE from_status_id = $1 ORDER BY to_status_id", transitionFields, transitionTable)
	rows, err := r.storage.Query(ctx, query, fromStatusID)
	if err != nil {
		return nil, err
	}
	return scanTransitionRows(rows)
}

func (r *transitionRepository) FindTransition(ctx context.Context, fromStatusID, toStatusID uint64) (*entities.StatusTransition, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE from_status_id = $1 AND to_status_id = $2", transitionFields, transitionTable)
	var t entities.StatusTransition
	err := r.storage.QueryRow(ctx, query, fromStatusID, toStatusID).
		Scan(&t.ID, &t.FromStatusID, &t.ToStatusID, &t.AllowedRoles, &t.Precondition, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *transitionRepository) CreateTransition(ctx context.Context, t entities.StatusTransition) (*entities.StatusTransition, error) {
	query := fmt.Sprintf(`INSERT INTO %s (from_status_id, to_status_id, allowed_roles, precondition, description)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, transitionTable, transitionFields)
	var created entities.StatusTransition
	err := r.storage.QueryRow(ctx, query, t.FromStatusID, t.ToStatusID, t.AllowedRoles, t.Precondition, t.Description).
		Scan(&created.ID, &created.FromStatusID, &created.ToStatusID, &created.AllowedRoles, &created.Precondition, &created.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, apperrors.ErrConflict
			case "23503":
				return nil, apperrors.ErrBadRequest
			}
		}
		return nil, err
	}
	return &created, nil
}

func (r *transitionRepository) DeleteTransition(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", transitionTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
