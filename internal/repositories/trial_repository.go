package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
)

const (
	trialTable  = "trials"
	trialFields = "id, order_id, scheduled_at, status, feedback, scheduled_by_id, created_at, updated_at"

	alterationTable  = "alterations"
	alterationFields = "id, order_id, trial_id, description, charge, is_included_in_price, status, requested_by_id, completed_at, created_at, updated_at"
)

type TrialRepositoryInterface interface {
	CreateTrial(ctx context.Context, t entities.Trial) (*entities.Trial, error)
	FindTrial(ctx context.Context, id uint64) (*entities.Trial, error)
	GetTrialsByOrderID(ctx context.Context, orderID uint64) ([]entities.Trial, error)
	UpdateTrial(ctx context.Context, id uint64, payload dto.UpdateTrialDTO) (*entities.Trial, error)

	CreateAlteration(ctx context.Context, a entities.Alteration) (*entities.Alteration, error)
	FindAlteration(ctx context.Context, id uint64) (*entities.Alteration, error)
	GetAlterationsByOrderID(ctx context.Context, orderID uint64) ([]entities.Alteration, error)
	SetAlterationStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) (*entities.Alteration, error)
	GetBillableAlterationChargesInTx(ctx context.Context, tx pgx.Tx, orderID uint64) ([]entities.Alteration, error)
}

type trialRepository struct{ storage *pgxpool.Pool }

func NewTrialRepository(storage *pgxpool.Pool) TrialRepositoryInterface {
	return &trialRepository{storage: storage}
}

func scanTrial(row pgx.Row) (*entities.Trial, error) {
	var t entities.Trial
	err := row.Scan(&t.ID, &t.OrderID, &t.ScheduledAt, &t.Status, &t.Feedback, &t.ScheduledByID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func scanAlteration(row pgx.Row) (*entities.Alteration, error) {
	var a entities.Alteration
	err := row.Scan(&a.ID, &a.OrderID, &a.TrialID, &a.Description, &a.Charge, &a.IsIncludedInPrice,
		&a.Status, &a.RequestedByID, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *trialRepository) CreateTrial(ctx context.Context, t entities.Trial) (*entities.Trial, error) {
	query := fmt.Sprintf(`INSERT INTO %s (order_id, scheduled_at, status, scheduled_by_id)
		VALUES ($1, $2, $3, $4) RETURNING %s`, trialTable, trialFields)
	created, err := scanTrial(r.storage.QueryRow(ctx, query, t.OrderID, t.ScheduledAt, constants.TrialScheduled, t.ScheduledByID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return created, nil
}

func (r *trialRepository) FindTrial(ctx context.Context, id uint64) (*entities.Trial, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", trialFields, trialTable)
	return scanTrial(r.storage.QueryRow(ctx, query, id))
}

func (r *trialRepository) GetTrialsByOrderID(ctx context.Context, orderID uint64) ([]entities.Trial, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1 ORDER BY scheduled_at DESC", trialFields, trialTable)
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trials := make([]entities.Trial, 0)
	for rows.Next() {
		var t entities.Trial
		if err := rows.Scan(&t.ID, &t.OrderID, &t.ScheduledAt, &t.Status, &t.Feedback, &t.ScheduledByID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trials = append(trials, t)
	}
	return trials, rows.Err()
}

func (r *trialRepository) UpdateTrial(ctx context.Context, id uint64, payload dto.UpdateTrialDTO) (*entities.Trial, error) {
	builder := sq.Update(trialTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + trialFields).
		PlaceholderFormat(sq.Dollar)

	if payload.ScheduledAt != nil {
		builder = builder.Set("scheduled_at", *payload.ScheduledAt)
	}
	if payload.Status != nil {
		builder = builder.Set("status", *payload.Status)
	}
	if payload.Feedback.Valid {
		builder = builder.Set("feedback", payload.Feedback.String)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanTrial(r.storage.QueryRow(ctx, query, args...))
}

func (r *trialRepository) CreateAlteration(ctx context.Context, a entities.Alteration) (*entities.Alteration, error) {
	query := fmt.Sprintf(`INSERT INTO %s (order_id, trial_id, description, charge, is_included_in_price, status, requested_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, alterationTable, alterationFields)
	created, err := scanAlteration(r.storage.QueryRow(ctx, query,
		a.OrderID, a.TrialID, a.Description, a.Charge, a.IsIncludedInPrice, constants.AlterationProposed, a.RequestedByID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return created, nil
}

func (r *trialRepository) FindAlteration(ctx context.Context, id uint64) (*entities.Alteration, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", alterationFields, alterationTable)
	return scanAlteration(r.storage.QueryRow(ctx, query, id))
}

func (r *trialRepository) GetAlterationsByOrderID(ctx context.Context, orderID uint64) ([]entities.Alteration, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1 ORDER BY created_at DESC", alterationFields, alterationTable)
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alterations := make([]entities.Alteration, 0)
	for rows.Next() {
		var a entities.Alteration
		if err := rows.Scan(&a.ID, &a.OrderID, &a.TrialID, &a.Description, &a.Charge, &a.IsIncludedInPrice,
			&a.Status, &a.RequestedByID, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		alterations = append(alterations, a)
	}
	return alterations, rows.Err()
}

func (r *trialRepository) SetAlterationStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) (*entities.Alteration, error) {
	query := fmt.Sprintf(`UPDATE %s SET status = $1,
		completed_at = CASE WHEN $1 = '%s' THEN NOW() ELSE completed_at END,
		updated_at = NOW()
		WHERE id = $2 RETURNING %s`, alterationTable, constants.AlterationCompleted, alterationFields)
	return scanAlteration(tx.QueryRow(ctx, query, status, id))
}

// GetBillableAlterationChargesInTx returns approved or later alterations whose
// charge is not already included in the original price.
func (r *trialRepository) GetBillableAlterationChargesInTx(ctx context.Context, tx pgx.Tx, orderID uint64) ([]entities.Alteration, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE order_id = $1 AND is_included_in_price = FALSE AND status IN ($2, $3, $4)
		ORDER BY id`, alterationFields, alterationTable)
	rows, err := tx.Query(ctx, query, orderID,
		constants.AlterationApproved, constants.AlterationInProgress, constants.AlterationCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alterations := make([]entities.Alteration, 0)
	for rows.Next() {
		var a entities.Alteration
		if err := rows.Scan(&a.ID, &a.OrderID, &a.TrialID, &a.Description, &a.Charge, &a.IsIncludedInPrice,
			&a.Status, &a.RequestedByID, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		alterations = append(alterations, a)
	}
	return alterations, rows.Err()
}
