package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type CounterRepositoryInterface interface {
	NextNumberInTx(ctx context.Context, tx pgx.Tx, scope string, year int) (int, error)
}

type counterRepository struct{}

func NewCounterRepository() CounterRepositoryInterface {
	return &counterRepository{}
}

// NextNumberInTx increments and returns the per-scope, per-year sequence.
// The upsert takes a row lock, so two transactions asking for the same
// scope/year can never see the same value.
func (r *counterRepository) NextNumberInTx(ctx context.Context, tx pgx.Tx, scope string, year int) (int, error) {
	query := `
		INSERT INTO number_counters (scope, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (scope, year)
		DO UPDATE SET last_value = number_counters.last_value + 1
		RETURNING last_value`

	var next int
	if err := tx.QueryRow(ctx, query, scope, year).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}
