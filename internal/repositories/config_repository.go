package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

const configFields = "id, shop_name, tax_rate, urgency_multiplier, invoice_due_days, currency_code, updated_by_id, updated_at"

type ConfigRepositoryInterface interface {
	Get(ctx context.Context) (*entities.SystemConfiguration, error)
	Update(ctx context.Context, payload dto.UpdateSystemConfigurationDTO, updatedByID uint64) (*entities.SystemConfiguration, error)
}

type configRepository struct{ storage *pgxpool.Pool }

func NewConfigRepository(storage *pgxpool.Pool) ConfigRepositoryInterface {
	return &configRepository{storage: storage}
}

func scanConfig(row pgx.Row) (*entities.SystemConfiguration, error) {
	var c entities.SystemConfiguration
	err := row.Scan(&c.ID, &c.ShopName, &c.TaxRate, &c.UrgencyMultiplier, &c.InvoiceDueDays,
		&c.CurrencyCode, &c.UpdatedByID, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Get returns the single configuration row seeded at install time.
func (r *configRepository) Get(ctx context.Context) (*entities.SystemConfiguration, error) {
	query := "SELECT " + configFields + " FROM system_configuration ORDER BY id LIMIT 1"
	return scanConfig(r.storage.QueryRow(ctx, query))
}

func (r *configRepository) Update(ctx context.Context, payload dto.UpdateSystemConfigurationDTO, updatedByID uint64) (*entities.SystemConfiguration, error) {
	builder := sq.Update("system_configuration").
		Set("updated_by_id", updatedByID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Expr("id = (SELECT id FROM system_configuration ORDER BY id LIMIT 1)")).
		Suffix("RETURNING " + configFields).
		PlaceholderFormat(sq.Dollar)

	if payload.ShopName != nil {
		builder = builder.Set("shop_name", *payload.ShopName)
	}
	if payload.TaxRate != nil {
		builder = builder.Set("tax_rate", *payload.TaxRate)
	}
	if payload.UrgencyMultiplier != nil {
		builder = builder.Set("urgency_multiplier", *payload.UrgencyMultiplier)
	}
	if payload.InvoiceDueDays != nil {
		builder = builder.Set("invoice_due_days", *payload.InvoiceDueDays)
	}
	if payload.CurrencyCode != nil {
		builder = builder.Set("currency_code", *payload.CurrencyCode)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanConfig(r.storage.QueryRow(ctx, query, args...))
}
