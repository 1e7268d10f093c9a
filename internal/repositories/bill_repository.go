package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

const (
	billTable  = "order_bills"
	billFields = "id, order_id, base_garment_price, work_type_charges, alteration_charges, urgency_surcharge, subtotal, tax_rate, tax_amount, total_amount, advance_amount, balance_amount, generated_at, updated_at"
)

type BillRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, bill entities.OrderBill) (*entities.OrderBill, error)
	FindByOrderID(ctx context.Context, orderID uint64) (*entities.OrderBill, error)
	FindByOrderIDInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (*entities.OrderBill, error)
	UpdateDerivedInTx(ctx context.Context, tx pgx.Tx, bill entities.OrderBill) error
	AddAdvanceInTx(ctx context.Context, tx pgx.Tx, orderID uint64, amount decimal.Decimal) error
}

type billRepository struct{ storage *pgxpool.Pool }

func NewBillRepository(storage *pgxpool.Pool) BillRepositoryInterface {
	return &billRepository{storage: storage}
}

func scanBill(row pgx.Row) (*entities.OrderBill, error) {
	var b entities.OrderBill
	err := row.Scan(&b.ID, &b.OrderID, &b.BaseGarmentPrice, &b.WorkTypeCharges, &b.AlterationCharges,
		&b.UrgencySurcharge, &b.Subtotal, &b.TaxRate, &b.TaxAmount, &b.TotalAmount,
		&b.AdvanceAmount, &b.BalanceAmount, &b.GeneratedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *billRepository) CreateInTx(ctx context.Context, tx pgx.Tx, bill entities.OrderBill) (*entities.OrderBill, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(order_id, base_garment_price, work_type_charges, alteration_charges, urgency_surcharge, subtotal, tax_rate, tax_amount, total_amount, advance_amount, balance_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING %s`, billTable, billFields)
	created, err := scanBill(tx.QueryRow(ctx, query,
		bill.OrderID, bill.BaseGarmentPrice, bill.WorkTypeCharges, bill.AlterationCharges,
		bill.UrgencySurcharge, bill.Subtotal, bill.TaxRate, bill.TaxAmount, bill.TotalAmount,
		bill.AdvanceAmount, bill.BalanceAmount))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *billRepository) FindByOrderID(ctx context.Context, orderID uint64) (*entities.OrderBill, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1", billFields, billTable)
	return scanBill(r.storage.QueryRow(ctx, query, orderID))
}

func (r *billRepository) FindByOrderIDInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (*entities.OrderBill, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1 FOR UPDATE", billFields, billTable)
	return scanBill(tx.QueryRow(ctx, query, orderID))
}

// UpdateDerivedInTx rewrites every derived field from a fresh computation.
// AdvanceAmount is written as computed upstream, which preserves it across
// recomputations.
func (r *billRepository) UpdateDerivedInTx(ctx context.Context, tx pgx.Tx, bill entities.OrderBill) error {
	query := fmt.Sprintf(`UPDATE %s SET
		base_garment_price = $1, work_type_charges = $2, alteration_charges = $3,
		urgency_surcharge = $4, subtotal = $5, tax_rate = $6, tax_amount = $7,
		total_amount = $8, advance_amount = $9, balance_amount = $10, updated_at = NOW()
		WHERE order_id = $11`, billTable)
	result, err := tx.Exec(ctx, query,
		bill.BaseGarmentPrice, bill.WorkTypeCharges, bill.AlterationCharges,
		bill.UrgencySurcharge, bill.Subtotal, bill.TaxRate, bill.TaxAmount,
		bill.TotalAmount, bill.AdvanceAmount, bill.BalanceAmount, bill.OrderID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *billRepository) AddAdvanceInTx(ctx context.Context, tx pgx.Tx, orderID uint64, amount decimal.Decimal) error {
	query := fmt.Sprintf(`UPDATE %s SET
		advance_amount = advance_amount + $1,
		balance_amount = total_amount - (advance_amount + $1),
		updated_at = NOW()
		WHERE order_id = $2`, billTable)
	result, err := tx.Exec(ctx, query, amount, orderID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
