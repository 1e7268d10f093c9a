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
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
)

const (
	paymentTable  = "payments"
	paymentFields = "id, order_id, invoice_id, payment_mode_id, amount, status, reference, notes, received_by_id, paid_at, created_at, updated_at"
)

type PaymentRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, payment entities.Payment) (*entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID uint64) ([]entities.Payment, error)
	HasCompletedPayment(ctx context.Context, q Querier, orderID uint64) (bool, error)
	SumCompletedInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (decimal.Decimal, error)
	GetPaymentModes(ctx context.Context) ([]entities.PaymentMode, error)
	FindPaymentMode(ctx context.Context, id uint64) (*entities.PaymentMode, error)
}

type paymentRepository struct{ storage *pgxpool.Pool }

func NewPaymentRepository(storage *pgxpool.Pool) PaymentRepositoryInterface {
	return &paymentRepository{storage: storage}
}

func (r *paymentRepository) CreateInTx(ctx context.Context, tx pgx.Tx, payment entities.Payment) (*entities.Payment, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(order_id, invoice_id, payment_mode_id, amount, status, reference, notes, received_by_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING %s`, paymentTable, paymentFields)
	var p entities.Payment
	err := tx.QueryRow(ctx, query,
		payment.OrderID, payment.InvoiceID, payment.PaymentModeID, payment.Amount, payment.Status,
		payment.Reference, payment.Notes, payment.ReceivedByID).
		Scan(&p.ID, &p.OrderID, &p.InvoiceID, &p.PaymentModeID, &p.Amount, &p.Status,
			&p.Reference, &p.Notes, &p.ReceivedByID, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrBadRequest
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID uint64) ([]entities.Payment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1 ORDER BY paid_at DESC", paymentFields, paymentTable)
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]entities.Payment, 0)
	for rows.Next() {
		var p entities.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.InvoiceID, &p.PaymentModeID, &p.Amount, &p.Status,
			&p.Reference, &p.Notes, &p.ReceivedByID, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// HasCompletedPayment reports whether at least one completed payment exists
// for the order. A partial payment satisfies it; full settlement is tracked
// on the invoice, not here. Accepts either the pool or an open transaction so
// transition preconditions can read through the same snapshot they lock under.
func (r *paymentRepository) HasCompletedPayment(ctx context.Context, q Querier, orderID uint64) (bool, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE order_id = $1 AND status = $2)`, paymentTable)
	var exists bool
	if err := q.QueryRow(ctx, query, orderID, constants.PaymentCompleted).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *paymentRepository) SumCompletedInTx(ctx context.Context, tx pgx.Tx, orderID uint64) (decimal.Decimal, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(amount), 0) FROM %s WHERE order_id = $1 AND status = $2`, paymentTable)
	var sum decimal.Decimal
	err := tx.QueryRow(ctx, query, orderID, constants.PaymentCompleted).Scan(&sum)
	return sum, err
}

func (r *paymentRepository) GetPaymentModes(ctx context.Context) ([]entities.PaymentMode, error) {
	query := "SELECT id, code, name, is_active, created_at FROM payment_modes ORDER BY id"
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modes := make([]entities.PaymentMode, 0)
	for rows.Next() {
		var m entities.PaymentMode
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, rows.Err()
}

func (r *paymentRepository) FindPaymentMode(ctx context.Context, id uint64) (*entities.PaymentMode, error) {
	query := "SELECT id, code, name, is_active, created_at FROM payment_modes WHERE id = $1"
	var m entities.PaymentMode
	err := r.storage.QueryRow(ctx, query, id).Scan(&m.ID, &m.Code, &m.Name, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
