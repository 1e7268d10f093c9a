package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/entities"
	"tailorshop/pkg/constants"
	apperrors "tailorshop/pkg/errors"
)

const (
	invoiceTable  = "invoices"
	invoiceFields = "id, invoice_number, bill_id, order_id, invoice_date, due_date, customer_name, customer_phone, status, generated_by_id, issued_at, created_at, updated_at"
)

type InvoiceRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, invoice entities.Invoice) (*entities.Invoice, error)
	FindByOrderID(ctx context.Context, orderID uint64) (*entities.Invoice, error)
	FindByNumber(ctx context.Context, number string) (*entities.Invoice, error)
	GetInvoices(ctx context.Context, limit, offset uint64, status string) ([]entities.Invoice, uint64, error)
	SetStatusInTx(ctx context.Context, tx pgx.Tx, invoiceID uint64, status string) error
	MarkOverdue(ctx context.Context) (int64, error)
	CountOverdue(ctx context.Context) (uint64, error)
}

type invoiceRepository struct{ storage *pgxpool.Pool }

func NewInvoiceRepository(storage *pgxpool.Pool) InvoiceRepositoryInterface {
	return &invoiceRepository{storage: storage}
}

func scanInvoice(row pgx.Row) (*entities.Invoice, error) {
	var inv entities.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.BillID, &inv.OrderID, &inv.InvoiceDate,
		&inv.DueDate, &inv.CustomerName, &inv.CustomerPhone, &inv.Status, &inv.GeneratedByID,
		&inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) CreateInTx(ctx context.Context, tx pgx.Tx, invoice entities.Invoice) (*entities.Invoice, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(invoice_number, bill_id, order_id, invoice_date, due_date, customer_name, customer_phone, status, generated_by_id, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()) RETURNING %s`, invoiceTable, invoiceFields)
	created, err := scanInvoice(tx.QueryRow(ctx, query,
		invoice.InvoiceNumber, invoice.BillID, invoice.OrderID, invoice.InvoiceDate, invoice.DueDate,
		invoice.CustomerName, invoice.CustomerPhone, invoice.Status, invoice.GeneratedByID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *invoiceRepository) FindByOrderID(ctx context.Context, orderID uint64) (*entities.Invoice, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE order_id = $1", invoiceFields, invoiceTable)
	return scanInvoice(r.storage.QueryRow(ctx, query, orderID))
}

func (r *invoiceRepository) FindByNumber(ctx context.Context, number string) (*entities.Invoice, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE invoice_number = $1", invoiceFields, invoiceTable)
	return scanInvoice(r.storage.QueryRow(ctx, query, number))
}

func (r *invoiceRepository) GetInvoices(ctx context.Context, limit, offset uint64, status string) ([]entities.Invoice, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").From(invoiceTable).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(invoiceFields).From(invoiceTable).PlaceholderFormat(sq.Dollar)
	if status != "" {
		countBuilder = countBuilder.Where(sq.Eq{"status": status})
		listBuilder = listBuilder.Where(sq.Eq{"status": status})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Invoice{}, 0, nil
	}

	query, args, err := listBuilder.OrderBy("created_at DESC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entities.Invoice, 0)
	for rows.Next() {
		var inv entities.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.BillID, &inv.OrderID, &inv.InvoiceDate,
			&inv.DueDate, &inv.CustomerName, &inv.CustomerPhone, &inv.Status, &inv.GeneratedByID,
			&inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

func (r *invoiceRepository) SetStatusInTx(ctx context.Context, tx pgx.Tx, invoiceID uint64, status string) error {
	query := fmt.Sprintf("UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2", invoiceTable)
	result, err := tx.Exec(ctx, query, status, invoiceID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkOverdue flips issued and partially paid invoices past their due date.
func (r *invoiceRepository) MarkOverdue(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW()
		WHERE status IN ($2, $3) AND due_date < NOW()`, invoiceTable)
	result, err := r.storage.Exec(ctx, query,
		constants.InvoiceOverdue, constants.InvoiceIssued, constants.InvoicePartiallyPaid)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *invoiceRepository) CountOverdue(ctx context.Context) (uint64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE status = $1", invoiceTable)
	var total uint64
	err := r.storage.QueryRow(ctx, query, constants.InvoiceOverdue).Scan(&total)
	return total, err
}
