package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tailorshop/internal/dto"
	"tailorshop/pkg/constants"
)

// OrderReportRow is one flattened line of the orders export.
type OrderReportRow struct {
	OrderNumber   string
	CustomerName  string
	GarmentType   string
	StatusLabel   string
	IsUrgent      bool
	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal
	BalanceAmount decimal.Decimal
	ExpectedDate  time.Time
	CreatedAt     time.Time
}

type ReportRepositoryInterface interface {
	GetOrderCountsByStatus(ctx context.Context) ([]dto.StatusCountDTO, error)
	CountUrgentOpenOrders(ctx context.Context) (uint64, error)
	GetMonthRevenue(ctx context.Context, from time.Time) (decimal.Decimal, error)
	GetOrderReportRows(ctx context.Context, filter dto.OrderReportFilterDTO) ([]OrderReportRow, error)
}

type reportRepository struct{ storage *pgxpool.Pool }

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{storage: storage}
}

func (r *reportRepository) GetOrderCountsByStatus(ctx context.Context) ([]dto.StatusCountDTO, error) {
	query := `SELECT s.id, s.code, s.label, COUNT(o.id)
		FROM order_statuses s
		LEFT JOIN orders o ON o.current_status_id = s.id AND o.is_deleted = FALSE
		GROUP BY s.id, s.code, s.label, s.sequence
		ORDER BY s.sequence`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]dto.StatusCountDTO, 0)
	for rows.Next() {
		var c dto.StatusCountDTO
		if err := rows.Scan(&c.StatusID, &c.Code, &c.Label, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *reportRepository) CountUrgentOpenOrders(ctx context.Context) (uint64, error) {
	query := `SELECT COUNT(*) FROM orders o
		JOIN order_statuses s ON o.current_status_id = s.id
		WHERE o.is_urgent = TRUE AND o.is_deleted = FALSE AND s.is_terminal = FALSE`
	var total uint64
	err := r.storage.QueryRow(ctx, query).Scan(&total)
	return total, err
}

func (r *reportRepository) GetMonthRevenue(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1 AND paid_at >= $2`
	var revenue decimal.Decimal
	err := r.storage.QueryRow(ctx, query, constants.PaymentCompleted, from).Scan(&revenue)
	return revenue, err
}

func (r *reportRepository) GetOrderReportRows(ctx context.Context, filter dto.OrderReportFilterDTO) ([]OrderReportRow, error) {
	builder := sq.Select(
		"o.order_number", "c.full_name", "g.name", "s.label", "o.is_urgent",
		"COALESCE(b.total_amount, 0)", "COALESCE(b.advance_amount, 0)", "COALESCE(b.balance_amount, 0)",
		"o.expected_delivery_date", "o.created_at",
	).
		From("orders o").
		Join("customers c ON o.customer_id = c.id").
		Join("garment_types g ON o.garment_type_id = g.id").
		Join("order_statuses s ON o.current_status_id = s.id").
		LeftJoin("order_bills b ON b.order_id = o.id").
		Where(sq.Eq{"o.is_deleted": false}).
		OrderBy("o.created_at").
		PlaceholderFormat(sq.Dollar)

	if filter.From != "" {
		builder = builder.Where(sq.Expr("o.created_at >= ?", filter.From))
	}
	if filter.To != "" {
		builder = builder.Where(sq.Expr("o.created_at < (?::date + 1)", filter.To))
	}
	if filter.StatusID != nil {
		builder = builder.Where(sq.Eq{"o.current_status_id": *filter.StatusID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]OrderReportRow, 0)
	for rows.Next() {
		var row OrderReportRow
		if err := rows.Scan(&row.OrderNumber, &row.CustomerName, &row.GarmentType, &row.StatusLabel,
			&row.IsUrgent, &row.TotalAmount, &row.AdvanceAmount, &row.BalanceAmount,
			&row.ExpectedDate, &row.CreatedAt); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
