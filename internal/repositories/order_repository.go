package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/utils"
)

const (
	orderTable  = "orders"
	orderFields = "id, order_number, customer_id, garment_type_id, current_status_id, expected_delivery_date, actual_delivery_date, is_urgent, urgency_multiplier, special_instructions, is_deleted, created_at, updated_at"
)

type OrderRepositoryInterface interface {
	CreateOrderInTx(ctx context.Context, tx pgx.Tx, order entities.Order) (*entities.Order, error)
	AddOrderWorkTypeInTx(ctx context.Context, tx pgx.Tx, owt entities.OrderWorkType) error
	FindOrder(ctx context.Context, id uint64) (*entities.Order, error)
	FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Order, error)
	FindOrderDetail(ctx context.Context, id uint64) (*dto.OrderResponseDTO, error)
	GetOrders(ctx context.Context, limit, offset uint64, filter dto.OrderFilterDTO) ([]dto.OrderResponseDTO, uint64, error)
	GetOrderWorkTypes(ctx context.Context, orderID uint64) ([]entities.OrderWorkType, error)
	GetOrderWorkTypesInTx(ctx context.Context, tx pgx.Tx, orderID uint64) ([]entities.OrderWorkType, error)
	UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateOrderDTO) error
	SetOrderStatusInTx(ctx context.Context, tx pgx.Tx, orderID, toStatusID uint64, deliveredAt *time.Time) error
	SoftDeleteOrder(ctx context.Context, id uint64) error
}

type orderRepository struct{ storage *pgxpool.Pool }

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &orderRepository{storage: storage}
}

func scanOrder(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.GarmentTypeID, &o.CurrentStatusID,
		&o.ExpectedDeliveryDate, &o.ActualDeliveryDate, &o.IsUrgent, &o.UrgencyMultiplier,
		&o.SpecialInstructions, &o.IsDeleted, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) CreateOrderInTx(ctx context.Context, tx pgx.Tx, order entities.Order) (*entities.Order, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(order_number, customer_id, garment_type_id, current_status_id, expected_delivery_date, is_urgent, urgency_multiplier, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s`, orderTable, orderFields)
	created, err := scanOrder(tx.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerID, order.GarmentTypeID, order.CurrentStatusID,
		order.ExpectedDeliveryDate, order.IsUrgent, order.UrgencyMultiplier, order.SpecialInstructions))
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
	return created, nil
}

func (r *orderRepository) AddOrderWorkTypeInTx(ctx context.Context, tx pgx.Tx, owt entities.OrderWorkType) error {
	query := `INSERT INTO order_work_types (order_id, work_type_id, extra_charge) VALUES ($1, $2, $3)`
	_, err := tx.Exec(ctx, query, owt.OrderID, owt.WorkTypeID, owt.ExtraCharge)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

func (r *orderRepository) FindOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE", orderFields, orderTable)
	return scanOrder(r.storage.QueryRow(ctx, query, id))
}

// FindOrderForUpdateInTx locks the order row for the rest of the transaction.
// Concurrent transitions against the same order serialize on this lock.
func (r *orderRepository) FindOrderForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE FOR UPDATE", orderFields, orderTable)
	return scanOrder(tx.QueryRow(ctx, query, id))
}

type dbOrderDetail struct {
	entities.Order
	CustomerName    string
	CustomerPhone   string
	GarmentTypeName string
	StatusCode      string
	StatusLabel     string
}

func (db *dbOrderDetail) ToDTO() dto.OrderResponseDTO {
	var actualDelivery *string
	if db.ActualDeliveryDate != nil {
		actualDelivery = utils.Ptr(utils.FormatDate(*db.ActualDeliveryDate))
	}
	return dto.OrderResponseDTO{
		ID:          db.ID,
		OrderNumber: db.OrderNumber,
		Customer: dto.ShortCustomerDTO{
			ID:       db.CustomerID,
			FullName: db.CustomerName,
			Phone:    db.CustomerPhone,
		},
		GarmentType: dto.ShortGarmentDTO{
			ID:   db.GarmentTypeID,
			Name: db.GarmentTypeName,
		},
		CurrentStatus: dto.ShortStatusDTO{
			ID:    db.CurrentStatusID,
			Code:  db.StatusCode,
			Label: db.StatusLabel,
		},
		WorkTypes:            []dto.OrderWorkTypeDTO{},
		ExpectedDeliveryDate: utils.FormatDate(db.ExpectedDeliveryDate),
		ActualDeliveryDate:   actualDelivery,
		IsUrgent:             db.IsUrgent,
		UrgencyMultiplier:    db.UrgencyMultiplier.String(),
		SpecialInstructions:  db.SpecialInstructions,
		CreatedAt:            utils.FormatTimestamp(db.CreatedAt),
		UpdatedAt:            utils.FormatTimestamp(db.UpdatedAt),
	}
}

const orderDetailColumns = `o.id, o.order_number, o.customer_id, o.garment_type_id, o.current_status_id,
	o.expected_delivery_date, o.actual_delivery_date, o.is_urgent, o.urgency_multiplier,
	o.special_instructions, o.is_deleted, o.created_at, o.updated_at,
	c.full_name, c.phone, g.name, s.code, s.label`

func scanOrderDetail(row pgx.Row) (*dbOrderDetail, error) {
	var db dbOrderDetail
	err := row.Scan(&db.ID, &db.OrderNumber, &db.CustomerID, &db.GarmentTypeID, &db.CurrentStatusID,
		&db.ExpectedDeliveryDate, &db.ActualDeliveryDate, &db.IsUrgent, &db.UrgencyMultiplier,
		&db.SpecialInstructions, &db.IsDeleted, &db.CreatedAt, &db.UpdatedAt,
		&db.CustomerName, &db.CustomerPhone, &db.GarmentTypeName, &db.StatusCode, &db.StatusLabel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &db, nil
}

func orderDetailBuilder() sq.SelectBuilder {
	return sq.Select(orderDetailColumns).
		From("orders o").
		Join("customers c ON o.customer_id = c.id").
		Join("garment_types g ON o.garment_type_id = g.id").
		Join("order_statuses s ON o.current_status_id = s.id").
		Where(sq.Eq{"o.is_deleted": false}).
		PlaceholderFormat(sq.Dollar)
}

func (r *orderRepository) FindOrderDetail(ctx context.Context, id uint64) (*dto.OrderResponseDTO, error) {
	query, args, err := orderDetailBuilder().Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	db, err := scanOrderDetail(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	orderDTO := db.ToDTO()
	return &orderDTO, nil
}

func applyOrderFilter(builder sq.SelectBuilder, filter dto.OrderFilterDTO) sq.SelectBuilder {
	if filter.StatusID != nil {
		builder = builder.Where(sq.Eq{"o.current_status_id": *filter.StatusID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"o.customer_id": *filter.CustomerID})
	}
	if filter.IsUrgent != nil {
		builder = builder.Where(sq.Eq{"o.is_urgent": *filter.IsUrgent})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("o.order_number ILIKE ?", pattern),
			sq.Expr("c.full_name ILIKE ?", pattern),
			sq.Expr("c.phone ILIKE ?", pattern),
		})
	}
	return builder
}

func (r *orderRepository) GetOrders(ctx context.Context, limit, offset uint64, filter dto.OrderFilterDTO) ([]dto.OrderResponseDTO, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").
		From("orders o").
		Join("customers c ON o.customer_id = c.id").
		Where(sq.Eq{"o.is_deleted": false}).
		PlaceholderFormat(sq.Dollar)
	countQuery, countArgs, err := applyOrderFilter(countBuilder, filter).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.OrderResponseDTO{}, 0, nil
	}

	query, args, err := applyOrderFilter(orderDetailBuilder(), filter).
		OrderBy("o.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]dto.OrderResponseDTO, 0)
	for rows.Next() {
		var db dbOrderDetail
		if err := rows.Scan(&db.ID, &db.OrderNumber, &db.CustomerID, &db.GarmentTypeID, &db.CurrentStatusID,
			&db.ExpectedDeliveryDate, &db.ActualDeliveryDate, &db.IsUrgent, &db.UrgencyMultiplier,
			&db.SpecialInstructions, &db.IsDeleted, &db.CreatedAt, &db.UpdatedAt,
			&db.CustomerName, &db.CustomerPhone, &db.GarmentTypeName, &db.StatusCode, &db.StatusLabel); err != nil {
			return nil, 0, err
		}
		orders = append(orders, db.ToDTO())
	}
	return orders, total, rows.Err()
}

func (r *orderRepository) GetOrderWorkTypes(ctx context.Context, orderID uint64) ([]entities.OrderWorkType, error) {
	return getOrderWorkTypes(ctx, r.storage, orderID)
}

// GetOrderWorkTypesInTx reads the work-type lines through the open transaction
// so bill recomputation sees the same snapshot as the rest of its inputs.
func (r *orderRepository) GetOrderWorkTypesInTx(ctx context.Context, tx pgx.Tx, orderID uint64) ([]entities.OrderWorkType, error) {
	return getOrderWorkTypes(ctx, tx, orderID)
}

func getOrderWorkTypes(ctx context.Context, q Querier, orderID uint64) ([]entities.OrderWorkType, error) {
	query := `SELECT owt.id, owt.order_id, owt.work_type_id, owt.extra_charge, w.name
		FROM order_work_types owt
		JOIN work_types w ON owt.work_type_id = w.id
		WHERE owt.order_id = $1
		ORDER BY owt.id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workTypes := make([]entities.OrderWorkType, 0)
	for rows.Next() {
		var owt entities.OrderWorkType
		if err := rows.Scan(&owt.ID, &owt.OrderID, &owt.WorkTypeID, &owt.ExtraCharge, &owt.WorkTypeName); err != nil {
			return nil, err
		}
		workTypes = append(workTypes, owt)
	}
	return workTypes, rows.Err()
}

func (r *orderRepository) UpdateOrder(ctx context.Context, id uint64, payload dto.UpdateOrderDTO) error {
	builder := sq.Update(orderTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		PlaceholderFormat(sq.Dollar)

	if payload.ExpectedDeliveryDate != nil {
		builder = builder.Set("expected_delivery_date", *payload.ExpectedDeliveryDate)
	}
	if payload.SpecialInstructions != nil {
		builder = builder.Set("special_instructions", *payload.SpecialInstructions)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetOrderStatusInTx moves the order to its new status. deliveredAt is set
// only on the transition into the delivered state.
func (r *orderRepository) SetOrderStatusInTx(ctx context.Context, tx pgx.Tx, orderID, toStatusID uint64, deliveredAt *time.Time) error {
	query := fmt.Sprintf(`UPDATE %s
		SET current_status_id = $1,
		    actual_delivery_date = COALESCE($2, actual_delivery_date),
		    updated_at = NOW()
		WHERE id = $3`, orderTable)
	result, err := tx.Exec(ctx, query, toStatusID, deliveredAt, orderID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SoftDeleteOrder(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("UPDATE %s SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE", orderTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
