package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

const (
	fabricTable  = "fabrics"
	fabricFields = "id, name, color, material, price_per_unit, unit, quantity_on_hand, reorder_level, is_active, created_at, updated_at"
)

type FabricRepositoryInterface interface {
	GetFabrics(ctx context.Context, limit, offset uint64, search string) ([]entities.Fabric, uint64, error)
	FindFabric(ctx context.Context, id uint64) (*entities.Fabric, error)
	FindFabricForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Fabric, error)
	CreateFabric(ctx context.Context, payload dto.CreateFabricDTO) (*entities.Fabric, error)
	UpdateFabric(ctx context.Context, id uint64, payload dto.UpdateFabricDTO) (*entities.Fabric, error)
	AdjustQuantityInTx(ctx context.Context, tx pgx.Tx, fabricID uint64, delta decimal.Decimal) error
	CountLowStock(ctx context.Context) (uint64, error)

	CreateStockMovementInTx(ctx context.Context, tx pgx.Tx, m entities.StockMovement) (*entities.StockMovement, error)
	GetStockMovements(ctx context.Context, fabricID uint64, limit, offset uint64) ([]entities.StockMovement, uint64, error)

	CreateAllocationInTx(ctx context.Context, tx pgx.Tx, a entities.MaterialAllocation) (*entities.MaterialAllocation, error)
	GetAllocationsByOrderID(ctx context.Context, orderID uint64) ([]entities.MaterialAllocation, error)
}

type fabricRepository struct{ storage *pgxpool.Pool }

func NewFabricRepository(storage *pgxpool.Pool) FabricRepositoryInterface {
	return &fabricRepository{storage: storage}
}

func scanFabric(row pgx.Row) (*entities.Fabric, error) {
	var f entities.Fabric
	err := row.Scan(&f.ID, &f.Name, &f.Color, &f.Material, &f.PricePerUnit, &f.Unit,
		&f.QuantityOnHand, &f.ReorderLevel, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *fabricRepository) GetFabrics(ctx context.Context, limit, offset uint64, search string) ([]entities.Fabric, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").From(fabricTable).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(fabricFields).From(fabricTable).PlaceholderFormat(sq.Dollar)
	if search != "" {
		pattern := "%" + search + "%"
		cond := sq.Or{
			sq.Expr("name ILIKE ?", pattern),
			sq.Expr("color ILIKE ?", pattern),
			sq.Expr("material ILIKE ?", pattern),
		}
		countBuilder = countBuilder.Where(cond)
		listBuilder = listBuilder.Where(cond)
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
		return []entities.Fabric{}, 0, nil
	}

	query, args, err := listBuilder.OrderBy("name").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	fabrics := make([]entities.Fabric, 0)
	for rows.Next() {
		var f entities.Fabric
		if err := rows.Scan(&f.ID, &f.Name, &f.Color, &f.Material, &f.PricePerUnit, &f.Unit,
			&f.QuantityOnHand, &f.ReorderLevel, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, 0, err
		}
		fabrics = append(fabrics, f)
	}
	return fabrics, total, rows.Err()
}

func (r *fabricRepository) FindFabric(ctx context.Context, id uint64) (*entities.Fabric, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", fabricFields, fabricTable)
	return scanFabric(r.storage.QueryRow(ctx, query, id))
}

func (r *fabricRepository) FindFabricForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Fabric, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 FOR UPDATE", fabricFields, fabricTable)
	return scanFabric(tx.QueryRow(ctx, query, id))
}

func (r *fabricRepository) CreateFabric(ctx context.Context, payload dto.CreateFabricDTO) (*entities.Fabric, error) {
	reorderLevel := payload.ReorderLevel
	if reorderLevel == "" {
		reorderLevel = "0"
	}
	query := fmt.Sprintf(`INSERT INTO %s (name, color, material, price_per_unit, unit, reorder_level)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`, fabricTable, fabricFields)
	created, err := scanFabric(r.storage.QueryRow(ctx, query,
		payload.Name, payload.Color, payload.Material, payload.PricePerUnit, payload.Unit, reorderLevel))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *fabricRepository) UpdateFabric(ctx context.Context, id uint64, payload dto.UpdateFabricDTO) (*entities.Fabric, error) {
	builder := sq.Update(fabricTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + fabricFields).
		PlaceholderFormat(sq.Dollar)

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Color != nil {
		builder = builder.Set("color", *payload.Color)
	}
	if payload.Material != nil {
		builder = builder.Set("material", *payload.Material)
	}
	if payload.PricePerUnit != nil {
		builder = builder.Set("price_per_unit", *payload.PricePerUnit)
	}
	if payload.ReorderLevel != nil {
		builder = builder.Set("reorder_level", *payload.ReorderLevel)
	}
	if payload.IsActive != nil {
		builder = builder.Set("is_active", *payload.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanFabric(r.storage.QueryRow(ctx, query, args...))
}

func (r *fabricRepository) AdjustQuantityInTx(ctx context.Context, tx pgx.Tx, fabricID uint64, delta decimal.Decimal) error {
	query := fmt.Sprintf(`UPDATE %s SET quantity_on_hand = quantity_on_hand + $1, updated_at = NOW() WHERE id = $2`, fabricTable)
	result, err := tx.Exec(ctx, query, delta, fabricID)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23514: the non-negative quantity check.
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return apperrors.NewPreconditionError("stock_available", "insufficient stock on hand")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *fabricRepository) CountLowStock(ctx context.Context) (uint64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE is_active = TRUE AND quantity_on_hand <= reorder_level", fabricTable)
	var total uint64
	err := r.storage.QueryRow(ctx, query).Scan(&total)
	return total, err
}

func (r *fabricRepository) CreateStockMovementInTx(ctx context.Context, tx pgx.Tx, m entities.StockMovement) (*entities.StockMovement, error) {
	query := `INSERT INTO stock_movements (fabric_id, kind, quantity, reason, order_id, recorded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fabric_id, kind, quantity, reason, order_id, recorded_by_id, recorded_at`
	var created entities.StockMovement
	err := tx.QueryRow(ctx, query, m.FabricID, m.Kind, m.Quantity, m.Reason, m.OrderID, m.RecordedByID).
		Scan(&created.ID, &created.FabricID, &created.Kind, &created.Quantity, &created.Reason,
			&created.OrderID, &created.RecordedByID, &created.RecordedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *fabricRepository) GetStockMovements(ctx context.Context, fabricID uint64, limit, offset uint64) ([]entities.StockMovement, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM stock_movements WHERE fabric_id = $1", fabricID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.StockMovement{}, 0, nil
	}

	query := `SELECT id, fabric_id, kind, quantity, reason, order_id, recorded_by_id, recorded_at
		FROM stock_movements WHERE fabric_id = $1
		ORDER BY recorded_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.storage.Query(ctx, query, fabricID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	movements := make([]entities.StockMovement, 0)
	for rows.Next() {
		var m entities.StockMovement
		if err := rows.Scan(&m.ID, &m.FabricID, &m.Kind, &m.Quantity, &m.Reason, &m.OrderID, &m.RecordedByID, &m.RecordedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	return movements, total, rows.Err()
}

func (r *fabricRepository) CreateAllocationInTx(ctx context.Context, tx pgx.Tx, a entities.MaterialAllocation) (*entities.MaterialAllocation, error) {
	query := `INSERT INTO material_allocations (order_id, fabric_id, quantity, allocated_by_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, fabric_id, quantity, allocated_by_id, allocated_at`
	var created entities.MaterialAllocation
	err := tx.QueryRow(ctx, query, a.OrderID, a.FabricID, a.Quantity, a.AllocatedByID).
		Scan(&created.ID, &created.OrderID, &created.FabricID, &created.Quantity, &created.AllocatedByID, &created.AllocatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *fabricRepository) GetAllocationsByOrderID(ctx context.Context, orderID uint64) ([]entities.MaterialAllocation, error) {
	query := `SELECT id, order_id, fabric_id, quantity, allocated_by_id, allocated_at
		FROM material_allocations WHERE order_id = $1 ORDER BY id`
	rows, err := r.storage.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := make([]entities.MaterialAllocation, 0)
	for rows.Next() {
		var a entities.MaterialAllocation
		if err := rows.Scan(&a.ID, &a.OrderID, &a.FabricID, &a.Quantity, &a.AllocatedByID, &a.AllocatedAt); err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}
