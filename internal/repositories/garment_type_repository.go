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
	apperrors "tailorshop/pkg/errors"
)

const (
	garmentTypeTable  = "garment_types"
	garmentTypeFields = "id, name, description, base_price, estimated_days, is_active, created_at, updated_at"
)

type GarmentTypeRepositoryInterface interface {
	GetGarmentTypes(ctx context.Context, limit, offset uint64, search string) ([]entities.GarmentType, uint64, error)
	FindGarmentType(ctx context.Context, id uint64) (*entities.GarmentType, error)
	CreateGarmentType(ctx context.Context, payload dto.CreateGarmentTypeDTO) (*entities.GarmentType, error)
	UpdateGarmentType(ctx context.Context, id uint64, payload dto.UpdateGarmentTypeDTO) (*entities.GarmentType, error)
	GetIncludedWorkTypeIDs(ctx context.Context, garmentTypeID uint64) (map[uint64]bool, error)
}

type garmentTypeRepository struct{ storage *pgxpool.Pool }

func NewGarmentTypeRepository(storage *pgxpool.Pool) GarmentTypeRepositoryInterface {
	return &garmentTypeRepository{storage: storage}
}

func scanGarmentType(row pgx.Row) (*entities.GarmentType, error) {
	var g entities.GarmentType
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.BasePrice, &g.EstimatedDays, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *garmentTypeRepository) GetGarmentTypes(ctx context.Context, limit, offset uint64, search string) ([]entities.GarmentType, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").From(garmentTypeTable).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(garmentTypeFields).From(garmentTypeTable).PlaceholderFormat(sq.Dollar)
	if search != "" {
		cond := sq.Expr("name ILIKE ?", "%"+search+"%")
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
		return []entities.GarmentType{}, 0, nil
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

	garments := make([]entities.GarmentType, 0)
	for rows.Next() {
		var g entities.GarmentType
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.BasePrice, &g.EstimatedDays, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, 0, err
		}
		garments = append(garments, g)
	}
	return garments, total, rows.Err()
}

func (r *garmentTypeRepository) FindGarmentType(ctx context.Context, id uint64) (*entities.GarmentType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", garmentTypeFields, garmentTypeTable)
	return scanGarmentType(r.storage.QueryRow(ctx, query, id))
}

func (r *garmentTypeRepository) CreateGarmentType(ctx context.Context, payload dto.CreateGarmentTypeDTO) (*entities.GarmentType, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name, description, base_price, estimated_days)
		VALUES ($1, $2, $3, $4) RETURNING %s`, garmentTypeTable, garmentTypeFields)
	created, err := scanGarmentType(r.storage.QueryRow(ctx, query,
		payload.Name, payload.Description, payload.BasePrice, payload.EstimatedDays))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *garmentTypeRepository) UpdateGarmentType(ctx context.Context, id uint64, payload dto.UpdateGarmentTypeDTO) (*entities.GarmentType, error) {
	builder := sq.Update(garmentTypeTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + garmentTypeFields).
		PlaceholderFormat(sq.Dollar)

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}
	if payload.BasePrice != nil {
		builder = builder.Set("base_price", *payload.BasePrice)
	}
	if payload.EstimatedDays != nil {
		builder = builder.Set("estimated_days", *payload.EstimatedDays)
	}
	if payload.IsActive != nil {
		builder = builder.Set("is_active", *payload.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanGarmentType(r.storage.QueryRow(ctx, query, args...))
}

// GetIncludedWorkTypeIDs returns the work types whose charge is already part
// of the garment's base price.
func (r *garmentTypeRepository) GetIncludedWorkTypeIDs(ctx context.Context, garmentTypeID uint64) (map[uint64]bool, error) {
	query := `SELECT work_type_id FROM garment_work_types WHERE garment_type_id = $1 AND is_included_in_base = TRUE`
	rows, err := r.storage.Query(ctx, query, garmentTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	included := make(map[uint64]bool)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		included[id] = true
	}
	return included, rows.Err()
}
