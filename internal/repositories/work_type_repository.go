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
	workTypeTable  = "work_types"
	workTypeFields = "id, name, description, extra_charge, is_active, created_at, updated_at"
)

type WorkTypeRepositoryInterface interface {
	GetWorkTypes(ctx context.Context) ([]entities.WorkType, error)
	FindWorkType(ctx context.Context, id uint64) (*entities.WorkType, error)
	FindWorkTypesByIDs(ctx context.Context, ids []uint64) ([]entities.WorkType, error)
	CreateWorkType(ctx context.Context, payload dto.CreateWorkTypeDTO) (*entities.WorkType, error)
	UpdateWorkType(ctx context.Context, id uint64, payload dto.UpdateWorkTypeDTO) (*entities.WorkType, error)
}

type workTypeRepository struct{ storage *pgxpool.Pool }

func NewWorkTypeRepository(storage *pgxpool.Pool) WorkTypeRepositoryInterface {
	return &workTypeRepository{storage: storage}
}

func scanWorkType(row pgx.Row) (*entities.WorkType, error) {
	var w entities.WorkType
	err := row.Scan(&w.ID, &w.Name, &w.Description, &w.ExtraCharge, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *workTypeRepository) GetWorkTypes(ctx context.Context) ([]entities.WorkType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name", workTypeFields, workTypeTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanWorkTypeRows(rows)
}

func scanWorkTypeRows(rows pgx.Rows) ([]entities.WorkType, error) {
	defer rows.Close()
	workTypes := make([]entities.WorkType, 0)
	for rows.Next() {
		var w entities.WorkType
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.ExtraCharge, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		workTypes = append(workTypes, w)
	}
	return workTypes, rows.Err()
}

func (r *workTypeRepository) FindWorkType(ctx context.Context, id uint64) (*entities.WorkType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", workTypeFields, workTypeTable)
	return scanWorkType(r.storage.QueryRow(ctx, query, id))
}

func (r *workTypeRepository) FindWorkTypesByIDs(ctx context.Context, ids []uint64) ([]entities.WorkType, error) {
	if len(ids) == 0 {
		return []entities.WorkType{}, nil
	}
	query, args, err := sq.Select(workTypeFields).
		From(workTypeTable).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanWorkTypeRows(rows)
}

func (r *workTypeRepository) CreateWorkType(ctx context.Context, payload dto.CreateWorkTypeDTO) (*entities.WorkType, error) {
	query := fmt.Sprintf(`INSERT INTO %s (name, description, extra_charge)
		VALUES ($1, $2, $3) RETURNING %s`, workTypeTable, workTypeFields)
	created, err := scanWorkType(r.storage.QueryRow(ctx, query, payload.Name, payload.Description, payload.ExtraCharge))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *workTypeRepository) UpdateWorkType(ctx context.Context, id uint64, payload dto.UpdateWorkTypeDTO) (*entities.WorkType, error) {
	builder := sq.Update(workTypeTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + workTypeFields).
		PlaceholderFormat(sq.Dollar)

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
	}
	if payload.Description != nil {
		builder = builder.Set("description", *payload.Description)
	}
	if payload.ExtraCharge != nil {
		builder = builder.Set("extra_charge", *payload.ExtraCharge)
	}
	if payload.IsActive != nil {
		builder = builder.Set("is_active", *payload.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanWorkType(r.storage.QueryRow(ctx, query, args...))
}
