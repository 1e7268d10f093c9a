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
	customerTable  = "customers"
	customerFields = "id, full_name, phone, email, address, notes, is_deleted, created_at, updated_at"
)

type CustomerRepositoryInterface interface {
	GetCustomers(ctx context.Context, limit, offset uint64, search string) ([]entities.Customer, uint64, error)
	FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*entities.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*entities.Customer, error)
	SoftDeleteCustomer(ctx context.Context, id uint64) error
	CreateMeasurement(ctx context.Context, m entities.Measurement) (*entities.Measurement, error)
	GetMeasurements(ctx context.Context, customerID uint64) ([]entities.Measurement, error)
}

type customerRepository struct{ storage *pgxpool.Pool }

func NewCustomerRepository(storage *pgxpool.Pool) CustomerRepositoryInterface {
	return &customerRepository{storage: storage}
}

func scanCustomer(row pgx.Row) (*entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetCustomers(ctx context.Context, limit, offset uint64, search string) ([]entities.Customer, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").From(customerTable).
		Where(sq.Eq{"is_deleted": false}).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(customerFields).From(customerTable).
		Where(sq.Eq{"is_deleted": false}).PlaceholderFormat(sq.Dollar)
	if search != "" {
		pattern := "%" + search + "%"
		cond := sq.Or{
			sq.Expr("full_name ILIKE ?", pattern),
			sq.Expr("phone ILIKE ?", pattern),
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
		return []entities.Customer{}, 0, nil
	}

	query, args, err := listBuilder.OrderBy("full_name").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]entities.Customer, 0)
	for rows.Next() {
		var c entities.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, rows.Err()
}

func (r *customerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE", customerFields, customerTable)
	return scanCustomer(r.storage.QueryRow(ctx, query, id))
}

func (r *customerRepository) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*entities.Customer, error) {
	query := fmt.Sprintf(`INSERT INTO %s (full_name, phone, email, address, notes)
		VALUES ($1, $2, $3, $4, $5) RETURNING %s`, customerTable, customerFields)
	created, err := scanCustomer(r.storage.QueryRow(ctx, query,
		payload.FullName, payload.Phone, payload.Email, payload.Address, payload.Notes))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*entities.Customer, error) {
	builder := sq.Update(customerTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("RETURNING " + customerFields).
		PlaceholderFormat(sq.Dollar)

	if payload.FullName != nil {
		builder = builder.Set("full_name", *payload.FullName)
	}
	if payload.Phone != nil {
		builder = builder.Set("phone", *payload.Phone)
	}
	if payload.Email != nil {
		builder = builder.Set("email", *payload.Email)
	}
	if payload.Address != nil {
		builder = builder.Set("address", *payload.Address)
	}
	if payload.Notes != nil {
		builder = builder.Set("notes", *payload.Notes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	created, err := scanCustomer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func (r *customerRepository) SoftDeleteCustomer(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("UPDATE %s SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE", customerTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *customerRepository) CreateMeasurement(ctx context.Context, m entities.Measurement) (*entities.Measurement, error) {
	query := `INSERT INTO measurements (customer_id, name, value, unit, taken_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, name, value, unit, taken_at, taken_by_id`
	var created entities.Measurement
	err := r.storage.QueryRow(ctx, query, m.CustomerID, m.Name, m.Value, m.Unit, m.TakenByID).
		Scan(&created.ID, &created.CustomerID, &created.Name, &created.Value, &created.Unit, &created.TakenAt, &created.TakenByID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *customerRepository) GetMeasurements(ctx context.Context, customerID uint64) ([]entities.Measurement, error) {
	query := `SELECT id, customer_id, name, value, unit, taken_at, taken_by_id
		FROM measurements WHERE customer_id = $1 ORDER BY taken_at DESC, id DESC`
	rows, err := r.storage.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := make([]entities.Measurement, 0)
	for rows.Next() {
		var m entities.Measurement
		if err := rows.Scan(&m.ID, &m.CustomerID, &m.Name, &m.Value, &m.Unit, &m.TakenAt, &m.TakenByID); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}
