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
	userTable  = "users"
	userFields = "id, full_name, email, phone, password_hash, is_active, is_deleted, created_at, updated_at"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64, search string) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User, roleIDs []uint64) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error)
	SoftDeleteUser(ctx context.Context, id uint64) error
	GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error)
	GetUserIDsByRoleNames(ctx context.Context, roleNames []string) ([]uint64, error)
	SetUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error
}

type userRepository struct {
	storage *pgxpool.Pool
	txm     TxManagerInterface
}

func NewUserRepository(storage *pgxpool.Pool, txm TxManagerInterface) UserRepositoryInterface {
	return &userRepository{storage: storage, txm: txm}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.IsActive, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUsers(ctx context.Context, limit, offset uint64, search string) ([]entities.User, uint64, error) {
	countBuilder := sq.Select("COUNT(*)").From(userTable).
		Where(sq.Eq{"is_deleted": false}).PlaceholderFormat(sq.Dollar)
	listBuilder := sq.Select(userFields).From(userTable).
		Where(sq.Eq{"is_deleted": false}).PlaceholderFormat(sq.Dollar)
	if search != "" {
		pattern := "%" + search + "%"
		cond := sq.Or{
			sq.Expr("full_name ILIKE ?", pattern),
			sq.Expr("email ILIKE ?", pattern),
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
		return []entities.User{}, 0, nil
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

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.IsActive, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *userRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1 AND is_deleted = FALSE", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *userRepository) CreateUser(ctx context.Context, user entities.User, roleIDs []uint64) (*entities.User, error) {
	var created *entities.User
	err := r.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`INSERT INTO %s (full_name, email, phone, password_hash)
			VALUES ($1, $2, $3, $4) RETURNING %s`, userTable, userFields)
		u, err := scanUser(tx.QueryRow(ctx, query, user.FullName, user.Email, user.Phone, user.PasswordHash))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperrors.ErrUserAlreadyExists
			}
			return err
		}
		for _, roleID := range roleIDs {
			if _, err := tx.Exec(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)", u.ID, roleID); err != nil {
				return err
			}
		}
		created = u
		return nil
	})
	return created, err
}

func (r *userRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error) {
	builder := sq.Update(userTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("RETURNING " + userFields).
		PlaceholderFormat(sq.Dollar)

	if payload.FullName != nil {
		builder = builder.Set("full_name", *payload.FullName)
	}
	if payload.Phone != nil {
		builder = builder.Set("phone", *payload.Phone)
	}
	if payload.IsActive != nil {
		builder = builder.Set("is_active", *payload.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *userRepository) SoftDeleteUser(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("UPDATE %s SET is_deleted = TRUE, is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_deleted = FALSE", userTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error) {
	query := `SELECT r.name FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1 ORDER BY r.name`
	rows, err := r.storage.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *userRepository) GetUserIDsByRoleNames(ctx context.Context, roleNames []string) ([]uint64, error) {
	query := `SELECT DISTINCT u.id FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		JOIN roles r ON r.id = ur.role_id
		WHERE r.name = ANY($1) AND u.is_active = TRUE AND u.is_deleted = FALSE`
	rows, err := r.storage.Query(ctx, query, roleNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *userRepository) SetUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error {
	return r.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM user_roles WHERE user_id = $1", userID); err != nil {
			return err
		}
		for _, roleID := range roleIDs {
			if _, err := tx.Exec(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)", userID, roleID); err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23503" {
					return apperrors.ErrBadRequest
				}
				return err
			}
		}
		return nil
	})
}
