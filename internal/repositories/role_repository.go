package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/internal/entities"
	apperrors "tailorshop/pkg/errors"
)

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context) ([]entities.Role, error)
	FindRole(ctx context.Context, id uint64) (*entities.Role, error)
	GetPermissions(ctx context.Context) ([]entities.Permission, error)
	GetPermissionNamesForRoles(ctx context.Context, roleNames []string) ([]string, error)
}

type roleRepository struct{ storage *pgxpool.Pool }

func NewRoleRepository(storage *pgxpool.Pool) RoleRepositoryInterface {
	return &roleRepository{storage: storage}
}

func (r *roleRepository) GetRoles(ctx context.Context) ([]entities.Role, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, description, created_at FROM roles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) FindRole(ctx context.Context, id uint64) (*entities.Role, error) {
	var role entities.Role
	err := r.storage.QueryRow(ctx, "SELECT id, name, description, created_at FROM roles WHERE id = $1", id).
		Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetPermissions(ctx context.Context) ([]entities.Permission, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, description, created_at FROM permissions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]entities.Permission, 0)
	for rows.Next() {
		var p entities.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}

func (r *roleRepository) GetPermissionNamesForRoles(ctx context.Context, roleNames []string) ([]string, error) {
	if len(roleNames) == 0 {
		return []string{}, nil
	}
	query := `SELECT DISTINCT p.name
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN roles r ON rp.role_id = r.id
		WHERE r.name = ANY($1)
		ORDER BY p.name`
	rows, err := r.storage.Query(ctx, query, roleNames)
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
