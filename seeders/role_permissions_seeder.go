package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/pkg/constants"
)

// getRolePermissionsMap defines the default grants per role. The seeder is
// additive: missing links are inserted, existing ones are left alone.
func getRolePermissionsMap() map[string][]string {
	return map[string][]string{
		constants.RoleAdmin: constants.AllPermissions,
		constants.RoleStaff: {
			constants.PermOrdersRead, constants.PermOrdersCreate, constants.PermOrdersUpdate,
			constants.PermOrdersDelete, constants.PermOrdersChangeStatus,
			constants.PermBillingRead, constants.PermBillingManage,
			constants.PermPaymentsRead, constants.PermPaymentsCreate,
			constants.PermTrialsRead, constants.PermTrialsManage,
			constants.PermCatalogRead, constants.PermCatalogManage,
			constants.PermCustomersRead, constants.PermCustomersManage,
			constants.PermInventoryRead, constants.PermInventoryManage,
			constants.PermUsersRead,
			constants.PermRegistryRead,
			constants.PermConfigRead,
			constants.PermReportsRead,
		},
		constants.RoleTailor: {
			constants.PermOrdersRead, constants.PermOrdersChangeStatus,
			constants.PermTrialsRead, constants.PermTrialsManage,
			constants.PermInventoryRead,
			constants.PermRegistryRead,
		},
		constants.RoleDelivery: {
			constants.PermOrdersRead, constants.PermOrdersChangeStatus,
			constants.PermRegistryRead,
		},
		constants.RoleDesigner: {
			constants.PermOrdersRead,
			constants.PermTrialsRead,
			constants.PermCatalogRead,
			constants.PermRegistryRead,
		},
	}
}

func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'role_permissions'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for roleName, permissionNames := range getRolePermissionsMap() {
		var roleID uint64
		if err := tx.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", roleName).Scan(&roleID); err != nil {
			log.Printf("WARNING: role %q not found, skipping", roleName)
			continue
		}

		for _, permName := range permissionNames {
			var permID uint64
			if err := tx.QueryRow(ctx, "SELECT id FROM permissions WHERE name = $1", permName).Scan(&permID); err != nil {
				log.Printf("WARNING: permission %q not found, skipping", permName)
				continue
			}
			if _, err := tx.Exec(ctx, query, roleID, permID); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
