package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCoreDictionaries fills the dictionaries nothing else can run without:
// statuses, the transition table, permissions.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding core dictionaries...")

	if err := seedStatuses(ctx, db); err != nil {
		log.Fatalf("failed to seed statuses: %v", err)
	}
	if err := seedTransitions(ctx, db); err != nil {
		log.Fatalf("failed to seed transitions: %v", err)
	}
	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("failed to seed permissions: %v", err)
	}

	log.Println("core dictionaries done")
}

// SeedRolesAndAdmin sets up roles, their grants and the default admin user.
func SeedRolesAndAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding roles and admin...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("failed to seed role permissions: %v", err)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Println("roles and admin done")
}

// SeedCatalog fills payment modes, garment and work types, and the
// configuration row with sensible defaults.
func SeedCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding catalog...")

	if err := seedPaymentModes(ctx, db); err != nil {
		log.Fatalf("failed to seed payment modes: %v", err)
	}
	if err := seedGarmentTypes(ctx, db); err != nil {
		log.Fatalf("failed to seed garment types: %v", err)
	}
	if err := seedWorkTypes(ctx, db); err != nil {
		log.Fatalf("failed to seed work types: %v", err)
	}
	if err := seedSystemConfiguration(ctx, db); err != nil {
		log.Fatalf("failed to seed system configuration: %v", err)
	}

	log.Println("catalog done")
}
