package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'roles'...")

	query := `INSERT INTO roles (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range rolesData {
		if _, err := tx.Exec(ctx, query, r.Name, r.Description); err != nil {
			return fmt.Errorf("insert role %q: %w", r.Name, err)
		}
	}

	return tx.Commit(ctx)
}
