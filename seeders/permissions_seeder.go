package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"tailorshop/pkg/constants"
)

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'permissions'...")

	query := `INSERT INTO permissions (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, name := range constants.AllPermissions {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			return fmt.Errorf("insert permission %q: %w", name, err)
		}
	}

	return tx.Commit(ctx)
}
