package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedStatuses(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'order_statuses'...")

	query := `INSERT INTO order_statuses (code, label, description, sequence, is_terminal)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (code) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range statusesData {
		if _, err := tx.Exec(ctx, query, s.Code, s.Label, s.Description, s.Sequence, s.IsTerminal); err != nil {
			return fmt.Errorf("insert status %q: %w", s.Code, err)
		}
	}

	return tx.Commit(ctx)
}

func seedTransitions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'order_status_transitions'...")

	query := `INSERT INTO order_status_transitions (from_status_id, to_status_id, allowed_roles, precondition, description)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (from_status_id, to_status_id) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range transitionsData {
		var fromID, toID uint64
		if err := tx.QueryRow(ctx, "SELECT id FROM order_statuses WHERE code = $1", t.From).Scan(&fromID); err != nil {
			return fmt.Errorf("status %q not found: %w", t.From, err)
		}
		if err := tx.QueryRow(ctx, "SELECT id FROM order_statuses WHERE code = $1", t.To).Scan(&toID); err != nil {
			return fmt.Errorf("status %q not found: %w", t.To, err)
		}

		var precondition any
		if t.Precondition != "" {
			precondition = t.Precondition
		}
		if _, err := tx.Exec(ctx, query, fromID, toID, t.AllowedRoles, precondition, t.Description); err != nil {
			return fmt.Errorf("insert transition %s -> %s: %w", t.From, t.To, err)
		}
	}

	return tx.Commit(ctx)
}
