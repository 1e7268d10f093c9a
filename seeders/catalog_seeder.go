package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPaymentModes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'payment_modes'...")

	query := `INSERT INTO payment_modes (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, m := range paymentModesData {
		if _, err := tx.Exec(ctx, query, m.Code, m.Name); err != nil {
			return fmt.Errorf("insert payment mode %q: %w", m.Code, err)
		}
	}

	return tx.Commit(ctx)
}

// Garment and work type names carry no unique constraint, so the seeder
// checks for an existing row by name before inserting.
func seedGarmentTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'garment_types'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, g := range garmentTypesData {
		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM garment_types WHERE name = $1)", g.Name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO garment_types (name, description, base_price, estimated_days) VALUES ($1, $2, $3, $4)`,
			g.Name, g.Description, g.BasePrice, g.EstimatedDays)
		if err != nil {
			return fmt.Errorf("insert garment type %q: %w", g.Name, err)
		}
	}

	return tx.Commit(ctx)
}

func seedWorkTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'work_types'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, w := range workTypesData {
		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM work_types WHERE name = $1)", w.Name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO work_types (name, description, extra_charge) VALUES ($1, $2, $3)`,
			w.Name, w.Description, w.ExtraCharge)
		if err != nil {
			return fmt.Errorf("insert work type %q: %w", w.Name, err)
		}
	}

	return tx.Commit(ctx)
}

// seedSystemConfiguration inserts the single configuration row if none exists.
func seedSystemConfiguration(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - seeding 'system_configuration'...")

	var exists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM system_configuration)").Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("    - configuration row already exists, skipping")
		return nil
	}

	_, err := db.Exec(ctx,
		`INSERT INTO system_configuration (shop_name, tax_rate, urgency_multiplier, invoice_due_days, currency_code)
		 VALUES ($1, $2, $3, $4, $5)`,
		"Tailor Shop", "18.00", "1.20", 14, "INR")
	return err
}
