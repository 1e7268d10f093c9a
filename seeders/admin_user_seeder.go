package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"tailorshop/pkg/constants"
)

const adminEmail = "admin@tailorshop.local"

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating the default admin user...")

	var exists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", adminEmail).Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("    - admin user already exists, skipping")
		return nil
	}

	var roleID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", constants.RoleAdmin).Scan(&roleID); err != nil {
		return fmt.Errorf("role %q not found, run the roles seeder first: %w", constants.RoleAdmin, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID uint64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (full_name, email, phone, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, TRUE) RETURNING id`,
		"Shop Administrator", adminEmail, "+910000000000", string(hash)).Scan(&userID)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)", userID, roleID); err != nil {
		return err
	}

	log.Printf("    - admin user created (email: %s), change the password after first login", adminEmail)
	return tx.Commit(ctx)
}
