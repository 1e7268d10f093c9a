package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"tailorshop/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := "up"
	var args []string
	if rest := flag.Args(); len(rest) > 0 {
		command = rest[0]
		args = rest[1:]
	}

	cfg := config.New()
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}
	if err := goose.Run(command, db, *dir, args...); err != nil {
		log.Fatalf("goose %s failed: %v", command, err)
	}
}
