package main

import (
	"flag"
	"log"

	"tailorshop/pkg/config"
	"tailorshop/pkg/database/postgresql"
	"tailorshop/seeders"
)

func main() {
	runCore := flag.Bool("core", false, "seed statuses, transitions and permissions")
	runRoles := flag.Bool("roles", false, "seed roles, grants and the default admin user")
	runCatalog := flag.Bool("catalog", false, "seed payment modes, garment/work types and configuration")
	runAll := flag.Bool("all", false, "run every seeder (equivalent to -core -roles -catalog)")

	flag.Parse()

	if !*runCore && !*runRoles && !*runCatalog && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -core")
		log.Println("  go run ./seeders/cmd/seed -core -roles")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		seeders.SeedCoreDictionaries(dbPool)
	}
	if *runAll || *runRoles {
		// roles and the admin depend on permissions being present
		seeders.SeedRolesAndAdmin(dbPool)
	}
	if *runAll || *runCatalog {
		seeders.SeedCatalog(dbPool)
	}

	log.Println("seeding finished")
}
