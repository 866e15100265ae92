package main

import (
	"flag"
	"log"

	"makerspace-system/pkg/config"
	"makerspace-system/pkg/database/postgresql"
	"makerspace-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Database seeders")
	log.Println("======================================================")

	runCore := flag.Bool("core", false, "Seed the core dictionaries (permissions)")
	runRoles := flag.Bool("roles", false, "Seed roles, role-permission links and demo users")
	runEquipment := flag.Bool("equipment", false, "Seed the demo equipment inventory")
	runAll := flag.Bool("all", false, "Run every seeder (same as -core -roles -equipment)")

	flag.Parse()

	if !*runCore && !*runRoles && !*runEquipment && !*runAll {
		log.Println("❌ No seeder selected.")
		log.Println("")
		log.Println("Available flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Examples:")
		log.Println("  go run ./seeders/cmd/seed/main.go -core")
		log.Println("  go run ./seeders/cmd/seed/main.go -core -roles")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Using DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runCore {
		seeders.SeedCoreDictionaries(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runRoles {
		// Role links depend on the permissions dictionary.
		seeders.SeedRolesAndUsers(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runEquipment {
		seeders.SeedEquipment(dbPool)
		log.Println("======================================================")
	}

	log.Println("🎉 Seeding finished.")
}
