package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCoreDictionaries fills the dictionaries that have no dependencies.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Seeding core dictionaries...")

	if err := seedPermissions(ctx, db); err != nil {
		log.Fatalf("❌ Failed seeding permissions: %v", err)
	}
	log.Println("✅ Core dictionaries seeded!")
}

// SeedRolesAndUsers sets up roles, their permission links and the demo accounts.
func SeedRolesAndUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Seeding roles and demo users...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("❌ Failed seeding roles: %v", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		log.Fatalf("❌ Failed seeding role-permission links: %v", err)
	}
	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Failed seeding users: %v", err)
	}
	log.Println("✅ Roles and demo users seeded!")
}

// SeedEquipment fills the inventory with the demo fixtures.
func SeedEquipment(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Seeding equipment inventory...")

	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Failed seeding equipment: %v", err)
	}
	log.Println("✅ Equipment inventory seeded!")
}
