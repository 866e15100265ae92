package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'roles'...")

	query := `INSERT INTO roles (name, description) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, r := range rolesData {
		if _, err := tx.Exec(ctx, query, r.Name, r.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedRolePermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'role_permissions'...")

	query := `
		INSERT INTO role_permissions (role_id, permission_id)
		SELECT r.id, p.id
		FROM roles r, permissions p
		WHERE r.name = $1 AND p.action = $2 AND p.resource = $3
		ON CONFLICT (role_id, permission_id) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for roleName, perms := range rolePermissionsData {
		for _, p := range perms {
			if _, err := tx.Exec(ctx, query, roleName, p.Action, p.Resource); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}
