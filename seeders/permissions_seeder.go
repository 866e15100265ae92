package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPermissions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'permissions'...")

	query := `INSERT INTO permissions (action, resource) VALUES ($1, $2) ON CONFLICT (action, resource) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, p := range permissionsData {
		if _, err := tx.Exec(ctx, query, p.Action, p.Resource); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
