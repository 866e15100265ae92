package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"makerspace-system/pkg/utils"
)

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'users'...")

	query := `
		INSERT INTO users (pid, first_name, last_name, email, password, role_id, signed_equipment_wavier)
		SELECT $1, $2, $3, $4, $5, r.id, $7
		FROM roles r
		WHERE r.name = $6
		ON CONFLICT (pid) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, u := range usersData {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, u.PID, u.FirstName, u.LastName, u.Email, hashed, u.Role, u.Waiver); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
