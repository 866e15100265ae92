package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Filling 'equipment'...")

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM equipment").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("  - 'equipment' already holds %d rows, skipping", count)
		return nil
	}

	query := `
		INSERT INTO equipment (model, equipment_image, condition, is_checked_out, condition_notes, checkout_history)
		VALUES ($1, $2, $3, $4, '{}', '{}');`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, e := range equipmentSeedData {
		if _, err := tx.Exec(ctx, query, e.Model, e.Image, e.Condition, e.IsCheckedOut); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
