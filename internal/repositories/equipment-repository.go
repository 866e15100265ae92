package repositories

import (
	"context"
	"errors"

	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipment"
const equipmentFields = "equipment_id, model, equipment_image, condition, is_checked_out, condition_notes, checkout_history, created_at, updated_at"

var equipmentAllowedFields = map[string]string{
	"model":          "model",
	"is_checked_out": "is_checked_out",
	"condition":      "condition",
	"equipment_id":   "equipment_id",
}

type EquipmentRepositoryInterface interface {
	GetAllEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, equipmentID uint64) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error)
	GetAvailableByModel(ctx context.Context, model string) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error)
	CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, item *entities.Equipment) error
	DeleteEquipment(ctx context.Context, equipmentID uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.EquipmentID, &e.Model, &e.EquipmentImage, &e.Condition,
		&e.IsCheckedOut, &e.ConditionNotes, &e.CheckoutHistory,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) queryEquipment(ctx context.Context, builder sq.SelectBuilder) ([]entities.Equipment, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetAllEquipment returns equipment in store order (primary key order) unless
// an explicit sort is requested.
func (r *EquipmentRepository) GetAllEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	builder := sq.Select(equipmentFields).From(equipmentTable)
	builder = ApplyListParams(builder, filter, equipmentAllowedFields)
	builder = builder.OrderBy("equipment_id ASC")
	return r.queryEquipment(ctx, builder)
}

func (r *EquipmentRepository) GetAvailableByModel(ctx context.Context, model string) ([]entities.Equipment, error) {
	builder := sq.Select(equipmentFields).
		From(equipmentTable).
		Where(sq.Eq{"model": model, "is_checked_out": false}).
		OrderBy("equipment_id ASC")
	return r.queryEquipment(ctx, builder)
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, equipmentID uint64) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `
		FROM ` + equipmentTable + `
		WHERE equipment_id = $1
	`
	return scanEquipment(r.storage.QueryRow(ctx, query, equipmentID))
}

// UpdateEquipment replaces every field of the stored record with the incoming
// one. Last writer wins; there is no version token.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error) {
	query := `
		UPDATE ` + equipmentTable + `
		SET model = $1, equipment_image = $2, condition = $3, is_checked_out = $4,
			condition_notes = $5, checkout_history = $6, updated_at = CURRENT_TIMESTAMP
		WHERE equipment_id = $7
		RETURNING ` + equipmentFields + `
	`
	return scanEquipment(r.storage.QueryRow(ctx, query,
		item.Model,
		item.EquipmentImage,
		item.Condition,
		item.IsCheckedOut,
		item.ConditionNotes,
		item.CheckoutHistory,
		item.EquipmentID,
	))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, item *entities.Equipment) (*entities.Equipment, error) {
	query := `
		INSERT INTO ` + equipmentTable + ` (model, equipment_image, condition, is_checked_out, condition_notes, checkout_history)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + equipmentFields + `
	`
	return scanEquipment(r.storage.QueryRow(ctx, query,
		item.Model,
		item.EquipmentImage,
		item.Condition,
		item.IsCheckedOut,
		item.ConditionNotes,
		item.CheckoutHistory,
	))
}

func (r *EquipmentRepository) CreateEquipmentInTx(ctx context.Context, tx pgx.Tx, item *entities.Equipment) error {
	query := `
		INSERT INTO ` + equipmentTable + ` (model, equipment_image, condition, is_checked_out, condition_notes, checkout_history)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.Exec(ctx, query,
		item.Model,
		item.EquipmentImage,
		item.Condition,
		item.IsCheckedOut,
		item.ConditionNotes,
		item.CheckoutHistory,
	)
	return err
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, equipmentID uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM "+equipmentTable+" WHERE equipment_id = $1", equipmentID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}
