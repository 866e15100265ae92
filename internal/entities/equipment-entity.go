package entities

import "makerspace-system/pkg/types"

// Equipment is one physical loanable item. Multiple units of the same kind
// share a model; is_checked_out is the single source of truth for
// availability.
type Equipment struct {
	EquipmentID     uint64   `json:"equipment_id" db:"equipment_id"`
	Model           string   `json:"model" db:"model"`
	EquipmentImage  string   `json:"equipment_image" db:"equipment_image"`
	Condition       int      `json:"condition" db:"condition"`
	IsCheckedOut    bool     `json:"is_checked_out" db:"is_checked_out"`
	ConditionNotes  []string `json:"condition_notes" db:"condition_notes"`
	CheckoutHistory []int64  `json:"checkout_history" db:"checkout_history"`

	types.BaseEntity
}
