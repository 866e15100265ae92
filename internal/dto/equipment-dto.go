package dto

// UpdateEquipmentDTO carries a complete equipment record. Update is a
// full-record overwrite keyed by equipment_id, not a partial patch: clients
// must read-modify-write.
type UpdateEquipmentDTO struct {
	EquipmentID     uint64   `json:"equipment_id" validate:"required,gt=0"`
	Model           string   `json:"model" validate:"required"`
	EquipmentImage  string   `json:"equipment_image"`
	Condition       int      `json:"condition" validate:"gte=0,lte=10"`
	IsCheckedOut    bool     `json:"is_checked_out"`
	ConditionNotes  []string `json:"condition_notes"`
	CheckoutHistory []int64  `json:"checkout_history"`
}

type CreateEquipmentDTO struct {
	Model          string `json:"model" validate:"required"`
	EquipmentImage string `json:"equipment_image"`
	Condition      int    `json:"condition" validate:"gte=0,lte=10"`
}

// EquipmentTypeDTO is the derived aggregate over all equipment sharing a
// model. Never persisted; recomputed on every call.
type EquipmentTypeDTO struct {
	Model           string `json:"model"`
	NumAvailable    int    `json:"num_available"`
	EquipmentImgURL string `json:"equipment_img_URL"`
}

type ImportSummaryDTO struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
