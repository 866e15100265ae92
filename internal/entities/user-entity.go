package entities

import "makerspace-system/pkg/types"

type User struct {
	ID        uint64 `json:"id" db:"id"`
	PID       int64  `json:"pid" db:"pid"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	RoleID uint64 `json:"role_id" db:"role_id"`

	// Column and JSON names keep the historical "wavier" misspelling; clients
	// already depend on it.
	SignedEquipmentWavier bool `json:"signed_equipment_wavier" db:"signed_equipment_wavier"`

	RoleName string `json:"role_name,omitempty" db:"-"`

	types.BaseEntity
}
