package entities

import "makerspace-system/pkg/types"

// CheckoutRequest is a pending claim by one requester on one equipment model,
// not on a specific unit. At most one outstanding request per (model, pid)
// pair; the rule is enforced by the service at creation time.
type CheckoutRequest struct {
	ID       uint64 `json:"id" db:"id"`
	UserName string `json:"user_name" db:"user_name"`
	Model    string `json:"model" db:"model"`
	PID      int64  `json:"pid" db:"pid"`

	types.BaseEntity
}
