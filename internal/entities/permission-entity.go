package entities

import "makerspace-system/pkg/types"

// Permission is a single (action, resource) grant. "*" in either position
// acts as a wildcard.
type Permission struct {
	ID       uint64 `json:"id" db:"id"`
	Action   string `json:"action" db:"action"`
	Resource string `json:"resource" db:"resource"`

	types.BaseEntity
}
