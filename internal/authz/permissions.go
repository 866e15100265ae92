// internal/authz/permissions.go
package authz

// --- ALL PERMISSION ACTIONS IN THE SYSTEM ---
//
// Action strings must match the rows seeded into the permissions table; the
// permission oracle is called with (action, resource) and trusts the stored
// grants.

const (
	ResourceEquipment = "equipment"

	// Wildcard grant held by the root role.
	ActionAll   = "*"
	ResourceAll = "*"

	// Equipment (ambassador surface)
	EquipmentUpdate         = "equipment.update"
	EquipmentDeleteRequest  = "equipment.delete_request"
	EquipmentGetAllRequests = "equipment.get_all_requests"
	EquipmentGetForRequest  = "equipment.get_equipment_for_request"
)
