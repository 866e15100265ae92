package seeders

import "makerspace-system/internal/authz"

type roleData struct {
	Name        string
	Description string
}

type permissionData struct {
	Action   string
	Resource string
}

type userData struct {
	PID       int64
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Waiver    bool
}

type equipmentData struct {
	Model        string
	Image        string
	Condition    int
	IsCheckedOut bool
}

var rolesData = []roleData{
	{Name: "student", Description: "Registered student; may browse equipment and file checkout requests"},
	{Name: "ambassador", Description: "Makerspace staff; manages inventory and checkout requests"},
	{Name: "root", Description: "Unrestricted administrative role"},
}

var permissionsData = []permissionData{
	{Action: authz.EquipmentUpdate, Resource: authz.ResourceEquipment},
	{Action: authz.EquipmentDeleteRequest, Resource: authz.ResourceEquipment},
	{Action: authz.EquipmentGetAllRequests, Resource: authz.ResourceEquipment},
	{Action: authz.EquipmentGetForRequest, Resource: authz.ResourceEquipment},
	{Action: authz.ActionAll, Resource: authz.ResourceAll},
}

// Students hold no equipment permissions: browsing is unrestricted and filing
// a request is gated by the waiver alone.
var rolePermissionsData = map[string][]permissionData{
	"ambassador": {
		{Action: authz.EquipmentUpdate, Resource: authz.ResourceEquipment},
		{Action: authz.EquipmentDeleteRequest, Resource: authz.ResourceEquipment},
		{Action: authz.EquipmentGetAllRequests, Resource: authz.ResourceEquipment},
		{Action: authz.EquipmentGetForRequest, Resource: authz.ResourceEquipment},
	},
	"root": {
		{Action: authz.ActionAll, Resource: authz.ResourceAll},
	},
}

var usersData = []userData{
	{PID: 999999999, FirstName: "Rhonda", LastName: "Root", Email: "root@makerspace.edu", Password: "root", Role: "root", Waiver: true},
	{PID: 888888888, FirstName: "Amy", LastName: "Ambassador", Email: "ambassador@makerspace.edu", Password: "ambassador", Role: "ambassador", Waiver: true},
	{PID: 111111111, FirstName: "Sally", LastName: "Student", Email: "student@makerspace.edu", Password: "student", Role: "student", Waiver: false},
}

var equipmentSeedData = []equipmentData{
	{Model: "Meta Quest 3", Image: "placeholder", Condition: 10},
	{Model: "Meta Quest 3", Image: "placeholder", Condition: 9},
	{Model: "Arduino Uno", Image: "placeholder", Condition: 10},
	{Model: "Arduino Uno", Image: "placeholder", Condition: 10},
	{Model: "Arduino Uno", Image: "placeholder", Condition: 8, IsCheckedOut: true},
	{Model: "Raspberry Pi 5", Image: "placeholder", Condition: 10},
}
