package contextkeys

type contextKey string

const (
	UserIDKey             contextKey = "UserID"
	UserKey               contextKey = "User"
	UserPermissionsMapKey contextKey = "userPermissionsMap"
)
