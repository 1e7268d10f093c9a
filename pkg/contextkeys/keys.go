package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	UserRolesKey contextKey = "userRoles"
	RequestIDKey contextKey = "requestID"
)
