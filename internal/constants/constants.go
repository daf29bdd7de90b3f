package constants

const (
	// Session / context keys
	SessionCookieName  = "volunteer_session"
	ContextKeyUserID   = "user_id"
	ContextKeyUserType = "user_type"

	MinPasswordLength = 8

	// Pagination bounds
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
