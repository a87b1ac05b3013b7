package constant

// User roles are stored and exposed upper-cased. RoleUser is the default
// when a record carries no role.
const (
	RoleUser    = "USER"
	RolePremium = "PREMIUM"
	RoleAdmin   = "ADMIN"
)
