package auth

// Roles recognized by the mess system.
const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "MESS_STAFF"
	RoleStudent = "STUDENT"
)

// ValidRole reports whether a requested role is one we issue.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
