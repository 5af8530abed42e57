package models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the authenticated admin identity surfaced by GET /user. The
// portfolio has a single admin account configured from the environment.
type User struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
