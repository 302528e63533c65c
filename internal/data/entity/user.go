package entity

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleFrontDesk    UserRole = "front_desk"
	RoleHousekeeping UserRole = "housekeeping"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFrontDesk, RoleHousekeeping:
		return true
	}
	return false
}

// User is a staff account. Guests do not log in.
type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
