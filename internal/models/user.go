package models

type UserRole string

const (
	RoleStandardUser UserRole = "standard_user"
	RoleDeveloper    UserRole = "developer"
	RoleAdmin        UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStandardUser, RoleDeveloper, RoleAdmin:
		return true
	}
	return false
}

// CurrentUser is the identity supplied by the session layer. The marketplace
// core treats it as opaque input.
type CurrentUser struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
