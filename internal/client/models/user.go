// Package models contains the wire-level data types exchanged with the
// Little Refugees backend. Field names follow the backend's camelCase JSON.
package models

// Role is the access level assigned to a platform account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the authenticated principal. A user with RoleAdmin may or may not
// be the owning administrator of a shelter; ShelterID is set only when the
// user is associated with exactly one shelter.
type User struct {
	ID                  int64  `json:"id"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Role                Role   `json:"role"`
	IsAdminOwner        bool   `json:"isAdminOwner"`
	ShelterID           *int64 `json:"shelterId,omitempty"`
	FirstLoginCompleted bool   `json:"firstLoginCompleted"`
	CreatedAt           string `json:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
