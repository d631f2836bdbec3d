package models

// Role is the closed set of privilege tiers. Creator is bound to one
// configured account and cannot be granted or revoked through role updates.
type Role string

const (
	RoleUser      Role = "User"
	RoleAuthority Role = "Authority"
	RoleAdmin     Role = "Admin"
	RoleCreator   Role = "Creator"
)

// UserProfile is a stored community member account. Profiles are never
// hard-deleted; only the Role field changes after creation.
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Role        Role   `json:"role"`
}
