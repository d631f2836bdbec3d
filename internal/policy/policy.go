// Package policy derives capabilities from a role. Capabilities are never
// stored: the role value is the single source of truth, so a permission flag
// cannot drift out of sync with it. Every collaborator consults these
// predicates instead of comparing roles directly.
package policy

import "github.com/communityguardian/core/internal/models"

// CanManageFacilities reports whether the role may add or remove facility
// listings.
func CanManageFacilities(role models.Role) bool {
	switch role {
	case models.RoleAuthority, models.RoleAdmin, models.RoleCreator:
		return true
	}
	return false
}

// CanElevateRoles reports whether the role may change other accounts' roles.
// Only the creator account holds this.
func CanElevateRoles(role models.Role) bool {
	return role == models.RoleCreator
}

// CanViewRealIdentity reports whether the role sees reporter names and emails
// unmasked. Authority is deliberately below this tier: it manages
// infrastructure but sees reporters as anonymous.
func CanViewRealIdentity(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleCreator:
		return true
	}
	return false
}

// CanViewUnobscuredEvidence reports whether the role sees report media
// without obscuring. Same verification tier as real-identity access.
func CanViewUnobscuredEvidence(role models.Role) bool {
	return CanViewRealIdentity(role)
}
