package rbac

import "github.com/parasuram-clad/hrsuite-core/identity"

// Capability names a permission gate checked before a screen renders.
// The set of capabilities is open; new gates can be added without touching
// call sites that do not use them. The role set they are evaluated against
// is closed.
type Capability string

const (
	CapabilityLeads    Capability = "leads"
	CapabilityProjects Capability = "projects"
)

// carveOuts maps a capability to the roles explicitly denied it.
// This is a business carve-out scheme, not default-deny: any authenticated
// role not listed here is allowed the capability.
var carveOuts = map[Capability][]identity.Role{
	CapabilityLeads:    {identity.RoleHR},
	CapabilityProjects: {identity.RoleHR},
}

// Allowed reports whether role may use the capability. The predicate is
// total over the closed role set; a role outside the set is denied, never
// an error.
func Allowed(role identity.Role, capability Capability) bool {
	if !role.Valid() {
		return false
	}
	for _, denied := range carveOuts[capability] {
		if role == denied {
			return false
		}
	}
	return true
}

// CanAccessLeads reports whether the identity may view lead screens.
func CanAccessLeads(id identity.Identity) bool {
	return Allowed(id.Role, CapabilityLeads)
}

// CanAccessProjects reports whether the identity may view project screens.
func CanAccessProjects(id identity.Identity) bool {
	return Allowed(id.Role, CapabilityProjects)
}
