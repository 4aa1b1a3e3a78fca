package rbac_test

import (
	"testing"

	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/parasuram-clad/hrsuite-core/rbac"
	"github.com/stretchr/testify/require"
)

func TestAllowed_HRCarveOut(t *testing.T) {
	for _, role := range identity.Roles {
		role := role
		t.Run(string(role), func(t *testing.T) {
			wantAllowed := role != identity.RoleHR
			require.Equal(t, wantAllowed, rbac.Allowed(role, rbac.CapabilityLeads))
			require.Equal(t, wantAllowed, rbac.Allowed(role, rbac.CapabilityProjects))
		})
	}
}

func TestAllowed_UnknownRoleDenied(t *testing.T) {
	require.False(t, rbac.Allowed(identity.Role("intern"), rbac.CapabilityLeads))
	require.False(t, rbac.Allowed(identity.Role(""), rbac.CapabilityProjects))
}

func TestAllowed_UngatedCapabilityOpenToAllRoles(t *testing.T) {
	// A capability with no carve-out is reachable by every role in the set.
	for _, role := range identity.Roles {
		require.True(t, rbac.Allowed(role, rbac.Capability("attendance")))
	}
}

func TestIdentityPredicates(t *testing.T) {
	hr := identity.Identity{ID: "u1", Role: identity.RoleHR}
	manager := identity.Identity{ID: "u2", Role: identity.RoleManager}

	require.False(t, rbac.CanAccessLeads(hr))
	require.False(t, rbac.CanAccessProjects(hr))
	require.True(t, rbac.CanAccessLeads(manager))
	require.True(t, rbac.CanAccessProjects(manager))
}
