package session_test

import (
	"testing"
	"time"

	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testIdentity() identity.Identity {
	return identity.Identity{
		ID:    "user-1",
		Name:  "Priya Nair",
		Email: "priya.nair@example.com",
		Role:  identity.RoleManager,
	}
}

func TestLoginLogoutTransitions(t *testing.T) {
	var events []session.Event
	s := session.New(
		session.WithNowTime(func() time.Time { return fixedNow }),
		session.WithListener(func(ev session.Event) { events = append(events, ev) }),
	)

	require.Equal(t, session.StateUnauthenticated, s.State())
	require.Equal(t, session.ModeNone, s.Mode())

	require.NoError(t, s.Login(testIdentity()))
	require.Equal(t, session.StateAuthenticated, s.State())
	require.Equal(t, session.ModeTenantScoped, s.Mode())

	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, "user-1", current.ID)

	s.Logout()
	require.Equal(t, session.StateUnauthenticated, s.State())
	require.Equal(t, session.ModeNone, s.Mode())
	_, ok = s.Current()
	require.False(t, ok)

	require.Len(t, events, 2)
	require.Equal(t, session.EventLogin, events[0].Kind)
	require.Equal(t, "user-1", events[0].Identity.ID)
	require.Equal(t, fixedNow, events[0].At)
	require.Equal(t, session.EventLogout, events[1].Kind)
}

func TestLoginIdempotent(t *testing.T) {
	var events []session.Event
	s := session.New(session.WithListener(func(ev session.Event) { events = append(events, ev) }))

	require.NoError(t, s.Login(testIdentity()))
	require.NoError(t, s.Login(testIdentity()))

	// The second login must not re-notify, so no redundant tenant
	// re-resolution happens downstream.
	require.Len(t, events, 1)
}

func TestLoginDifferentIdentityRejected(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Login(testIdentity()))

	other := testIdentity()
	other.ID = "user-2"
	err := s.Login(other)
	require.ErrorIs(t, err, session.ErrAlreadyAuthenticated)

	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, "user-1", current.ID)
}

func TestLoginInvalidRoleRejected(t *testing.T) {
	s := session.New()
	bad := testIdentity()
	bad.Role = identity.Role("contractor")
	require.ErrorIs(t, s.Login(bad), session.ErrInvalidRole)
	require.Equal(t, session.StateUnauthenticated, s.State())
}

func TestSuperAdminGetsPlatformMode(t *testing.T) {
	s := session.New()
	admin := identity.Identity{ID: "root-1", Name: "Platform Op", SuperAdmin: true}
	require.NoError(t, s.Login(admin))
	require.Equal(t, session.ModePlatformScoped, s.Mode())
}

func TestLogoutWhenUnauthenticatedIsNoOp(t *testing.T) {
	var events []session.Event
	s := session.New(session.WithListener(func(ev session.Event) { events = append(events, ev) }))
	s.Logout()
	require.Empty(t, events)
}
