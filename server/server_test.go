package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/parasuram-clad/hrsuite-core/authz"
	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/parasuram-clad/hrsuite-core/idp"
	idprepofakes "github.com/parasuram-clad/hrsuite-core/idp/repofakes"
	"github.com/parasuram-clad/hrsuite-core/internal/config"
	"github.com/parasuram-clad/hrsuite-core/server"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	tenantrepofakes "github.com/parasuram-clad/hrsuite-core/tenants/repofakes"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "dana.iyer@example.com"
	testPassword = "Str0ngPassword"
)

type testFixture struct {
	server     *httptest.Server
	client     *http.Client
	tenantRepo *tenantrepofakes.FakeTenantRepo
	directory  *idprepofakes.FakeDirectoryRepo
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	tenantRepo := tenantrepofakes.NewFakeTenantRepo()
	directory := idprepofakes.NewFakeDirectoryRepo()

	srv, err := server.New(config.New(), tenantRepo, directory)
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	jar := newCookieJar(t)
	return &testFixture{
		server:     ts,
		client:     &http.Client{Jar: jar},
		tenantRepo: tenantRepo,
		directory:  directory,
	}
}

func newCookieJar(t *testing.T) http.CookieJar {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return jar
}

func (f *testFixture) seedAccount(t *testing.T, role identity.Role, tenantIDs ...string) identity.Identity {
	t.Helper()
	hash, err := idp.HashPassword(testPassword)
	require.NoError(t, err)
	id := identity.Identity{ID: "user-1", Name: "Dana Iyer", Email: testEmail, Role: role}
	require.NoError(t, f.directory.Upsert(context.Background(), &idp.Account{
		Identity:     id,
		PasswordHash: hash,
	}))
	for _, tenantID := range tenantIDs {
		f.tenantRepo.Seed(&tenants.Tenant{ID: tenantID, Name: tenantID}, id.ID)
	}
	return id
}

func (f *testFixture) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := f.client.Post(f.server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (f *testFixture) login(t *testing.T) {
	t.Helper()
	resp := f.postJSON(t, "/auth/login", map[string]string{"email": testEmail, "password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (f *testFixture) navigate(t *testing.T, page string, params map[string]string) authz.Decision {
	t.Helper()
	resp := f.postJSON(t, "/api/navigate", map[string]any{"page": page, "params": params})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[authz.Decision](t, resp)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleEmployee, "acme")

	resp := f.postJSON(t, "/auth/login", map[string]string{"email": testEmail, "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestNavigateRequiresSession(t *testing.T) {
	f := setupTestFixture(t)
	resp := f.postJSON(t, "/api/navigate", map[string]any{"page": "dashboard"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginNavigateFlow(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleFinance, "acme")
	f.login(t)

	got := f.navigate(t, "dashboard", nil)
	require.Equal(t, authz.OutcomeAllow, got.Outcome)
	require.Equal(t, "/dashboard", got.Route)
	require.Equal(t, authz.DashboardFinance, got.View)
}

func TestHRDeniedLeadsOverHTTP(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleHR, "acme")
	f.login(t)

	got := f.navigate(t, "leads", nil)
	require.Equal(t, authz.OutcomeDeny, got.Outcome)
	require.Contains(t, got.Reason, "HR role cannot access leads")
	require.Equal(t, "/dashboard", got.BackRoute)
}

func TestNavigateParamPriority(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleAdmin, "acme")
	f.login(t)

	// projectId wins over leadId in tenant mode.
	got := f.navigate(t, "project-detail", map[string]string{"projectId": "42", "leadId": "l-1"})
	require.Equal(t, authz.OutcomeAllow, got.Outcome)
	require.Equal(t, "/projects/42", got.Route)
}

func TestTenantLifecycleOverHTTP(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleManager)
	f.login(t)

	// No tenants yet: navigation is held on the creation prompt.
	got := f.navigate(t, "dashboard", nil)
	require.Equal(t, authz.OutcomeCreateTenant, got.Outcome)

	resp := f.postJSON(t, "/api/tenants", map[string]string{"name": "Initech"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[tenants.Tenant](t, resp)
	require.NotEmpty(t, created.ID)

	// With a workspace selected, the dashboard renders.
	got = f.navigate(t, "dashboard", nil)
	require.Equal(t, authz.OutcomeAllow, got.Outcome)

	// Switching to an unknown company is a silent no-op.
	resp = f.postJSON(t, "/api/tenants/switch", map[string]string{"tenant_id": "ghost"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[map[string]any](t, resp)
	require.Equal(t, created.ID, state["current"].(map[string]any)["id"])
}

// flakyTenantRepo fails the first list calls, then recovers.
type flakyTenantRepo struct {
	tenants.Repo
	failures int
}

func (r *flakyTenantRepo) ListForIdentity(ctx context.Context, identityID string) ([]*tenants.Tenant, error) {
	if r.failures > 0 {
		r.failures--
		return nil, errors.New("store unavailable")
	}
	return r.Repo.ListForIdentity(ctx, identityID)
}

func TestNavigateRecoversAfterTenantFetchFailure(t *testing.T) {
	tenantRepo := tenantrepofakes.NewFakeTenantRepo()
	directory := idprepofakes.NewFakeDirectoryRepo()

	srv, err := server.New(config.New(), &flakyTenantRepo{Repo: tenantRepo, failures: 1}, directory)
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	f := &testFixture{
		server:     ts,
		client:     &http.Client{Jar: newCookieJar(t)},
		tenantRepo: tenantRepo,
		directory:  directory,
	}
	f.seedAccount(t, identity.RoleManager, "acme")

	// The tenant fetch fails during login; the session must not stay stuck
	// on the loading outcome once the store recovers.
	f.login(t)
	got := f.navigate(t, "dashboard", nil)
	require.Equal(t, authz.OutcomeAllow, got.Outcome)
	require.Equal(t, "/dashboard", got.Route)
}

func TestLogoutCollapsesNavigation(t *testing.T) {
	f := setupTestFixture(t)
	f.seedAccount(t, identity.RoleAdmin, "acme")
	f.login(t)

	resp, err := f.client.Post(f.server.URL+"/auth/logout", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = f.postJSON(t, "/api/navigate", map[string]any{"page": "dashboard"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
