package tenantrepofakes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/parasuram-clad/hrsuite-core/tenants"
)

var _ tenants.Repo = (*FakeTenantRepo)(nil)

// FakeTenantRepo is an in-memory tenant store for tests and dev mode.
// ListHook, when set, runs while a list fetch is "in flight" so tests can
// interleave logout or re-resolution with a pending fetch.
type FakeTenantRepo struct {
	tenants     map[string]*tenants.Tenant
	memberships map[string][]string // identityID -> tenant IDs, insertion ordered
	lock        sync.RWMutex

	ListHook func()
}

func NewFakeTenantRepo() *FakeTenantRepo {
	return &FakeTenantRepo{
		tenants:     make(map[string]*tenants.Tenant),
		memberships: make(map[string][]string),
	}
}

// Seed inserts a tenant and memberships without going through Create.
func (tr *FakeTenantRepo) Seed(tenant *tenants.Tenant, identityIDs ...string) {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	tr.tenants[tenant.ID] = tenant
	for _, id := range identityIDs {
		tr.memberships[id] = append(tr.memberships[id], tenant.ID)
	}
}

func (tr *FakeTenantRepo) ListForIdentity(_ context.Context, identityID string) ([]*tenants.Tenant, error) {
	if tr.ListHook != nil {
		tr.ListHook()
	}

	tr.lock.RLock()
	defer tr.lock.RUnlock()

	list := make([]*tenants.Tenant, 0, len(tr.memberships[identityID]))
	for _, tenantID := range tr.memberships[identityID] {
		if t, ok := tr.tenants[tenantID]; ok {
			list = append(list, t)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (tr *FakeTenantRepo) Create(_ context.Context, tenant *tenants.Tenant, identityID string) (*tenants.Tenant, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()
	stored := &tenants.Tenant{ID: uuid.New().String(), Name: tenant.Name, Config: tenant.Config}
	tr.tenants[stored.ID] = stored
	tr.memberships[identityID] = append(tr.memberships[identityID], stored.ID)
	return stored, nil
}

func (tr *FakeTenantRepo) Get(_ context.Context, tenantID string) (*tenants.Tenant, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	t, ok := tr.tenants[tenantID]
	if !ok {
		return nil, tenants.ErrNotFound
	}
	return t, nil
}
