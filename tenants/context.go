package tenants

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Phase is the tri-state of tenant resolution. Consumers must observe it
// before rendering anything that needs a current tenant.
type Phase string

const (
	// PhaseIdle means no identity has been resolved yet.
	PhaseIdle Phase = "idle"
	// PhaseLoading means a tenant fetch is in flight; gated content must
	// not render until it settles.
	PhaseLoading Phase = "loading"
	// PhaseReady means exactly one current tenant is selected from the
	// resolved set.
	PhaseReady Phase = "ready"
	// PhaseNoTenant means the identity has zero tenants; the only legal UI
	// response is the tenant-creation prompt.
	PhaseNoTenant Phase = "no_tenant"
)

// Context resolves and holds the active tenant for a tenant-scoped
// identity. Platform-scoped identities bypass it entirely.
//
// Invariant: PhaseReady implies a non-nil current tenant drawn from the
// resolved set; every other phase implies no current tenant.
type Context struct {
	repo Repo

	lock       sync.RWMutex
	phase      Phase
	identityID string
	resolved   []*Tenant
	current    *Tenant
	epoch      uint64
}

// NewContext returns a Context in PhaseIdle.
func NewContext(repo Repo) *Context {
	return &Context{repo: repo, phase: PhaseIdle}
}

// Resolve fetches the tenant set visible to the identity and selects the
// deterministic default (first entry). Resolving the same identity while
// already Ready is a no-op, which keeps repeated logins side-effect free.
//
// A Clear that lands while the fetch is in flight wins: the stale result is
// discarded instead of resurrecting tenant state after logout.
func (c *Context) Resolve(ctx context.Context, identityID string) error {
	c.lock.Lock()
	if c.phase == PhaseReady && c.identityID == identityID {
		c.lock.Unlock()
		return nil
	}
	c.phase = PhaseLoading
	c.identityID = identityID
	c.current = nil
	c.resolved = nil
	c.epoch++
	epoch := c.epoch
	c.lock.Unlock()

	list, err := c.repo.ListForIdentity(ctx, identityID)
	if err != nil {
		c.lock.Lock()
		if c.epoch == epoch {
			// Back to Idle so the next request can retry; a context left in
			// Loading would defer every decision forever.
			c.phase = PhaseIdle
		}
		c.lock.Unlock()
		return errors.Wrap(err, "[Resolve] tenant fetch failed")
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.epoch != epoch {
		// Superseded by Clear or a newer Resolve.
		return nil
	}
	c.resolved = list
	if len(list) == 0 {
		c.phase = PhaseNoTenant
		c.current = nil
		return nil
	}
	c.phase = PhaseReady
	c.current = list[0]
	return nil
}

// Switch re-targets the current tenant. An ID outside the resolved set is a
// silent no-op, matching the observed product behavior.
func (c *Context) Switch(tenantID string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.phase != PhaseReady {
		return
	}
	for _, t := range c.resolved {
		if t.ID == tenantID {
			c.current = t
			return
		}
	}
}

// Create persists a new tenant owned by the resolving identity, re-resolves
// the tenant set, and selects the new tenant as current.
func (c *Context) Create(ctx context.Context, name string, config map[string]string, identityID string) (*Tenant, error) {
	created, err := c.repo.Create(ctx, &Tenant{Name: name, Config: config}, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "[Create] tenant create failed")
	}

	c.lock.Lock()
	c.phase = PhaseIdle // force the re-resolve below past the Ready guard
	c.lock.Unlock()

	if err := c.Resolve(ctx, identityID); err != nil {
		return nil, err
	}
	c.Switch(created.ID)
	return created, nil
}

// Clear drops all tenant state. It must run on logout; any in-flight
// resolution result is discarded when it lands.
func (c *Context) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.epoch++
	c.phase = PhaseIdle
	c.identityID = ""
	c.resolved = nil
	c.current = nil
}

// Phase returns the current resolution phase.
func (c *Context) Phase() Phase {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.phase
}

// Current returns the active tenant when the context is Ready.
func (c *Context) Current() (*Tenant, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.phase != PhaseReady || c.current == nil {
		return nil, false
	}
	return c.current, true
}

// Resolved returns the last resolved tenant set.
func (c *Context) Resolved() []*Tenant {
	c.lock.RLock()
	defer c.lock.RUnlock()
	out := make([]*Tenant, len(c.resolved))
	copy(out, c.resolved)
	return out
}
