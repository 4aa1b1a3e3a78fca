package tenants

import (
	"context"

	interrors "github.com/parasuram-clad/hrsuite-core/internal/errors"
)

var ErrNotFound = interrors.ErrTenantNotFound

// Repo is the tenant store collaborator. Implementations own persistence
// and network behavior; the Context only reacts to their results.
type Repo interface {
	// ListForIdentity returns every tenant the identity is a member of.
	ListForIdentity(ctx context.Context, identityID string) ([]*Tenant, error)

	// Create persists a new tenant with the identity as its first member
	// and returns the stored record with its generated ID.
	Create(ctx context.Context, tenant *Tenant, identityID string) (*Tenant, error)

	// Get retrieves a single tenant by ID.
	Get(ctx context.Context, tenantID string) (*Tenant, error)
}
