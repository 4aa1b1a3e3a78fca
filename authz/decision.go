package authz

import "github.com/parasuram-clad/hrsuite-core/nav"

// Outcome classifies an access decision. Every navigation request resolves
// to exactly one outcome; decisions are produced fresh per request and
// never cached, because role and tenant can change between requests.
type Outcome string

const (
	// OutcomeAllow renders the requested view at Decision.Route.
	OutcomeAllow Outcome = "allow"
	// OutcomeDeny renders the access-denied surface with Decision.Reason.
	OutcomeDeny Outcome = "deny"
	// OutcomeRedirect sends the caller to Decision.Route instead.
	OutcomeRedirect Outcome = "redirect"
	// OutcomeLoading defers the decision: the tenant set is still
	// resolving and gated content must not render yet.
	OutcomeLoading Outcome = "loading"
	// OutcomeCreateTenant defers to the tenant-creation flow: the identity
	// has no workspace, so no page requiring one may render.
	OutcomeCreateTenant Outcome = "create_tenant"
)

// Decision is the terminal render instruction for one navigation request.
// The presentation layer must treat deny and redirect as instructions, not
// as errors to surface in logs.
type Decision struct {
	Outcome Outcome       `json:"outcome"`
	Route   string        `json:"route,omitempty"`  // allow/redirect destination
	Action  nav.Action    `json:"action,omitempty"` // out-of-band UI trigger
	View    DashboardView `json:"view,omitempty"`   // concrete dashboard, when Route is a dashboard
	Reason  string        `json:"reason,omitempty"` // human-readable deny reason
	// BackRoute is the single recovery affordance on a denial: it re-enters
	// the authorizer with the default target.
	BackRoute string `json:"back_route,omitempty"`
}
