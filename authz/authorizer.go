package authz

import (
	"fmt"

	"github.com/parasuram-clad/hrsuite-core/nav"
	"github.com/parasuram-clad/hrsuite-core/rbac"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/parasuram-clad/hrsuite-core/tenants"
)

// Request is one logical navigation request: a page plus at most one typed
// parameter. It is constructed per interaction and consumed immediately.
type Request struct {
	Page   nav.Page
	Target nav.Target
}

// Authorizer decides, before any view mounts, whether a navigation request
// renders its target, an access-denied surface, or a redirect. State is
// passed in on every call; the authorizer itself holds none, so any
// (session, tenant, role) combination can be evaluated directly.
type Authorizer struct {
	dispatcher nav.Dispatcher
}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Authorize evaluates the request against the current session and tenant
// state. Rules apply in order; the first match wins.
func (a *Authorizer) Authorize(sess *session.Session, tc *tenants.Context, req Request) Decision {
	// 1. Unauthenticated collapses every request to the login surface.
	// This short-circuit also neutralizes any resolution that was in
	// flight when a logout landed.
	current, ok := sess.Current()
	if !ok {
		return Decision{Outcome: OutcomeRedirect, Route: nav.RouteLogin}
	}

	// 2. Platform scope is evaluated only against the superadmin route
	// table; RBAC predicates never run and no request is denied.
	if sess.Mode() == session.ModePlatformScoped {
		if !nav.KnownPlatformPage(req.Page) && req.Target.Kind() == nav.TargetNone {
			return Decision{Outcome: OutcomeRedirect, Route: nav.RoutePlatformDashboard}
		}
		d := a.dispatcher.Dispatch(session.ModePlatformScoped, req.Page, req.Target)
		return Decision{Outcome: OutcomeAllow, Route: d.Route, Action: d.Action}
	}

	// 3a/3b. Tenant scope defers while the workspace is unsettled.
	switch tc.Phase() {
	case tenants.PhaseIdle, tenants.PhaseLoading:
		return Decision{Outcome: OutcomeLoading}
	case tenants.PhaseNoTenant:
		return Decision{Outcome: OutcomeCreateTenant}
	}

	// 3c. Capability carve-outs.
	if capability, gated := capabilityFor(req); gated && !rbac.Allowed(current.Role, capability) {
		return Decision{
			Outcome:   OutcomeDeny,
			Reason:    fmt.Sprintf("%s role cannot access %s", current.Role.Label(), capability),
			BackRoute: nav.RouteDashboard,
		}
	}

	// 3d. Unknown targets, and detail pages missing their parameter,
	// silently redirect to the role's dashboard.
	if req.Target.Kind() == nav.TargetNone &&
		(!nav.KnownTenantPage(req.Page) || nav.TenantDetailPage(req.Page)) {
		return Decision{
			Outcome: OutcomeRedirect,
			Route:   nav.RouteDashboard,
			View:    DashboardFor(current.Role),
		}
	}

	// 3e. Allowed.
	d := a.dispatcher.Dispatch(session.ModeTenantScoped, req.Page, req.Target)
	decision := Decision{Outcome: OutcomeAllow, Route: d.Route, Action: d.Action}
	if req.Page == nav.PageDashboard {
		decision.View = DashboardFor(current.Role)
	}
	return decision
}

// capabilityFor maps capability-gated pages and parameters to the gate that
// protects them. Pages outside this table are reachable by every
// authenticated role.
func capabilityFor(req Request) (rbac.Capability, bool) {
	switch req.Page {
	case nav.PageLeads, nav.PageLeadDetail, nav.PageLeadForm:
		return rbac.CapabilityLeads, true
	case nav.PageProjects, nav.PageProjectDetail, nav.PageSprintDetail,
		nav.PageSprintBurndown, nav.PageTaskGrid, nav.PageProjectTasks:
		return rbac.CapabilityProjects, true
	}
	switch req.Target.Kind() {
	case nav.TargetLead:
		return rbac.CapabilityLeads, true
	case nav.TargetProject, nav.TargetSprint:
		return rbac.CapabilityProjects, true
	}
	return "", false
}
