package nav

import (
	"github.com/parasuram-clad/hrsuite-core/session"
)

// Action is an out-of-band UI trigger produced instead of a route.
type Action string

const (
	ActionNone Action = ""
	// ActionOpenCreateTenant opens the company-creation dialog. This is the
	// one navigation input with a non-navigation side effect.
	ActionOpenCreateTenant Action = "open-create-tenant"
)

// Dispatch is the result of resolving a (page, target) pair: exactly one of
// Route or Action is set.
type Dispatch struct {
	Route  string `json:"route,omitempty"`
	Action Action `json:"action,omitempty"`
}

// Dispatcher translates logical navigation into concrete routes, branching
// on session mode. It is synchronous and total: every well-formed input
// yields exactly one route or action, never an error.
type Dispatcher struct{}

// Dispatch resolves page and target under the given mode. Unknown pages
// fall back to the mode's dashboard; the authorizer decides separately
// whether that fallback is a redirect.
func (Dispatcher) Dispatch(mode session.Mode, page Page, target Target) Dispatch {
	if mode == session.ModePlatformScoped {
		return platformDispatch(page, target)
	}
	return tenantDispatch(page, target)
}

func tenantDispatch(page Page, target Target) Dispatch {
	// Side-effect trigger short-circuits before any route construction.
	if page == PageCreateCompany {
		return Dispatch{Action: ActionOpenCreateTenant}
	}

	// Pages whose route shape depends on both page and parameter.
	switch page {
	case PageSprintBurndown:
		if target.Kind() == TargetSprint {
			return Dispatch{Route: RouteProjects + "/sprints/" + target.ID() + "/burndown"}
		}
	case PageProjectTasks:
		if target.Kind() == TargetProject {
			return Dispatch{Route: RouteProjects + "/" + target.ID() + "/tasks"}
		}
	}

	// The parameter kind alone determines the detail route.
	switch target.Kind() {
	case TargetProject:
		return Dispatch{Route: RouteProjects + "/" + target.ID()}
	case TargetEmployee:
		return Dispatch{Route: RouteEmployees + "/" + target.ID()}
	case TargetLead:
		return Dispatch{Route: RouteLeads + "/" + target.ID()}
	case TargetSprint:
		return Dispatch{Route: RouteProjects + "/sprints/" + target.ID()}
	}

	if route, ok := tenantRoutes[page]; ok {
		return Dispatch{Route: route}
	}
	return Dispatch{Route: RouteDashboard}
}

func platformDispatch(page Page, target Target) Dispatch {
	switch page {
	case PageCompanyConfig:
		if target.Kind() == TargetCompany {
			return Dispatch{Route: RoutePlatformCompanies + "/" + target.ID() + "/config"}
		}
	}

	// Platform parameters map to a route set disjoint from tenant mode,
	// even when identifier values collide.
	switch target.Kind() {
	case TargetCompany:
		return Dispatch{Route: RoutePlatformCompanies + "/" + target.ID() + "/edit"}
	case TargetUser:
		return Dispatch{Route: RoutePlatformUsers + "/" + target.ID()}
	}

	if route, ok := platformRoutes[page]; ok {
		return Dispatch{Route: route}
	}
	return Dispatch{Route: RoutePlatformDashboard}
}
