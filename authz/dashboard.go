package authz

import "github.com/parasuram-clad/hrsuite-core/identity"

// DashboardView names the concrete dashboard rendered for the generic
// dashboard page. The selection is a pure function of role.
type DashboardView string

const (
	DashboardEmployee DashboardView = "employee-dashboard"
	DashboardManager  DashboardView = "manager-dashboard"
	DashboardFinance  DashboardView = "finance-dashboard"
	DashboardAccounts DashboardView = "accounts-dashboard"
)

// DashboardFor selects the dashboard for a role. Total over the closed
// role set; anything unrecognized falls back to the employee dashboard
// rather than failing.
func DashboardFor(role identity.Role) DashboardView {
	switch role {
	case identity.RoleFinance:
		return DashboardFinance
	case identity.RoleAccounts:
		return DashboardAccounts
	case identity.RoleManager, identity.RoleAdmin:
		return DashboardManager
	case identity.RoleEmployee, identity.RoleHR:
		return DashboardEmployee
	}
	return DashboardEmployee
}
