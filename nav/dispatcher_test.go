package nav_test

import (
	"testing"

	"github.com/parasuram-clad/hrsuite-core/nav"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/stretchr/testify/require"
)

func TestTenantDispatch(t *testing.T) {
	var d nav.Dispatcher

	tests := []struct {
		name   string
		page   nav.Page
		target nav.Target
		want   string
	}{
		{"plain page", nav.PageLeaveApproval, nav.NoParams(), "/leave/approval"},
		{"project detail", nav.PageProjectDetail, nav.ProjectTarget("42"), "/projects/42"},
		{"employee profile", nav.PageEmployeeProfile, nav.EmployeeTarget("e-7"), "/employees/e-7"},
		{"lead detail", nav.PageLeadDetail, nav.LeadTarget("l-3"), "/leads/l-3"},
		{"sprint detail", nav.PageSprintDetail, nav.SprintTarget("s-9"), "/projects/sprints/s-9"},
		{"sprint burndown", nav.PageSprintBurndown, nav.SprintTarget("s-9"), "/projects/sprints/s-9/burndown"},
		{"project tasks", nav.PageProjectTasks, nav.ProjectTarget("42"), "/projects/42/tasks"},
		{"unknown page falls back to dashboard", nav.Page("payslips"), nav.NoParams(), "/dashboard"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := d.Dispatch(session.ModeTenantScoped, tt.page, tt.target)
			require.Equal(t, tt.want, got.Route)
			require.Equal(t, nav.ActionNone, got.Action)
		})
	}
}

func TestCreateCompanyShortCircuitsToAction(t *testing.T) {
	var d nav.Dispatcher
	got := d.Dispatch(session.ModeTenantScoped, nav.PageCreateCompany, nav.NoParams())
	require.Empty(t, got.Route)
	require.Equal(t, nav.ActionOpenCreateTenant, got.Action)
}

func TestPlatformDispatch(t *testing.T) {
	var d nav.Dispatcher

	tests := []struct {
		name   string
		page   nav.Page
		target nav.Target
		want   string
	}{
		{"dashboard", nav.PageDashboard, nav.NoParams(), "/superadmin/dashboard"},
		{"companies list", nav.PageCompanies, nav.NoParams(), "/superadmin/companies"},
		{"create company navigates in platform mode", nav.PageCreateCompany, nav.NoParams(), "/superadmin/companies/new"},
		{"edit company", nav.PageEditCompany, nav.CompanyTarget("c-1"), "/superadmin/companies/c-1/edit"},
		{"company config", nav.PageCompanyConfig, nav.CompanyTarget("c-1"), "/superadmin/companies/c-1/config"},
		{"user detail", nav.PageUsers, nav.UserTarget("u-5"), "/superadmin/users/u-5"},
		{"unknown page falls back", nav.Page("leads"), nav.NoParams(), "/superadmin/dashboard"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := d.Dispatch(session.ModePlatformScoped, tt.page, tt.target)
			require.Equal(t, tt.want, got.Route)
		})
	}
}

func TestParamsPriorityOrder(t *testing.T) {
	bag := nav.Params{
		ProjectID:  "p",
		EmployeeID: "e",
		LeadID:     "l",
		SprintID:   "s",
		CompanyID:  "c",
		UserID:     "u",
	}

	// Tenant mode: project > employee > lead > sprint.
	require.Equal(t, nav.TargetProject, bag.TenantTarget().Kind())
	bag.ProjectID = ""
	require.Equal(t, nav.TargetEmployee, bag.TenantTarget().Kind())
	bag.EmployeeID = ""
	require.Equal(t, nav.TargetLead, bag.TenantTarget().Kind())
	bag.LeadID = ""
	require.Equal(t, nav.TargetSprint, bag.TenantTarget().Kind())
	bag.SprintID = ""
	require.Equal(t, nav.TargetNone, bag.TenantTarget().Kind())

	// Platform mode: company > user.
	require.Equal(t, nav.TargetCompany, bag.PlatformTarget().Kind())
	bag.CompanyID = ""
	require.Equal(t, nav.TargetUser, bag.PlatformTarget().Kind())
	bag.UserID = ""
	require.Equal(t, nav.TargetNone, bag.PlatformTarget().Kind())
}
