package nav

// Page identifies a logical screen in the suite. Pages are what callers
// navigate to; the dispatcher turns them into concrete routes.
type Page string

// Tenant-scope pages. Each maps 1:1 to a presentation-layer view.
const (
	PageDashboard Page = "dashboard"

	PageLeads      Page = "leads"
	PageLeadDetail Page = "lead-detail"
	PageLeadForm   Page = "lead-form"

	PageAttendanceMy       Page = "attendance-my"
	PageAttendanceCalendar Page = "attendance-calendar"
	PageAttendanceTeam     Page = "attendance-team"

	PageTimesheetMy       Page = "timesheet-my"
	PageTimesheetApproval Page = "timesheet-approval"

	PageProjects       Page = "projects"
	PageProjectDetail  Page = "project-detail"
	PageSprintDetail   Page = "sprint-detail"
	PageSprintBurndown Page = "sprint-burndown"

	PageTasksMy      Page = "tasks-my"
	PageTaskGrid     Page = "task-grid"
	PageProjectTasks Page = "project-tasks"

	PageEmployees       Page = "employees"
	PageEmployeeProfile Page = "employee-profile"

	PageDocumentsMy        Page = "documents-my"
	PageDocumentManagement Page = "document-management"

	PagePerformanceMy         Page = "performance-my"
	PagePerformanceForm       Page = "performance-form"
	PagePerformanceManagement Page = "performance-management"
	PagePerformanceReview     Page = "performance-review"

	PageLeaveMy         Page = "leave-my"
	PageLeaveForm       Page = "leave-form"
	PageLeaveApproval   Page = "leave-approval"
	PageLeaveManagement Page = "leave-management"

	PagePayrollMy         Page = "payroll-my"
	PagePayrollProcessing Page = "payroll-processing"
	PagePayrollApproval   Page = "payroll-approval"

	PageInvoices      Page = "invoices"
	PageInvoiceCreate Page = "invoice-create"

	PageAccountingDashboard Page = "accounting-dashboard"
	PageAccountingLedger    Page = "accounting-ledger"

	PageProfile     Page = "profile"
	PageSettings    Page = "settings"
	PagePermissions Page = "permissions"
	PageSkills      Page = "skills"
	PageReports     Page = "reports"

	// PageCreateCompany is a pseudo-page: in tenant mode it opens the
	// company-creation dialog instead of navigating anywhere.
	PageCreateCompany Page = "create-company"
)

// Platform-scope pages (superadmin surface). Dashboard, settings and
// create-company identifiers are shared with tenant scope; the dispatcher
// resolves them per mode.
const (
	PageCompanies     Page = "companies"
	PageEditCompany   Page = "edit-company"
	PageCompanyConfig Page = "company-config"
	PageUsers         Page = "users"
	PageAnalytics     Page = "analytics"
)

// tenantRoutes maps plain (parameterless) tenant pages to routes.
var tenantRoutes = map[Page]string{
	PageDashboard:             RouteDashboard,
	PageLeads:                 RouteLeads,
	PageLeadForm:              RouteLeadForm,
	PageAttendanceMy:          RouteAttendanceMy,
	PageAttendanceCalendar:    RouteAttendanceCalendar,
	PageAttendanceTeam:        RouteAttendanceTeam,
	PageTimesheetMy:           RouteTimesheetMy,
	PageTimesheetApproval:     RouteTimesheetApproval,
	PageProjects:              RouteProjects,
	PageTasksMy:               RouteTasksMy,
	PageTaskGrid:              RouteTaskGrid,
	PageEmployees:             RouteEmployees,
	PageDocumentsMy:           RouteDocumentsMy,
	PageDocumentManagement:    RouteDocumentManagement,
	PagePerformanceMy:         RoutePerformanceMy,
	PagePerformanceForm:       RoutePerformanceForm,
	PagePerformanceManagement: RoutePerformanceManagement,
	PagePerformanceReview:     RoutePerformanceReview,
	PageLeaveMy:               RouteLeaveMy,
	PageLeaveForm:             RouteLeaveForm,
	PageLeaveApproval:         RouteLeaveApproval,
	PageLeaveManagement:       RouteLeaveManagement,
	PagePayrollMy:             RoutePayrollMy,
	PagePayrollProcessing:     RoutePayrollProcessing,
	PagePayrollApproval:       RoutePayrollApproval,
	PageInvoices:              RouteInvoices,
	PageInvoiceCreate:         RouteInvoiceCreate,
	PageAccountingDashboard:   RouteAccountingDashboard,
	PageAccountingLedger:      RouteAccountingLedger,
	PageProfile:               RouteProfile,
	PageSettings:              RouteSettings,
	PagePermissions:           RoutePermissions,
	PageSkills:                RouteSkills,
	PageReports:               RouteReports,
}

// tenantDetailPages are tenant pages that carry a route parameter.
var tenantDetailPages = map[Page]struct{}{
	PageLeadDetail:      {},
	PageProjectDetail:   {},
	PageSprintDetail:    {},
	PageSprintBurndown:  {},
	PageProjectTasks:    {},
	PageEmployeeProfile: {},
}

// platformRoutes maps plain platform pages to routes.
var platformRoutes = map[Page]string{
	PageDashboard:     RoutePlatformDashboard,
	PageCompanies:     RoutePlatformCompanies,
	PageCreateCompany: RoutePlatformCreateCompany,
	PageUsers:         RoutePlatformUsers,
	PageAnalytics:     RoutePlatformAnalytics,
	PageSettings:      RoutePlatformSettings,
}

// platformDetailPages are platform pages that carry a route parameter.
var platformDetailPages = map[Page]struct{}{
	PageEditCompany:   {},
	PageCompanyConfig: {},
}

// TenantDetailPage reports whether p requires a route parameter in tenant
// scope.
func TenantDetailPage(p Page) bool {
	_, ok := tenantDetailPages[p]
	return ok
}

// KnownTenantPage reports whether p exists in the tenant-scope route table.
func KnownTenantPage(p Page) bool {
	if _, ok := tenantRoutes[p]; ok {
		return true
	}
	if _, ok := tenantDetailPages[p]; ok {
		return true
	}
	return p == PageCreateCompany
}

// KnownPlatformPage reports whether p exists in the platform route table.
func KnownPlatformPage(p Page) bool {
	if _, ok := platformRoutes[p]; ok {
		return true
	}
	_, ok := platformDetailPages[p]
	return ok
}
