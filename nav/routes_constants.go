package nav

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Tenant scope
	RouteDashboard = "/dashboard"

	RouteLeads    = "/leads"
	RouteLeadForm = "/leads/new"

	RouteAttendanceMy       = "/attendance/my"
	RouteAttendanceCalendar = "/attendance/calendar"
	RouteAttendanceTeam     = "/attendance/team"

	RouteTimesheetMy       = "/timesheets/my"
	RouteTimesheetApproval = "/timesheets/approval"

	RouteProjects = "/projects"

	RouteTasksMy  = "/tasks/my"
	RouteTaskGrid = "/tasks/grid"

	RouteEmployees = "/employees"

	RouteDocumentsMy        = "/documents/my"
	RouteDocumentManagement = "/documents/management"

	RoutePerformanceMy         = "/performance/my-appraisals"
	RoutePerformanceForm       = "/performance/appraisal/new"
	RoutePerformanceManagement = "/performance/management"
	RoutePerformanceReview     = "/performance/review"

	RouteLeaveMy         = "/leave/my"
	RouteLeaveForm       = "/leave/apply"
	RouteLeaveApproval   = "/leave/approval"
	RouteLeaveManagement = "/leave/management"

	RoutePayrollMy         = "/payroll/my"
	RoutePayrollProcessing = "/payroll/processing"
	RoutePayrollApproval   = "/payroll/approval"

	RouteInvoices      = "/invoices"
	RouteInvoiceCreate = "/invoices/new"

	RouteAccountingDashboard = "/accounting/dashboard"
	RouteAccountingLedger    = "/accounting/ledger"

	RouteProfile     = "/profile"
	RouteSettings    = "/settings"
	RoutePermissions = "/permissions"
	RouteSkills      = "/skills"
	RouteReports     = "/reports"

	// Platform (superadmin) scope
	RoutePlatformDashboard     = "/superadmin/dashboard"
	RoutePlatformCompanies     = "/superadmin/companies"
	RoutePlatformCreateCompany = "/superadmin/companies/new"
	RoutePlatformUsers         = "/superadmin/users"
	RoutePlatformAnalytics     = "/superadmin/analytics"
	RoutePlatformSettings      = "/superadmin/settings"

	// Login surface
	RouteLogin = "/login"
)
