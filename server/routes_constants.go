package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"

	// Auth Routes - SSO
	RouteSSOLogin    = "/auth/sso/login"
	RouteSSOCallback = "/auth/sso/callback"

	// API Routes - navigation
	RouteAPINavigate = "/api/navigate"
	RouteAPISession  = "/api/session"

	// API Routes - tenancy
	RouteAPITenants       = "/api/tenants"
	RouteAPITenantsSwitch = "/api/tenants/switch"
)
