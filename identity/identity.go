package identity

// Role represents a user's role within a company workspace.
// The set is closed: every routing and capability decision in the suite
// is an exhaustive function over these values.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
	RoleFinance  Role = "finance"
	RoleAccounts Role = "accounts"
)

// Roles lists every role in the closed set, for exhaustiveness checks.
var Roles = []Role{
	RoleEmployee,
	RoleManager,
	RoleHR,
	RoleAdmin,
	RoleFinance,
	RoleAccounts,
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin, RoleFinance, RoleAccounts:
		return true
	}
	return false
}

// Label returns the display form of the role used in user-facing messages.
func (r Role) Label() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleHR:
		return "HR"
	case RoleAdmin:
		return "Admin"
	case RoleFinance:
		return "Finance"
	case RoleAccounts:
		return "Accounts"
	}
	return string(r)
}

// Identity represents the authenticated actor. It is created on login,
// immutable for the lifetime of the session, and destroyed on logout.
// Profile edits go through the employee directory, never through this type.
type Identity struct {
	ID          string `json:"id"`                    // Unique identifier for the user
	Name        string `json:"name"`                  // Display name
	Email       string `json:"email"`                 // User's email address
	Role        Role   `json:"role"`                  // Workspace role from the closed set
	EmployeeID  string `json:"employee_id,omitempty"` // Reference into the employee directory
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	SuperAdmin  bool   `json:"super_admin,omitempty"` // Platform-level operator, outside any single company
}
