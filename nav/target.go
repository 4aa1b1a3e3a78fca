package nav

// TargetKind discriminates the navigation parameter union.
type TargetKind string

const (
	TargetNone     TargetKind = "none"
	TargetProject  TargetKind = "project"
	TargetEmployee TargetKind = "employee"
	TargetLead     TargetKind = "lead"
	TargetSprint   TargetKind = "sprint"
	TargetCompany  TargetKind = "company"
	TargetUser     TargetKind = "user"
)

// Target carries at most one typed route parameter. The union makes the
// "multiple parameter keys present" case unrepresentable: construction
// already picked exactly one kind.
type Target struct {
	kind TargetKind
	id   string
}

func NoParams() Target               { return Target{kind: TargetNone} }
func ProjectTarget(id string) Target { return Target{kind: TargetProject, id: id} }
func EmployeeTarget(id string) Target {
	return Target{kind: TargetEmployee, id: id}
}
func LeadTarget(id string) Target    { return Target{kind: TargetLead, id: id} }
func SprintTarget(id string) Target  { return Target{kind: TargetSprint, id: id} }
func CompanyTarget(id string) Target { return Target{kind: TargetCompany, id: id} }
func UserTarget(id string) Target    { return Target{kind: TargetUser, id: id} }

// Kind returns the discriminator.
func (t Target) Kind() TargetKind { return t.kind }

// ID returns the parameter value; empty for TargetNone.
func (t Target) ID() string { return t.id }

// Params is the loose parameter bag accepted at the presentation boundary.
// Unknown extra keys were already dropped during decoding; recognized keys
// are collapsed into a single Target by a fixed priority order.
type Params struct {
	ProjectID  string `json:"projectId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	LeadID     string `json:"leadId,omitempty"`
	SprintID   string `json:"sprintId,omitempty"`
	CompanyID  string `json:"companyId,omitempty"`
	UserID     string `json:"userId,omitempty"`
}

// TenantTarget collapses the bag for tenant mode with priority
// project > employee > lead > sprint.
func (p Params) TenantTarget() Target {
	switch {
	case p.ProjectID != "":
		return ProjectTarget(p.ProjectID)
	case p.EmployeeID != "":
		return EmployeeTarget(p.EmployeeID)
	case p.LeadID != "":
		return LeadTarget(p.LeadID)
	case p.SprintID != "":
		return SprintTarget(p.SprintID)
	}
	return NoParams()
}

// PlatformTarget collapses the bag for platform mode with priority
// company > user.
func (p Params) PlatformTarget() Target {
	switch {
	case p.CompanyID != "":
		return CompanyTarget(p.CompanyID)
	case p.UserID != "":
		return UserTarget(p.UserID)
	}
	return NoParams()
}
