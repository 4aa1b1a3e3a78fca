package tenants

// Tenant represents an isolated company workspace an identity operates in.
// Branding and configuration are opaque to the session core; they are
// carried through to the presentation layer untouched.
type Tenant struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Config map[string]string `json:"config,omitempty"`
}
