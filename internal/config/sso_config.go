package config

type SSOConfig interface {
	GetSSOIssuer() string
	GetSSOClientID() string
	GetSSOClientSecret() string
	GetSSORedirectURL() string
}

type SSO struct{}

var _ SSOConfig = SSO{}

// GetSSOIssuer returns the upstream OIDC issuer. Empty disables SSO login.
func (SSO) GetSSOIssuer() string {
	return GetEnv("SSO_ISSUER", "")
}

func (SSO) GetSSOClientID() string {
	return GetEnv("SSO_CLIENT_ID", "")
}

func (SSO) GetSSOClientSecret() string {
	return GetEnv("SSO_CLIENT_SECRET", "")
}

func (SSO) GetSSORedirectURL() string {
	return GetEnv("SSO_REDIRECT_URL", "http://localhost:8080/auth/sso/callback")
}
