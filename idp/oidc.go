package idp

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// SSOProvider authenticates via an upstream OIDC identity provider: it
// drives the authorization-code flow and maps verified ID-token claims to
// the Identity the session core consumes.
type SSOProvider struct {
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewSSOProvider discovers the issuer and prepares the code flow.
func NewSSOProvider(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (*SSOProvider, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSSOProvider] issuer discovery failed")
	}

	return &SSOProvider{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// AuthCodeURL returns the upstream login URL for the given CSRF state.
func (p *SSOProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange redeems an authorization code, verifies the ID token, and maps
// its claims to an Identity. The role claim must name a member of the
// closed role set unless the account is a platform superadmin.
func (p *SSOProvider) Exchange(ctx context.Context, code string) (*identity.Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "[Exchange] code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("[Exchange] no id_token in token response")
	}
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Exchange] id_token verification failed")
	}

	var claims struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Role        string `json:"role"`
		EmployeeID  string `json:"employee_id"`
		Department  string `json:"department"`
		Designation string `json:"designation"`
		SuperAdmin  bool   `json:"super_admin"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrap(err, "[Exchange] claims decode failed")
	}

	id := &identity.Identity{
		ID:          idToken.Subject,
		Name:        claims.Name,
		Email:       claims.Email,
		Role:        identity.Role(claims.Role),
		EmployeeID:  claims.EmployeeID,
		Department:  claims.Department,
		Designation: claims.Designation,
		SuperAdmin:  claims.SuperAdmin,
	}
	if !id.SuperAdmin && !id.Role.Valid() {
		return nil, errors.Errorf("[Exchange] upstream role %q not in role set", claims.Role)
	}
	return id, nil
}
