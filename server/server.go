package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/parasuram-clad/hrsuite-core/authz"
	"github.com/parasuram-clad/hrsuite-core/idp"
	"github.com/parasuram-clad/hrsuite-core/internal/config"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Server is the presentation boundary of the session core. It keeps one
// workspace (session + tenant context) per authenticated identity and turns
// navigation requests into access decisions.
type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	tenantRepo tenants.Repo
	passwords  *idp.PasswordProvider
	sso        *idp.SSOProvider // nil when SSO is not configured
	tokens     *idp.TokenCodec
	authorizer *authz.Authorizer

	lock       sync.RWMutex
	workspaces map[string]*workspace // keyed by identity ID
}

// workspace pairs a session with the tenant context that follows it.
type workspace struct {
	session   *session.Session
	tenantCtx *tenants.Context
}

func New(cfg config.Config, tenantRepo tenants.Repo, directory idp.DirectoryRepo) (*Server, error) {
	passwords, err := idp.NewPasswordProvider(directory)
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] password provider")
	}
	tokens, err := idp.NewTokenCodec([]byte(cfg.GetSessionSecret()), cfg.GetSessionTTL())
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] token codec")
	}

	s := &Server{
		env:        cfg.GetEnv(),
		mux:        http.NewServeMux(),
		config:     cfg,
		tenantRepo: tenantRepo,
		passwords:  passwords,
		tokens:     tokens,
		authorizer: authz.NewAuthorizer(),
		workspaces: make(map[string]*workspace),
	}

	if issuer := cfg.GetSSOIssuer(); issuer != "" {
		sso, err := idp.NewSSOProvider(context.Background(), issuer,
			cfg.GetSSOClientID(), cfg.GetSSOClientSecret(), cfg.GetSSORedirectURL())
		if err != nil {
			return nil, errors.Wrap(err, "[Server New] sso provider")
		}
		s.sso = sso
		log.Info().Str("issuer", issuer).Msg("SSO login enabled")
	}

	s.initRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

// ensureWorkspace returns the identity's workspace, creating it on first
// use. The tenant context is wired to clear itself on logout so in-flight
// resolutions are discarded, not applied.
func (s *Server) ensureWorkspace(identityID string) *workspace {
	s.lock.Lock()
	defer s.lock.Unlock()
	if ws, ok := s.workspaces[identityID]; ok {
		return ws
	}
	tc := tenants.NewContext(s.tenantRepo)
	sess := session.New(session.WithListener(func(ev session.Event) {
		if ev.Kind == session.EventLogout {
			tc.Clear()
		}
	}))
	ws := &workspace{session: sess, tenantCtx: tc}
	s.workspaces[identityID] = ws
	return ws
}

func (s *Server) dropWorkspace(identityID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.workspaces, identityID)
}
