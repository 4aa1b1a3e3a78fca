package server

import (
	"context"
	"net/http"
	"time"

	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeJSON   = "application/json; charset=utf-8"
	sessionCookieName = "hrsuite_session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyWorkspace stores the authenticated identity's workspace
	ContextKeyWorkspace ContextKey = "workspace"
)

// APIMiddleware is the default chain for JSON endpoints: request logging
// plus any route-specific middleware.
func (s *Server) APIMiddleware(extra ...func(http.HandlerFunc) http.HandlerFunc) []func(http.HandlerFunc) http.HandlerFunc {
	chain := []func(http.HandlerFunc) http.HandlerFunc{s.RequestLogger()}
	return append(chain, extra...)
}

// RequestLogger logs every request with its duration.
func (s *Server) RequestLogger() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next(w, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request")
		}
	}
}

// RequireSession validates the session cookie, restores the identity it
// carries, and injects the workspace into the request context.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "missing session")
				return
			}
			id, err := s.tokens.Parse(cookie.Value)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid session")
				return
			}

			// The token is the durable record; the workspace is rebuilt on
			// demand (e.g. after a restart) by replaying the login.
			ws := s.ensureWorkspace(id.ID)
			if ws.session.State() == session.StateUnauthenticated {
				if err := ws.session.Login(*id); err != nil {
					writeError(w, http.StatusUnauthorized, "invalid session")
					return
				}
			}
			if ws.session.Mode() == session.ModeTenantScoped && ws.tenantCtx.Phase() == tenants.PhaseIdle {
				if err := ws.tenantCtx.Resolve(r.Context(), id.ID); err != nil {
					log.Warn().Err(err).Msg("tenant resolution failed")
				}
			}

			ctx := context.WithValue(r.Context(), ContextKeyWorkspace, ws)
			next(w, r.WithContext(ctx))
		}
	}
}

func workspaceFromContext(ctx context.Context) (*workspace, bool) {
	ws, ok := ctx.Value(ContextKeyWorkspace).(*workspace)
	return ws, ok
}
