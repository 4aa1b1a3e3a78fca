package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/parasuram-clad/hrsuite-core/identity"
	"github.com/parasuram-clad/hrsuite-core/idp"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/rs/zerolog/log"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Identity identity.Identity `json:"identity"`
	Mode     session.Mode      `json:"mode"`
	Phase    tenants.Phase     `json:"tenant_phase,omitempty"`
	Current  *tenants.Tenant   `json:"current_tenant,omitempty"`
}

// LoginHandler authenticates email/password credentials, starts the
// identity's workspace, and resolves its tenant set.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		id, err := s.passwords.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, idp.ErrAccountBlocked) {
				writeError(w, http.StatusForbidden, "account blocked")
				return
			}
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		s.completeLogin(w, r, *id)
	}
}

// LogoutHandler ends the session. Tenant state clears through the session
// listener; any resolution still in flight is discarded when it lands.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session")
			return
		}
		current, _ := ws.session.Current()
		ws.session.Logout()
		s.dropWorkspace(current.ID)

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// SessionHandler reports the caller's session and tenant state.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session")
			return
		}
		current, _ := ws.session.Current()
		resp := sessionResponse{Identity: current, Mode: ws.session.Mode()}
		if ws.session.Mode() == session.ModeTenantScoped {
			resp.Phase = ws.tenantCtx.Phase()
			if t, ok := ws.tenantCtx.Current(); ok {
				resp.Current = t
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// SSOLoginHandler redirects to the upstream identity provider.
func (s *Server) SSOLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     "sso_state",
			Value:    state,
			Path:     RouteSSOCallback,
			MaxAge:   int((5 * time.Minute).Seconds()),
			HttpOnly: true,
		})
		http.Redirect(w, r, s.sso.AuthCodeURL(state), http.StatusFound)
	}
}

// SSOCallbackHandler completes the OIDC code flow.
func (s *Server) SSOCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stateCookie, err := r.Cookie("sso_state")
		if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			writeError(w, http.StatusBadRequest, "state mismatch")
			return
		}
		id, err := s.sso.Exchange(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			log.Warn().Err(err).Msg("sso exchange failed")
			writeError(w, http.StatusUnauthorized, "sso login failed")
			return
		}
		s.completeLogin(w, r, *id)
	}
}

// completeLogin is shared by the password and SSO paths: it transitions the
// workspace session, resolves tenants for tenant-scoped identities, and
// issues the session cookie.
func (s *Server) completeLogin(w http.ResponseWriter, r *http.Request, id identity.Identity) {
	ws := s.ensureWorkspace(id.ID)
	if err := ws.session.Login(id); err != nil {
		writeError(w, http.StatusConflict, "session already active")
		return
	}

	resp := sessionResponse{Identity: id, Mode: ws.session.Mode()}
	if ws.session.Mode() == session.ModeTenantScoped {
		if err := ws.tenantCtx.Resolve(r.Context(), id.ID); err != nil {
			log.Warn().Err(err).Str("identity", id.ID).Msg("tenant resolution failed")
		}
		resp.Phase = ws.tenantCtx.Phase()
		if t, ok := ws.tenantCtx.Current(); ok {
			resp.Current = t
		}
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.config.GetSessionTTL().Seconds()),
		HttpOnly: true,
	})

	log.Info().Str("identity", id.ID).Str("mode", string(ws.session.Mode())).Msg("login")
	writeJSON(w, http.StatusOK, resp)
}
