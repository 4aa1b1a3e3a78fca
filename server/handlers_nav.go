package server

import (
	"encoding/json"
	"net/http"

	"github.com/parasuram-clad/hrsuite-core/authz"
	"github.com/parasuram-clad/hrsuite-core/nav"
	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/rs/zerolog/log"
)

type navigateRequest struct {
	Page   nav.Page   `json:"page"`
	Params nav.Params `json:"params"`
}

// NavigateHandler authorizes one navigation request and returns the
// decision as a render instruction. Decisions are computed fresh on every
// call and never cached.
func (s *Server) NavigateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := workspaceFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing session")
			return
		}

		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		// The loose parameter bag collapses to one typed target here; the
		// core only ever sees a single parameter kind.
		target := req.Params.TenantTarget()
		if ws.session.Mode() == session.ModePlatformScoped {
			target = req.Params.PlatformTarget()
		}

		decision := s.authorizer.Authorize(ws.session, ws.tenantCtx, authz.Request{
			Page:   req.Page,
			Target: target,
		})

		// Denials and redirects are expected business outcomes, not system
		// errors; log them at debug only.
		log.Debug().
			Str("page", string(req.Page)).
			Str("outcome", string(decision.Outcome)).
			Str("route", decision.Route).
			Msg("navigate")

		writeJSON(w, http.StatusOK, decision)
	}
}
