package server

import (
	"encoding/json"
	"net/http"

	"github.com/parasuram-clad/hrsuite-core/session"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/rs/zerolog/log"
)

type tenantsResponse struct {
	Phase   tenants.Phase     `json:"phase"`
	Current *tenants.Tenant   `json:"current,omitempty"`
	Tenants []*tenants.Tenant `json:"tenants"`
}

type switchTenantRequest struct {
	TenantID string `json:"tenant_id"`
}

type createTenantRequest struct {
	Name   string            `json:"name"`
	Config map[string]string `json:"config,omitempty"`
}

func (s *Server) tenantScopedWorkspace(w http.ResponseWriter, r *http.Request) (*workspace, bool) {
	ws, ok := workspaceFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return nil, false
	}
	if ws.session.Mode() != session.ModeTenantScoped {
		writeError(w, http.StatusForbidden, "platform sessions have no tenant workspace")
		return nil, false
	}
	return ws, true
}

// TenantsListHandler reports the resolved tenant set and selection.
func (s *Server) TenantsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := s.tenantScopedWorkspace(w, r)
		if !ok {
			return
		}
		resp := tenantsResponse{Phase: ws.tenantCtx.Phase(), Tenants: ws.tenantCtx.Resolved()}
		if t, ok := ws.tenantCtx.Current(); ok {
			resp.Current = t
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// TenantSwitchHandler re-targets the current tenant. An ID outside the
// resolved set leaves the selection unchanged, mirroring the product's
// silent no-op behavior.
func (s *Server) TenantSwitchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := s.tenantScopedWorkspace(w, r)
		if !ok {
			return
		}
		var req switchTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		ws.tenantCtx.Switch(req.TenantID)

		resp := tenantsResponse{Phase: ws.tenantCtx.Phase(), Tenants: ws.tenantCtx.Resolved()}
		if t, ok := ws.tenantCtx.Current(); ok {
			resp.Current = t
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// TenantCreateHandler persists a new company workspace, re-resolves the
// caller's tenant set, and selects the new company as current.
func (s *Server) TenantCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := s.tenantScopedWorkspace(w, r)
		if !ok {
			return
		}
		var req createTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "company name is required")
			return
		}

		current, _ := ws.session.Current()
		created, err := ws.tenantCtx.Create(r.Context(), req.Name, req.Config, current.ID)
		if err != nil {
			log.Error().Err(err).Msg("tenant create failed")
			writeError(w, http.StatusBadGateway, "could not create company")
			return
		}

		log.Info().Str("tenant", created.ID).Str("identity", current.ID).Msg("company created")
		writeJSON(w, http.StatusCreated, created)
	}
}
