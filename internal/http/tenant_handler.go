package httpapi

import (
	"net/http"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"go.uber.org/zap"
)

// TenantHandler tenant endpoints
type TenantHandler struct {
	tenantService service.TenantService
	logger        *zap.Logger
}

func NewTenantHandler(tenantService service.TenantService, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{tenantService: tenantService, logger: logger}
}

// createTenantBody is the tenant payload with an optional nested lease
type createTenantBody struct {
	domain.TenantInput
	Lease *domain.LeaseInput `json:"lease"`
}

// CreateTenant POST /tenants?leaseId={id}
//
// With leaseId the tenant is connected to that lease and any nested lease is
// ignored; otherwise a lease is created from the nested fields.
func (h *TenantHandler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	leaseID, ok := optionalID(r, "leaseId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid lease id"))
		return
	}

	var body createTenantBody
	if !decodeBody(w, r, h.logger, &body) {
		return
	}

	req := service.CreateTenantRequest{
		RealtorID: realtorID,
		Tenant:    body.TenantInput,
	}
	switch {
	case leaseID != nil:
		req.Lease = domain.LeaseConnect{LeaseID: *leaseID}
	case body.Lease != nil:
		req.Lease = domain.LeaseCreate{Input: *body.Lease}
	}

	resp, err := h.tenantService.CreateTenant(ctx, req)
	if err != nil {
		writeError(w, r, h.logger, err, "Error creating tenant")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Tenant))
}

// ListTenants GET /tenants
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	resp, err := h.tenantService.ListTenants(r.Context(), service.ListTenantsRequest{RealtorID: realtorID})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching tenants")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Items))
}

// GetTenant GET /tenants/{id}
func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	tenantID, ok := idFromPath(w, r, "tenant")
	if !ok {
		return
	}
	resp, err := h.tenantService.GetTenant(r.Context(), service.GetTenantRequest{
		RealtorID: realtorID,
		TenantID:  tenantID,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching tenant")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Tenant))
}
