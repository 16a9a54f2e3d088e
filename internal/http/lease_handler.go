package httpapi

import (
	"net/http"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"go.uber.org/zap"
)

// LeaseHandler lease endpoints
type LeaseHandler struct {
	leaseService service.LeaseService
	logger       *zap.Logger
}

func NewLeaseHandler(leaseService service.LeaseService, logger *zap.Logger) *LeaseHandler {
	return &LeaseHandler{leaseService: leaseService, logger: logger}
}

// ListLeases GET /leases?tenantId=&unitId=&status=
func (h *LeaseHandler) ListLeases(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}

	tenantID, ok := optionalID(r, "tenantId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid tenant id"))
		return
	}
	unitID, ok := optionalID(r, "unitId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid unit id"))
		return
	}
	filters := repository.LeaseFilters{
		TenantID: tenantID,
		UnitID:   unitID,
		Status:   domain.LeaseStatus(r.URL.Query().Get("status")),
	}
	if filters.Status != "" && !filters.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid lease status"))
		return
	}

	resp, err := h.leaseService.ListLeases(r.Context(), service.ListLeasesRequest{
		RealtorID: realtorID,
		Filters:   filters,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching leases")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Items))
}

// GetLease GET /leases/{id}
func (h *LeaseHandler) GetLease(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	leaseID, ok := idFromPath(w, r, "lease")
	if !ok {
		return
	}
	resp, err := h.leaseService.GetLease(r.Context(), service.GetLeaseRequest{
		RealtorID: realtorID,
		LeaseID:   leaseID,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching lease")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Lease))
}

// CreateLease POST /leases
func (h *LeaseHandler) CreateLease(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	var in domain.LeaseInput
	if !decodeBody(w, r, h.logger, &in) {
		return
	}
	resp, err := h.leaseService.CreateLease(r.Context(), service.CreateLeaseRequest{
		RealtorID: realtorID,
		Lease:     in,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error creating lease")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Lease))
}
