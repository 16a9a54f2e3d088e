package httpapi

import (
	"net/http"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"go.uber.org/zap"
)

// UnitHandler unit endpoints
type UnitHandler struct {
	unitService service.UnitService
	logger      *zap.Logger
}

func NewUnitHandler(unitService service.UnitService, logger *zap.Logger) *UnitHandler {
	return &UnitHandler{unitService: unitService, logger: logger}
}

type createUnitBody struct {
	domain.UnitInput
	PropertyID uint `json:"propertyId"`
}

type unitStatusBody struct {
	Status domain.ListingStatus `json:"status"`
}

// ListUnits GET /units?propertyId=&status=
func (h *UnitHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	propertyID, ok := optionalID(r, "propertyId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid property id"))
		return
	}
	filters := repository.UnitFilters{
		PropertyID: propertyID,
		Status:     domain.ListingStatus(r.URL.Query().Get("status")),
	}
	if filters.Status != "" && !filters.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid unit status"))
		return
	}

	resp, err := h.unitService.ListUnits(r.Context(), service.ListUnitsRequest{
		RealtorID: realtorID,
		Filters:   filters,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching units")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Items))
}

// GetUnit GET /units/{id}
func (h *UnitHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	unitID, ok := idFromPath(w, r, "unit")
	if !ok {
		return
	}
	resp, err := h.unitService.GetUnit(r.Context(), service.GetUnitRequest{
		RealtorID: realtorID,
		UnitID:    unitID,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching unit")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Unit))
}

// CreateUnit POST /units
func (h *UnitHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	var body createUnitBody
	if !decodeBody(w, r, h.logger, &body) {
		return
	}
	resp, err := h.unitService.CreateUnit(r.Context(), service.CreateUnitRequest{
		RealtorID:  realtorID,
		PropertyID: body.PropertyID,
		Unit:       body.UnitInput,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error creating unit")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Unit))
}

// UpdateUnitStatus PATCH /units/{id}/status
func (h *UnitHandler) UpdateUnitStatus(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	unitID, ok := idFromPath(w, r, "unit")
	if !ok {
		return
	}
	var body unitStatusBody
	if !decodeBody(w, r, h.logger, &body) {
		return
	}
	resp, err := h.unitService.UpdateUnitStatus(r.Context(), service.UpdateUnitStatusRequest{
		RealtorID: realtorID,
		UnitID:    unitID,
		Status:    body.Status,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error updating unit")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Unit))
}
