package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/report"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"go.uber.org/zap"
)

// PropertyHandler property endpoints, including the portfolio summary and export
type PropertyHandler struct {
	propertyService service.PropertyService
	logger          *zap.Logger
}

func NewPropertyHandler(propertyService service.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, logger: logger}
}

// ListProperties GET /properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	resp, err := h.propertyService.ListProperties(r.Context(), service.ListPropertiesRequest{RealtorID: realtorID})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching properties")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Items))
}

// GetProperty GET /properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	propertyID, ok := idFromPath(w, r, "property")
	if !ok {
		return
	}
	resp, err := h.propertyService.GetProperty(r.Context(), service.GetPropertyRequest{
		RealtorID:  realtorID,
		PropertyID: propertyID,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching property")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Property))
}

// CreateProperty POST /properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	var in domain.PropertyInput
	if !decodeBody(w, r, h.logger, &in) {
		return
	}
	resp, err := h.propertyService.CreateProperty(r.Context(), service.CreatePropertyRequest{
		RealtorID: realtorID,
		Property:  in,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error creating property")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Property))
}

// DeleteProperty DELETE /properties/{id}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	propertyID, ok := idFromPath(w, r, "property")
	if !ok {
		return
	}
	resp, err := h.propertyService.DeleteProperty(r.Context(), service.DeletePropertyRequest{
		RealtorID:  realtorID,
		PropertyID: propertyID,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "Error deleting property")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// PortfolioSummary GET /properties/summary
func (h *PropertyHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	resp, err := h.propertyService.PortfolioSummary(r.Context(), service.PortfolioSummaryRequest{RealtorID: realtorID})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching portfolio")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.Portfolio))
}

// ExportPortfolio GET /properties/export
func (h *PropertyHandler) ExportPortfolio(w http.ResponseWriter, r *http.Request) {
	realtorID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	resp, err := h.propertyService.PortfolioSummary(r.Context(), service.PortfolioSummaryRequest{RealtorID: realtorID})
	if err != nil {
		writeError(w, r, h.logger, err, "Error exporting portfolio")
		return
	}
	data, err := report.PortfolioWorkbook(resp.Portfolio)
	if err != nil {
		writeError(w, r, h.logger, err, "Error exporting portfolio")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="portfolio-%d.xlsx"`, realtorID))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
