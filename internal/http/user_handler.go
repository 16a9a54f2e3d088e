package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/service"

	"go.uber.org/zap"
)

// UserHandler identity query
type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// GetUser GET /user
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := realtorIDFromReq(w, r)
	if !ok {
		return
	}
	resp, err := h.userService.GetUser(r.Context(), service.GetUserRequest{UserID: userID})
	if err != nil {
		writeError(w, r, h.logger, err, "Error fetching user")
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp.User))
}

// HealthHandler liveness plus a database round trip
type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *zap.Logger
}

func NewHealthHandler(ping func(ctx context.Context) error, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger}
}

// Health GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, Fail("Database unavailable"))
			return
		}
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
}
