package httpapi

import (
	"context"
	"net/http"

	"github.com/pablotanner/RocketRealtor/internal/metrics"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Router gorilla/mux router. Every route sits on the root router so method
// mismatches reach MethodNotAllowedHandler; api routes are wrapped in Identity.
type Router struct {
	root     *mux.Router
	identity func(http.Handler) http.Handler
	logger   *zap.Logger
}

// NewRouter builds the middleware chain: recovery, request id, logging and,
// when m is not nil, metrics.
func NewRouter(identityHeader string, m *metrics.Metrics, logger *zap.Logger) *Router {
	root := mux.NewRouter()
	root.Use(Recovery(logger))
	root.Use(RequestID)
	root.Use(Logging(logger))
	if m != nil {
		root.Use(m.Middleware)
	}

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Fail("Not found"))
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Fail("Method not allowed"))
	})

	return &Router{root: root, identity: Identity(identityHeader), logger: logger}
}

// api registers an authenticated route
func (r *Router) api(path string, h http.HandlerFunc, method string) {
	r.root.Handle(path, r.identity(h)).Methods(method)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.root.ServeHTTP(w, req)
}

// RegisterHealthRoutes /healthz is served without Identity
func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.root.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

func (r *Router) RegisterMetricsRoutes(m *metrics.Metrics) {
	r.root.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
}

func (r *Router) RegisterUserRoutes(h *UserHandler) {
	r.api("/user", h.GetUser, http.MethodGet)
}

func (r *Router) RegisterTenantRoutes(h *TenantHandler) {
	r.api("/tenants", h.ListTenants, http.MethodGet)
	r.api("/tenants", h.CreateTenant, http.MethodPost)
	r.api("/tenants/{id}", h.GetTenant, http.MethodGet)
}

func (r *Router) RegisterLeaseRoutes(h *LeaseHandler) {
	r.api("/leases", h.ListLeases, http.MethodGet)
	r.api("/leases", h.CreateLease, http.MethodPost)
	r.api("/leases/{id}", h.GetLease, http.MethodGet)
}

func (r *Router) RegisterUnitRoutes(h *UnitHandler) {
	r.api("/units", h.ListUnits, http.MethodGet)
	r.api("/units", h.CreateUnit, http.MethodPost)
	r.api("/units/{id}", h.GetUnit, http.MethodGet)
	r.api("/units/{id}/status", h.UpdateUnitStatus, http.MethodPatch)
}

func (r *Router) RegisterPropertyRoutes(h *PropertyHandler) {
	r.api("/properties", h.ListProperties, http.MethodGet)
	r.api("/properties", h.CreateProperty, http.MethodPost)
	// fixed paths before {id}
	r.api("/properties/summary", h.PortfolioSummary, http.MethodGet)
	r.api("/properties/export", h.ExportPortfolio, http.MethodGet)
	r.api("/properties/{id}", h.GetProperty, http.MethodGet)
	r.api("/properties/{id}", h.DeleteProperty, http.MethodDelete)
}

// Services everything the API needs
type Services struct {
	Users      service.UserService
	Tenants    service.TenantService
	Leases     service.LeaseService
	Units      service.UnitService
	Properties service.PropertyService
}

// NewHandler wires every route. ping backs /healthz and may be nil.
func NewHandler(identityHeader string, svc Services, ping func(ctx context.Context) error, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := NewRouter(identityHeader, m, logger)
	r.RegisterHealthRoutes(NewHealthHandler(ping, logger))
	if m != nil {
		r.RegisterMetricsRoutes(m)
	}
	r.RegisterUserRoutes(NewUserHandler(svc.Users, logger))
	r.RegisterTenantRoutes(NewTenantHandler(svc.Tenants, logger))
	r.RegisterLeaseRoutes(NewLeaseHandler(svc.Leases, logger))
	r.RegisterUnitRoutes(NewUnitHandler(svc.Units, logger))
	r.RegisterPropertyRoutes(NewPropertyHandler(svc.Properties, logger))
	return r
}
