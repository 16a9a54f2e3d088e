package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/pablotanner/RocketRealtor/internal/common/database"
	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/metrics"
	"github.com/pablotanner/RocketRealtor/internal/report"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const identityHeader = "X-User-Id"

type apiFixture struct {
	handler http.Handler
	repos   *repository.Repositories
	realtor uint
	other   uint
	unitID  uint
}

func newAPI(t *testing.T, ping func(ctx context.Context) error) *apiFixture {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.Migrate(context.Background(), db))

	logger := zap.NewNop()
	repos := repository.NewGormRepositories(db)
	support := service.Support{Logger: logger}
	svc := Services{
		Users:      service.NewUserService(repos.Users, logger),
		Tenants:    service.NewTenantService(repos.Tenants, repos.Leases, repos.Units, support),
		Leases:     service.NewLeaseService(repos.Leases, repos.Units, support),
		Units:      service.NewUnitService(repos.Units, repos.Properties, support),
		Properties: service.NewPropertyService(repos.Properties, support),
	}

	ctx := context.Background()
	realtor := &domain.User{Email: "realtor@example.com", Role: domain.RoleRealtor}
	other := &domain.User{Email: "other@example.com", Role: domain.RoleRealtor}
	require.NoError(t, repos.Users.CreateUser(ctx, realtor))
	require.NoError(t, repos.Users.CreateUser(ctx, other))

	title, unitNo := "Maple Court", "1A"
	prop, err := svc.Properties.CreateProperty(ctx, service.CreatePropertyRequest{
		RealtorID: realtor.ID,
		Property: domain.PropertyInput{
			Title:          &title,
			RealEstateType: domain.RealEstateApartment,
			Units:          []domain.UnitInput{{UnitNumber: &unitNo, Status: domain.ListingRented}},
		},
	})
	require.NoError(t, err)
	require.Len(t, prop.Property.Units, 1)

	return &apiFixture{
		handler: NewHandler(identityHeader, svc, ping, metrics.NewMetrics(), logger),
		repos:   repos,
		realtor: realtor.ID,
		other:   other.ID,
		unitID:  prop.Property.Units[0].ID,
	}
}

func (f *apiFixture) do(t *testing.T, method, target string, userID uint, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != 0 {
		req.Header.Set(identityHeader, strconv.FormatUint(uint64(userID), 10))
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out DataResult[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out.Data
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) MessageResult {
	t.Helper()
	var out MessageResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func tenantBody(unitID uint, realtorID uint) map[string]any {
	return map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"lease": map[string]any{
			"startDate":   "2024-01-01T00:00:00Z",
			"endDate":     "2024-12-31T00:00:00Z",
			"rentalPrice": "1500.00",
			"unitId":      unitID,
			"realtorId":   realtorID,
		},
	}
}

func TestIdentity_MissingOrInvalidHeader(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/tenants", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeMessage(t, rec).Message)

	req := httptest.NewRequest(http.MethodGet, "/tenants", nil)
	req.Header.Set(identityHeader, "abc")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/healthz", 0, nil)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
}

func TestHealth(t *testing.T) {
	f := newAPI(t, func(context.Context) error { return nil })
	rec := f.do(t, http.MethodGet, "/healthz", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	f = newAPI(t, func(context.Context) error { return errors.New("connection refused") })
	rec = f.do(t, http.MethodGet, "/healthz", 0, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Database unavailable", decodeMessage(t, rec).Message)
}

func TestCreateTenant_WithNewLease(t *testing.T) {
	f := newAPI(t, nil)

	// realtorId in the body is ignored
	rec := f.do(t, http.MethodPost, "/tenants", f.realtor, tenantBody(f.unitID, f.other))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tenant := decodeData[domain.Tenant](t, rec)
	assert.NotZero(t, tenant.ID)
	require.Len(t, tenant.Leases, 1)
	assert.Equal(t, f.realtor, tenant.Leases[0].RealtorID)
	assert.Equal(t, domain.PaymentMonthly, tenant.Leases[0].PaymentFrequency)
	assert.Equal(t, domain.LeaseActive, tenant.Leases[0].Status)

	rec = f.do(t, http.MethodGet, "/tenants/"+strconv.FormatUint(uint64(tenant.ID), 10), f.realtor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", *decodeData[domain.Tenant](t, rec).FirstName)

	rec = f.do(t, http.MethodGet, "/tenants", f.realtor, nil)
	assert.Len(t, decodeData[[]domain.Tenant](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/tenants", f.other, nil)
	assert.Empty(t, decodeData[[]domain.Tenant](t, rec))
}

func TestCreateTenant_ConnectExistingLease(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodPost, "/leases", f.realtor, map[string]any{
		"startDate": "2024-01-01T00:00:00Z",
		"endDate":   "2024-06-30T00:00:00Z",
		"unitId":    f.unitID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	lease := decodeData[domain.Lease](t, rec)

	target := "/tenants?leaseId=" + strconv.FormatUint(uint64(lease.ID), 10)
	rec = f.do(t, http.MethodPost, target, f.realtor, map[string]any{"firstName": "Grace", "lastName": "Hopper"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tenant := decodeData[domain.Tenant](t, rec)
	require.Len(t, tenant.Leases, 1)
	assert.Equal(t, lease.ID, tenant.Leases[0].ID)

	rec = f.do(t, http.MethodGet, "/leases", f.realtor, nil)
	assert.Len(t, decodeData[[]domain.Lease](t, rec), 1)
}

func TestCreateTenant_ForeignLeaseIsNotFound(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodPost, "/leases", f.realtor, map[string]any{
		"startDate": "2024-01-01T00:00:00Z",
		"endDate":   "2024-06-30T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	lease := decodeData[domain.Lease](t, rec)

	target := "/tenants?leaseId=" + strconv.FormatUint(uint64(lease.ID), 10)
	rec = f.do(t, http.MethodPost, target, f.other, map[string]any{"firstName": "Eve", "lastName": "Mallory"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Lease not found", decodeMessage(t, rec).Message)

	rec = f.do(t, http.MethodGet, "/tenants", f.other, nil)
	assert.Empty(t, decodeData[[]domain.Tenant](t, rec))
}

func TestCreateTenant_InvalidLeaseID(t *testing.T) {
	f := newAPI(t, nil)
	rec := f.do(t, http.MethodPost, "/tenants?leaseId=abc", f.realtor, map[string]any{"firstName": "A", "lastName": "B"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid lease id", decodeMessage(t, rec).Message)
}

func TestCreateTenant_Validation(t *testing.T) {
	f := newAPI(t, nil)
	rec := f.do(t, http.MethodPost, "/tenants", f.realtor, map[string]any{"firstName": "Ada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	msg := decodeMessage(t, rec)
	assert.Equal(t, "Last name is required", msg.Message)
	require.NotEmpty(t, msg.Errors)
	assert.Equal(t, "lastName", msg.Errors[0].Field)
}

func TestCreateTenant_MalformedBody(t *testing.T) {
	f := newAPI(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString("{"))
	req.Header.Set(identityHeader, strconv.FormatUint(uint64(f.realtor), 10))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeMessage(t, rec).Message)
}

func TestGetTenant_NotFound(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/tenants/999", f.realtor, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Tenant not found"}`, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/tenants", f.realtor, tenantBody(f.unitID, f.realtor))
	require.Equal(t, http.StatusOK, rec.Code)
	tenant := decodeData[domain.Tenant](t, rec)

	// another realtor sees the same answer as for a missing tenant
	rec = f.do(t, http.MethodGet, "/tenants/"+strconv.FormatUint(uint64(tenant.ID), 10), f.other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Tenant not found"}`, rec.Body.String())
}

func TestUnits_StatusAndFilters(t *testing.T) {
	f := newAPI(t, nil)
	path := "/units/" + strconv.FormatUint(uint64(f.unitID), 10)

	rec := f.do(t, http.MethodPatch, path+"/status", f.realtor, map[string]any{"status": "VACANT"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.ListingVacant, decodeData[domain.Unit](t, rec).Status)

	rec = f.do(t, http.MethodPatch, path+"/status", f.realtor, map[string]any{"status": "BOGUS"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPatch, path+"/status", f.other, map[string]any{"status": "RENTED"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/units?status=VACANT", f.realtor, nil)
	assert.Len(t, decodeData[[]domain.Unit](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/units?status=RENTED", f.realtor, nil)
	assert.Empty(t, decodeData[[]domain.Unit](t, rec))

	rec = f.do(t, http.MethodGet, "/units?propertyId=x", f.realtor, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProperties_SummaryExportDelete(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/properties/summary", f.realtor, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var summary struct {
		Data struct {
			Rows        []json.RawMessage `json:"rows"`
			TotalsLabel string            `json:"totalsLabel"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Len(t, summary.Data.Rows, 1)
	assert.Equal(t, "100%", summary.Data.TotalsLabel)

	rec = f.do(t, http.MethodGet, "/properties/export", f.realtor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	title, err := wb.GetCellValue(report.SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Maple Court", title)

	rec = f.do(t, http.MethodGet, "/properties", f.realtor, nil)
	props := decodeData[[]domain.Property](t, rec)
	require.Len(t, props, 1)
	path := "/properties/" + strconv.FormatUint(uint64(props[0].ID), 10)

	rec = f.do(t, http.MethodDelete, path, f.other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Property not found", decodeMessage(t, rec).Message)

	rec = f.do(t, http.MethodDelete, path, f.realtor, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, path, f.realtor, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/user", f.realtor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "realtor@example.com", decodeData[domain.User](t, rec).Email)

	rec = f.do(t, http.MethodGet, "/user", 4242, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouting_NotFoundAndMethodNotAllowed(t *testing.T) {
	f := newAPI(t, nil)

	rec := f.do(t, http.MethodGet, "/nope", f.realtor, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// unknown paths are 404 even without an identity
	rec = f.do(t, http.MethodGet, "/nope", 0, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeMessage(t, rec).Message)

	rec = f.do(t, http.MethodPut, "/tenants", f.realtor, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decodeMessage(t, rec).Message)

	rec = f.do(t, http.MethodGet, "/tenants/abc", f.realtor, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouting_MethodNotAllowed(t *testing.T) {
	f := newAPI(t, nil)

	cases := []struct {
		method, target string
		userID         uint
	}{
		{http.MethodDelete, "/tenants", f.realtor},
		{http.MethodPatch, "/properties/1", f.realtor},
		{http.MethodPost, "/units/1", f.realtor},
		{http.MethodGet, "/units/1/status", f.realtor},
		{http.MethodPost, "/healthz", 0},
		// method is checked before identity
		{http.MethodPut, "/leases", 0},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.target, tc.userID, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, "Method not allowed", decodeMessage(t, rec).Message)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPI(t, nil)
	f.do(t, http.MethodGet, "/tenants", f.realtor, nil)

	rec := f.do(t, http.MethodGet, "/metrics", 0, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/tenants"`)
}

func TestRecovery(t *testing.T) {
	h := Recovery(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec).Message)
}

func TestWriteError_UnexpectedErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenants", nil)
	writeError(rec, req, zap.NewNop(), errors.New("pq: connection reset"), "Error fetching tenants")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error fetching tenants"}`, rec.Body.String())
}
