package service

import (
	"context"
	"testing"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/common/database"
	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/metrics"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stack struct {
	repos      *repository.Repositories
	mr         *miniredis.Miniredis
	pub        *recordingPublisher
	users      UserService
	tenants    TenantService
	leases     LeaseService
	units      UnitService
	properties PropertyService
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.Migrate(context.Background(), db))

	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	logger := zap.NewNop()
	pub := &recordingPublisher{}
	support := Support{
		Cache:   store.NewEntityCache(store.NewRedisKV(rc), time.Minute, logger),
		Events:  pub,
		Metrics: metrics.NewMetrics(),
		Logger:  logger,
	}
	repos := repository.NewGormRepositories(db)
	return &stack{
		repos:      repos,
		mr:         mr,
		pub:        pub,
		users:      NewUserService(repos.Users, logger),
		tenants:    NewTenantService(repos.Tenants, repos.Leases, repos.Units, support),
		leases:     NewLeaseService(repos.Leases, repos.Units, support),
		units:      NewUnitService(repos.Units, repos.Properties, support),
		properties: NewPropertyService(repos.Properties, support),
	}
}

func (s *stack) realtor(t *testing.T, email string) uint {
	resp, err := s.users.EnsureUser(context.Background(), EnsureUserRequest{Email: email})
	require.NoError(t, err)
	return resp.User.ID
}

func TestEnsureUser_Idempotent(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	first, err := s.users.EnsureUser(ctx, EnsureUserRequest{Email: " Realtor@Example.com "})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, domain.RoleRealtor, first.User.Role)

	again, err := s.users.EnsureUser(ctx, EnsureUserRequest{Email: "realtor@example.com"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.User.ID, again.User.ID)

	got, err := s.users.GetUser(ctx, GetUserRequest{UserID: first.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "realtor@example.com", got.User.Email)
}

func TestPortfolioFlow(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	me := s.realtor(t, "me@example.com")
	other := s.realtor(t, "other@example.com")

	created, err := s.properties.CreateProperty(ctx, CreatePropertyRequest{
		RealtorID: me,
		Property: domain.PropertyInput{
			Title: strPtr("Maple Court"),
			Units: []domain.UnitInput{
				{Status: domain.ListingActive},
				{Status: domain.ListingSold},
				{Status: domain.ListingVacant},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Property.Units, 3)

	summary, err := s.properties.PortfolioSummary(ctx, PortfolioSummaryRequest{RealtorID: me})
	require.NoError(t, err)
	require.Len(t, summary.Portfolio.Rows, 1)
	assert.Equal(t, "66.67%", summary.Portfolio.Rows[0].OccupancyLabel)
	assert.True(t, s.mr.Exists(store.Key(store.EntityProperties, me, "")))

	// another realtor cannot add units to this property
	_, err = s.units.CreateUnit(ctx, CreateUnitRequest{RealtorID: other, PropertyID: created.Property.ID})
	assert.EqualError(t, err, "Property not found")

	_, err = s.units.UpdateUnitStatus(ctx, UpdateUnitStatusRequest{
		RealtorID: me, UnitID: created.Property.Units[2].ID, Status: domain.ListingRented,
	})
	require.NoError(t, err)
	assert.False(t, s.mr.Exists(store.Key(store.EntityProperties, me, "")))

	summary, err = s.properties.PortfolioSummary(ctx, PortfolioSummaryRequest{RealtorID: me})
	require.NoError(t, err)
	assert.Equal(t, "100%", summary.Portfolio.TotalsLabel)

	_, err = s.properties.DeleteProperty(ctx, DeletePropertyRequest{RealtorID: other, PropertyID: created.Property.ID})
	assert.EqualError(t, err, "Property not found")
	_, err = s.properties.DeleteProperty(ctx, DeletePropertyRequest{RealtorID: me, PropertyID: created.Property.ID})
	require.NoError(t, err)

	list, err := s.properties.ListProperties(ctx, ListPropertiesRequest{RealtorID: me})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTenantFlow_CacheInvalidatedOnCreate(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	me := s.realtor(t, "me@example.com")

	list, err := s.tenants.ListTenants(ctx, ListTenantsRequest{RealtorID: me})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.True(t, s.mr.Exists(store.Key(store.EntityTenants, me, "")))

	lease, err := s.leases.CreateLease(ctx, CreateLeaseRequest{RealtorID: me, Lease: validLease(nil)})
	require.NoError(t, err)
	assert.Equal(t, me, lease.Lease.RealtorID)

	_, err = s.tenants.CreateTenant(ctx, CreateTenantRequest{
		RealtorID: me,
		Tenant:    validTenant(),
		Lease:     domain.LeaseConnect{LeaseID: lease.Lease.ID},
	})
	require.NoError(t, err)

	list, err = s.tenants.ListTenants(ctx, ListTenantsRequest{RealtorID: me})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Len(t, list.Items[0].Leases, 1)
	assert.Equal(t, lease.Lease.ID, list.Items[0].Leases[0].ID)

	types := make([]string, 0, len(s.pub.events))
	for _, e := range s.pub.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{events.LeaseCreated, events.TenantCreated}, types)
}

func TestTenantFlow_ConnectForeignLease(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	me := s.realtor(t, "me@example.com")
	other := s.realtor(t, "other@example.com")

	foreign, err := s.leases.CreateLease(ctx, CreateLeaseRequest{RealtorID: other, Lease: validLease(nil)})
	require.NoError(t, err)

	_, err = s.tenants.CreateTenant(ctx, CreateTenantRequest{
		RealtorID: me,
		Tenant:    validTenant(),
		Lease:     domain.LeaseConnect{LeaseID: foreign.Lease.ID},
	})
	assert.EqualError(t, err, "Lease not found")

	list, err := s.tenants.ListTenants(ctx, ListTenantsRequest{RealtorID: other})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestLeaseService_Filters(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	me := s.realtor(t, "me@example.com")

	active := validLease(nil)
	done := validLease(nil)
	done.Status = domain.LeaseCompleted
	for _, in := range []domain.LeaseInput{active, done} {
		_, err := s.leases.CreateLease(ctx, CreateLeaseRequest{RealtorID: me, Lease: in})
		require.NoError(t, err)
	}

	resp, err := s.leases.ListLeases(ctx, ListLeasesRequest{RealtorID: me})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	resp, err = s.leases.ListLeases(ctx, ListLeasesRequest{RealtorID: me, Filters: repository.LeaseFilters{Status: domain.LeaseCompleted}})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.LeaseCompleted, resp.Items[0].Status)

	_, err = s.leases.GetLease(ctx, GetLeaseRequest{RealtorID: me + 100, LeaseID: resp.Items[0].ID})
	assert.EqualError(t, err, "Lease not found")

	_, err = s.units.UpdateUnitStatus(ctx, UpdateUnitStatusRequest{RealtorID: me, UnitID: 1, Status: "BROKEN"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
