package service

import (
	"context"
	"errors"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockTenantsRepo struct{ mock.Mock }

func (m *mockTenantsRepo) CreateTenant(ctx context.Context, realtorID uint, tenant *domain.Tenant, ref domain.LeaseRef) (*domain.Tenant, error) {
	args := m.Called(ctx, realtorID, tenant, ref)
	t, _ := args.Get(0).(*domain.Tenant)
	return t, args.Error(1)
}

func (m *mockTenantsRepo) ListTenants(ctx context.Context, realtorID uint) ([]*domain.Tenant, error) {
	args := m.Called(ctx, realtorID)
	t, _ := args.Get(0).([]*domain.Tenant)
	return t, args.Error(1)
}

func (m *mockTenantsRepo) GetTenant(ctx context.Context, realtorID, tenantID uint) (*domain.Tenant, error) {
	args := m.Called(ctx, realtorID, tenantID)
	t, _ := args.Get(0).(*domain.Tenant)
	return t, args.Error(1)
}

type mockLeasesRepo struct{ mock.Mock }

func (m *mockLeasesRepo) ListLeases(ctx context.Context, realtorID uint, filters repository.LeaseFilters) ([]*domain.Lease, error) {
	args := m.Called(ctx, realtorID, filters)
	l, _ := args.Get(0).([]*domain.Lease)
	return l, args.Error(1)
}

func (m *mockLeasesRepo) GetLease(ctx context.Context, realtorID, leaseID uint) (*domain.Lease, error) {
	args := m.Called(ctx, realtorID, leaseID)
	l, _ := args.Get(0).(*domain.Lease)
	return l, args.Error(1)
}

func (m *mockLeasesRepo) CreateLease(ctx context.Context, lease *domain.Lease) error {
	return m.Called(ctx, lease).Error(0)
}

type mockUnitsRepo struct{ mock.Mock }

func (m *mockUnitsRepo) ListUnits(ctx context.Context, realtorID uint, filters repository.UnitFilters) ([]*domain.Unit, error) {
	args := m.Called(ctx, realtorID, filters)
	u, _ := args.Get(0).([]*domain.Unit)
	return u, args.Error(1)
}

func (m *mockUnitsRepo) GetUnit(ctx context.Context, realtorID, unitID uint) (*domain.Unit, error) {
	args := m.Called(ctx, realtorID, unitID)
	u, _ := args.Get(0).(*domain.Unit)
	return u, args.Error(1)
}

func (m *mockUnitsRepo) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	return m.Called(ctx, unit).Error(0)
}

func (m *mockUnitsRepo) UpdateUnitStatus(ctx context.Context, realtorID, unitID uint, status domain.ListingStatus) (*domain.Unit, error) {
	args := m.Called(ctx, realtorID, unitID, status)
	u, _ := args.Get(0).(*domain.Unit)
	return u, args.Error(1)
}

// recordingPublisher keeps every event; fail makes Publish return an error
type recordingPublisher struct {
	events []events.Event
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	if p.fail {
		return errors.New("broker unavailable")
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }
