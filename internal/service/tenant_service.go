package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"go.uber.org/zap"
)

// TenantService tenant creation and ownership-scoped reads
type TenantService interface {
	CreateTenant(ctx context.Context, req CreateTenantRequest) (*CreateTenantResponse, error)
	ListTenants(ctx context.Context, req ListTenantsRequest) (*ListTenantsResponse, error)
	GetTenant(ctx context.Context, req GetTenantRequest) (*GetTenantResponse, error)
}

type tenantService struct {
	tenantsRepo repository.TenantsRepository
	leasesRepo  repository.LeasesRepository
	unitsRepo   repository.UnitsRepository
	support     Support
	logger      *zap.Logger
}

func NewTenantService(
	tenantsRepo repository.TenantsRepository,
	leasesRepo repository.LeasesRepository,
	unitsRepo repository.UnitsRepository,
	support Support,
) TenantService {
	support = support.withDefaults()
	return &tenantService{
		tenantsRepo: tenantsRepo,
		leasesRepo:  leasesRepo,
		unitsRepo:   unitsRepo,
		support:     support,
		logger:      support.Logger,
	}
}

type CreateTenantRequest struct {
	RealtorID uint // caller, never taken from the body
	Tenant    domain.TenantInput
	Lease     domain.LeaseRef
}

type CreateTenantResponse struct {
	Tenant *domain.Tenant `json:"tenant"`
}

type ListTenantsRequest struct {
	RealtorID uint
}

type ListTenantsResponse struct {
	Items []*domain.Tenant `json:"items"`
}

type GetTenantRequest struct {
	RealtorID uint
	TenantID  uint
}

type GetTenantResponse struct {
	Tenant *domain.Tenant `json:"tenant"`
}

func (s *tenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*CreateTenantResponse, error) {
	if err := req.Tenant.Validate(); err != nil {
		return nil, err
	}
	ref, err := s.resolveLeaseRef(ctx, req.RealtorID, req.Lease)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantsRepo.CreateTenant(ctx, req.RealtorID, req.Tenant.ToModel(), ref)
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	s.logger.Info("tenant created",
		zap.Uint("tenant_id", tenant.ID),
		zap.Uint("realtor_id", req.RealtorID),
		zap.Int("leases", len(tenant.Leases)),
	)
	s.support.changed(ctx,
		events.New(events.TenantCreated, req.RealtorID, tenant.ID, map[string]any{"connected": isConnect(ref)}),
		store.EntityTenants, store.EntityLeases,
	)
	return &CreateTenantResponse{Tenant: tenant}, nil
}

// resolveLeaseRef applies the same ownership rules to both branches before
// anything is written: a connected lease must belong to the caller, and a new
// lease may only reference a unit of one of the caller's properties.
func (s *tenantService) resolveLeaseRef(ctx context.Context, realtorID uint, ref domain.LeaseRef) (domain.LeaseRef, error) {
	switch ref := ref.(type) {
	case domain.LeaseConnect:
		if _, err := s.leasesRepo.GetLease(ctx, realtorID, ref.LeaseID); err != nil {
			return nil, err
		}
		return ref, nil

	case domain.LeaseCreate:
		if err := ref.Input.Validate(); err != nil {
			return nil, prefixed(err, "lease.")
		}
		if ref.Input.UnitID != nil {
			if _, err := s.unitsRepo.GetUnit(ctx, realtorID, *ref.Input.UnitID); err != nil {
				return nil, err
			}
		}
		return ref, nil

	default:
		return nil, domain.ValidationErrors{{Field: "lease", Message: "Lease is required"}}
	}
}

func isConnect(ref domain.LeaseRef) bool {
	_, ok := ref.(domain.LeaseConnect)
	return ok
}

func (s *tenantService) ListTenants(ctx context.Context, req ListTenantsRequest) (*ListTenantsResponse, error) {
	items, err := cached(ctx, s.support, store.EntityTenants, req.RealtorID, "", func() ([]*domain.Tenant, error) {
		return s.tenantsRepo.ListTenants(ctx, req.RealtorID)
	})
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return &ListTenantsResponse{Items: items}, nil
}

func (s *tenantService) GetTenant(ctx context.Context, req GetTenantRequest) (*GetTenantResponse, error) {
	variant := "id=" + strconv.FormatUint(uint64(req.TenantID), 10)
	tenant, err := cached(ctx, s.support, store.EntityTenants, req.RealtorID, variant, func() (*domain.Tenant, error) {
		return s.tenantsRepo.GetTenant(ctx, req.RealtorID, req.TenantID)
	})
	if err != nil {
		return nil, err
	}
	return &GetTenantResponse{Tenant: tenant}, nil
}
