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

type LeaseService interface {
	ListLeases(ctx context.Context, req ListLeasesRequest) (*ListLeasesResponse, error)
	GetLease(ctx context.Context, req GetLeaseRequest) (*GetLeaseResponse, error)
	CreateLease(ctx context.Context, req CreateLeaseRequest) (*CreateLeaseResponse, error)
}

type leaseService struct {
	leasesRepo repository.LeasesRepository
	unitsRepo  repository.UnitsRepository
	support    Support
	logger     *zap.Logger
}

func NewLeaseService(leasesRepo repository.LeasesRepository, unitsRepo repository.UnitsRepository, support Support) LeaseService {
	support = support.withDefaults()
	return &leaseService{
		leasesRepo: leasesRepo,
		unitsRepo:  unitsRepo,
		support:    support,
		logger:     support.Logger,
	}
}

type ListLeasesRequest struct {
	RealtorID uint
	Filters   repository.LeaseFilters
}

type ListLeasesResponse struct {
	Items []*domain.Lease `json:"items"`
}

type GetLeaseRequest struct {
	RealtorID uint
	LeaseID   uint
}

type GetLeaseResponse struct {
	Lease *domain.Lease `json:"lease"`
}

type CreateLeaseRequest struct {
	RealtorID uint
	Lease     domain.LeaseInput
}

type CreateLeaseResponse struct {
	Lease *domain.Lease `json:"lease"`
}

func leaseVariant(f repository.LeaseFilters) string {
	v := "status=" + string(f.Status)
	if f.TenantID != nil {
		v += ",tenant=" + strconv.FormatUint(uint64(*f.TenantID), 10)
	}
	if f.UnitID != nil {
		v += ",unit=" + strconv.FormatUint(uint64(*f.UnitID), 10)
	}
	return v
}

func (s *leaseService) ListLeases(ctx context.Context, req ListLeasesRequest) (*ListLeasesResponse, error) {
	items, err := cached(ctx, s.support, store.EntityLeases, req.RealtorID, leaseVariant(req.Filters), func() ([]*domain.Lease, error) {
		return s.leasesRepo.ListLeases(ctx, req.RealtorID, req.Filters)
	})
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	return &ListLeasesResponse{Items: items}, nil
}

func (s *leaseService) GetLease(ctx context.Context, req GetLeaseRequest) (*GetLeaseResponse, error) {
	lease, err := s.leasesRepo.GetLease(ctx, req.RealtorID, req.LeaseID)
	if err != nil {
		return nil, err
	}
	return &GetLeaseResponse{Lease: lease}, nil
}

func (s *leaseService) CreateLease(ctx context.Context, req CreateLeaseRequest) (*CreateLeaseResponse, error) {
	if err := req.Lease.Validate(); err != nil {
		return nil, err
	}
	if req.Lease.UnitID != nil {
		if _, err := s.unitsRepo.GetUnit(ctx, req.RealtorID, *req.Lease.UnitID); err != nil {
			return nil, err
		}
	}

	lease := req.Lease.ToModel(req.RealtorID)
	if err := s.leasesRepo.CreateLease(ctx, lease); err != nil {
		return nil, fmt.Errorf("create lease: %w", err)
	}

	s.logger.Info("lease created", zap.Uint("lease_id", lease.ID), zap.Uint("realtor_id", req.RealtorID))
	s.support.changed(ctx, events.New(events.LeaseCreated, req.RealtorID, lease.ID, nil),
		store.EntityLeases, store.EntityTenants)
	return &CreateLeaseResponse{Lease: lease}, nil
}
