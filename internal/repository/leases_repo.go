package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// LeasesRepository leases owned directly by a realtor
type LeasesRepository interface {
	ListLeases(ctx context.Context, realtorID uint, filters LeaseFilters) ([]*domain.Lease, error)
	GetLease(ctx context.Context, realtorID, leaseID uint) (*domain.Lease, error)
	CreateLease(ctx context.Context, lease *domain.Lease) error
}

// LeaseFilters optional lease list filters
type LeaseFilters struct {
	TenantID *uint
	UnitID   *uint
	Status   domain.LeaseStatus
}
