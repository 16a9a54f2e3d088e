package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// UnitsRepository units, scoped through the owning property's realtor
type UnitsRepository interface {
	ListUnits(ctx context.Context, realtorID uint, filters UnitFilters) ([]*domain.Unit, error)
	GetUnit(ctx context.Context, realtorID, unitID uint) (*domain.Unit, error)
	CreateUnit(ctx context.Context, unit *domain.Unit) error
	UpdateUnitStatus(ctx context.Context, realtorID, unitID uint, status domain.ListingStatus) (*domain.Unit, error)
}

// UnitFilters optional unit list filters
type UnitFilters struct {
	PropertyID *uint
	Status     domain.ListingStatus // "" means any
}
