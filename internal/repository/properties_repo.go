package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// PropertiesRepository properties owned by a realtor, loaded with units and images
type PropertiesRepository interface {
	ListProperties(ctx context.Context, realtorID uint) ([]*domain.Property, error)
	GetProperty(ctx context.Context, realtorID, propertyID uint) (*domain.Property, error)
	// CreateProperty inserts the property with its units and images in one transaction
	CreateProperty(ctx context.Context, property *domain.Property) error
	// DeleteProperty removes the property, its units and images; leases on removed
	// units are kept but detached from the unit
	DeleteProperty(ctx context.Context, realtorID, propertyID uint) error
}
