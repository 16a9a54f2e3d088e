package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// TenantsRepository tenants reachable through at least one lease of the realtor.
// Preloaded leases are limited to that realtor's leases.
type TenantsRepository interface {
	// CreateTenant inserts the tenant and applies ref in the same transaction.
	// A LeaseConnect whose lease is not owned by realtorID yields a Lease not-found error
	// and nothing is written.
	CreateTenant(ctx context.Context, realtorID uint, tenant *domain.Tenant, ref domain.LeaseRef) (*domain.Tenant, error)
	ListTenants(ctx context.Context, realtorID uint) ([]*domain.Tenant, error)
	GetTenant(ctx context.Context, realtorID, tenantID uint) (*domain.Tenant, error)
}
