package repository

import (
	"context"
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

const tenantOwnedClause = "EXISTS (SELECT 1 FROM leases WHERE leases.tenant_id = tenants.id AND leases.realtor_id = ?)"

type gormTenantsRepository struct {
	db *gorm.DB
}

func NewGormTenantsRepository(db *gorm.DB) TenantsRepository {
	return &gormTenantsRepository{db: db}
}

func (r *gormTenantsRepository) scoped(ctx context.Context, realtorID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Leases", func(db *gorm.DB) *gorm.DB {
			return db.Where("realtor_id = ?", realtorID).Order("leases.id")
		}).
		Where(tenantOwnedClause, realtorID)
}

func (r *gormTenantsRepository) CreateTenant(ctx context.Context, realtorID uint, tenant *domain.Tenant, ref domain.LeaseRef) (*domain.Tenant, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch ref := ref.(type) {
		case domain.LeaseCreate:
			lease := ref.Input.ToModel(realtorID)
			tenant.Leases = []domain.Lease{*lease}
			return tx.Create(tenant).Error

		case domain.LeaseConnect:
			tenant.Leases = nil
			if err := tx.Create(tenant).Error; err != nil {
				return err
			}
			res := tx.Model(&domain.Lease{}).
				Where("id = ? AND realtor_id = ?", ref.LeaseID, realtorID).
				Update("tenant_id", tenant.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.NewNotFound("Lease")
			}
			return nil

		default:
			return fmt.Errorf("unsupported lease reference %T", ref)
		}
	})
	if err != nil {
		return nil, err
	}
	return r.GetTenant(ctx, realtorID, tenant.ID)
}

func (r *gormTenantsRepository) ListTenants(ctx context.Context, realtorID uint) ([]*domain.Tenant, error) {
	tenants := []*domain.Tenant{}
	if err := r.scoped(ctx, realtorID).Order("tenants.id").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *gormTenantsRepository) GetTenant(ctx context.Context, realtorID, tenantID uint) (*domain.Tenant, error) {
	var t domain.Tenant
	if err := r.scoped(ctx, realtorID).Where("tenants.id = ?", tenantID).First(&t).Error; err != nil {
		return nil, translate(err, "Tenant")
	}
	return &t, nil
}
