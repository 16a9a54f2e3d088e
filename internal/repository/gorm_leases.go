package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

type gormLeasesRepository struct {
	db *gorm.DB
}

func NewGormLeasesRepository(db *gorm.DB) LeasesRepository {
	return &gormLeasesRepository{db: db}
}

func (r *gormLeasesRepository) ListLeases(ctx context.Context, realtorID uint, filters LeaseFilters) ([]*domain.Lease, error) {
	q := r.db.WithContext(ctx).Where("realtor_id = ?", realtorID)
	if filters.TenantID != nil {
		q = q.Where("tenant_id = ?", *filters.TenantID)
	}
	if filters.UnitID != nil {
		q = q.Where("unit_id = ?", *filters.UnitID)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	leases := []*domain.Lease{}
	if err := q.Order("leases.id").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *gormLeasesRepository) GetLease(ctx context.Context, realtorID, leaseID uint) (*domain.Lease, error) {
	var l domain.Lease
	err := r.db.WithContext(ctx).
		Where("id = ? AND realtor_id = ?", leaseID, realtorID).
		First(&l).Error
	if err != nil {
		return nil, translate(err, "Lease")
	}
	return &l, nil
}

func (r *gormLeasesRepository) CreateLease(ctx context.Context, lease *domain.Lease) error {
	return r.db.WithContext(ctx).Create(lease).Error
}
