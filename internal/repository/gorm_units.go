package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

type gormUnitsRepository struct {
	db *gorm.DB
}

func NewGormUnitsRepository(db *gorm.DB) UnitsRepository {
	return &gormUnitsRepository{db: db}
}

func (r *gormUnitsRepository) owned(ctx context.Context, realtorID uint) *gorm.DB {
	db := r.db.WithContext(ctx)
	return db.Where("property_id IN (?)", ownedPropertyIDs(db, realtorID))
}

func (r *gormUnitsRepository) ListUnits(ctx context.Context, realtorID uint, filters UnitFilters) ([]*domain.Unit, error) {
	q := r.owned(ctx, realtorID)
	if filters.PropertyID != nil {
		q = q.Where("property_id = ?", *filters.PropertyID)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	units := []*domain.Unit{}
	if err := q.Order("units.id").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *gormUnitsRepository) GetUnit(ctx context.Context, realtorID, unitID uint) (*domain.Unit, error) {
	var u domain.Unit
	err := r.owned(ctx, realtorID).
		Preload("Leases", func(db *gorm.DB) *gorm.DB {
			return db.Where("realtor_id = ?", realtorID).Order("leases.id")
		}).
		Where("id = ?", unitID).
		First(&u).Error
	if err != nil {
		return nil, translate(err, "Unit")
	}
	return &u, nil
}

func (r *gormUnitsRepository) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	return r.db.WithContext(ctx).Omit("Leases").Create(unit).Error
}

func (r *gormUnitsRepository) UpdateUnitStatus(ctx context.Context, realtorID, unitID uint, status domain.ListingStatus) (*domain.Unit, error) {
	res := r.owned(ctx, realtorID).
		Model(&domain.Unit{}).
		Where("id = ?", unitID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFound("Unit")
	}
	return r.GetUnit(ctx, realtorID, unitID)
}
