package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

type gormPropertiesRepository struct {
	db *gorm.DB
}

func NewGormPropertiesRepository(db *gorm.DB) PropertiesRepository {
	return &gormPropertiesRepository{db: db}
}

func (r *gormPropertiesRepository) withGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Units", func(db *gorm.DB) *gorm.DB { return db.Order("units.id") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("property_images.id") })
}

func (r *gormPropertiesRepository) ListProperties(ctx context.Context, realtorID uint) ([]*domain.Property, error) {
	properties := []*domain.Property{}
	err := r.withGraph(r.db.WithContext(ctx)).
		Where("realtor_id = ?", realtorID).
		Order("properties.id").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *gormPropertiesRepository) GetProperty(ctx context.Context, realtorID, propertyID uint) (*domain.Property, error) {
	var p domain.Property
	err := r.withGraph(r.db.WithContext(ctx)).
		Where("id = ? AND realtor_id = ?", propertyID, realtorID).
		First(&p).Error
	if err != nil {
		return nil, translate(err, "Property")
	}
	return &p, nil
}

func (r *gormPropertiesRepository) CreateProperty(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(property).Error
	})
}

func (r *gormPropertiesRepository) DeleteProperty(ctx context.Context, realtorID, propertyID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Property
		if err := tx.Select("id").Where("id = ? AND realtor_id = ?", propertyID, realtorID).First(&p).Error; err != nil {
			return translate(err, "Property")
		}

		unitIDs := tx.Model(&domain.Unit{}).Select("id").Where("property_id = ?", p.ID)
		if err := tx.Model(&domain.Lease{}).Where("unit_id IN (?)", unitIDs).Update("unit_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&domain.Unit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&domain.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Property{}, p.ID).Error
	})
}
