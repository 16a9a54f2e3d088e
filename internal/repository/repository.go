package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

// Repositories bundles the GORM-backed repositories sharing one handle
type Repositories struct {
	Users      UsersRepository
	Properties PropertiesRepository
	Units      UnitsRepository
	Leases     LeasesRepository
	Tenants    TenantsRepository
}

// NewGormRepositories wires every repository onto db
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewGormUsersRepository(db),
		Properties: NewGormPropertiesRepository(db),
		Units:      NewGormUnitsRepository(db),
		Leases:     NewGormLeasesRepository(db),
		Tenants:    NewGormTenantsRepository(db),
	}
}

// Migrate creates or updates the schema
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(domain.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// translate maps gorm's record-not-found onto the domain error for entity
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFound(entity)
	}
	return err
}

// ownedPropertyIDs subquery of the property ids owned by realtorID
func ownedPropertyIDs(db *gorm.DB, realtorID uint) *gorm.DB {
	return db.Model(&domain.Property{}).Select("id").Where("realtor_id = ?", realtorID)
}
