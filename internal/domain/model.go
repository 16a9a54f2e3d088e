package domain

import "time"

// Model common columns; gorm fills the timestamps
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllModels is the AutoMigrate set, parents first
func AllModels() []any {
	return []any{
		&User{},
		&Property{},
		&PropertyImage{},
		&Unit{},
		&Tenant{},
		&Lease{},
	}
}
