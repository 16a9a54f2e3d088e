package domain

import "github.com/shopspring/decimal"

// Unit rentable sub-entity of a property
type Unit struct {
	Model
	PropertyID     uint                `gorm:"index;not null" json:"propertyId"`
	UnitIdentifier *string             `json:"unitIdentifier"`
	UnitNumber     *string             `json:"unitNumber"`
	Floor          *int                `json:"floor"`
	UnitSize       *float64            `json:"unitSize"`
	NumOfRooms     *int                `json:"numOfRooms"`
	NumOfBedrooms  *int                `json:"numOfBedrooms"`
	NumOfBathrooms *int                `json:"numOfBathrooms"`
	Garages        *int                `json:"garages"`
	RentalPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"rentalPrice"`
	Currency       *string             `gorm:"type:varchar(3)" json:"currency"`
	Status         ListingStatus       `gorm:"type:varchar(16)" json:"status,omitempty"`
	Leases         []Lease             `gorm:"foreignKey:UnitID" json:"leases,omitempty"`
}

// UnitInput create payload
type UnitInput struct {
	UnitIdentifier *string             `json:"unitIdentifier"`
	UnitNumber     *string             `json:"unitNumber"`
	Floor          *int                `json:"floor"`
	UnitSize       *float64            `json:"unitSize"`
	NumOfRooms     *int                `json:"numOfRooms"`
	NumOfBedrooms  *int                `json:"numOfBedrooms"`
	NumOfBathrooms *int                `json:"numOfBathrooms"`
	Garages        *int                `json:"garages"`
	RentalPrice    decimal.NullDecimal `json:"rentalPrice"`
	Currency       *string             `json:"currency"`
	Status         ListingStatus       `json:"status"`
}

func (in UnitInput) Validate() error {
	var errs ValidationErrors
	if in.Status != "" && !in.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: "Invalid status"})
	}
	if in.RentalPrice.Valid && in.RentalPrice.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "rentalPrice", Message: "Must be positive"})
	}
	return errs.OrNil()
}

// ToModel builds a unit attached to propertyID (0 when created through the property graph)
func (in UnitInput) ToModel(propertyID uint) *Unit {
	return &Unit{
		PropertyID:     propertyID,
		UnitIdentifier: in.UnitIdentifier,
		UnitNumber:     in.UnitNumber,
		Floor:          in.Floor,
		UnitSize:       in.UnitSize,
		NumOfRooms:     in.NumOfRooms,
		NumOfBedrooms:  in.NumOfBedrooms,
		NumOfBathrooms: in.NumOfBathrooms,
		Garages:        in.Garages,
		RentalPrice:    in.RentalPrice,
		Currency:       in.Currency,
		Status:         in.Status,
	}
}
