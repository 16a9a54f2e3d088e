package domain

import "github.com/shopspring/decimal"

// Property real estate object owned by one realtor
type Property struct {
	Model
	Title          *string             `json:"title"`
	Description    *string             `json:"description"`
	LotSize        *float64            `json:"lotSize"`
	YearBuilt      *int                `json:"yearBuilt"`
	RealEstateType RealEstateType      `gorm:"type:varchar(32)" json:"realEstateType,omitempty"`
	MarketPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"marketPrice"`
	Currency       *string             `gorm:"type:varchar(3)" json:"currency"`
	Street         *string             `json:"street"`
	City           *string             `json:"city"`
	State          *string             `json:"state"`
	Zip            *string             `json:"zip"`
	Country        *string             `json:"country"`
	RealtorID      uint                `gorm:"index;not null" json:"realtorId"`
	Units          []Unit              `gorm:"foreignKey:PropertyID" json:"units"`
	Images         []PropertyImage     `gorm:"foreignKey:PropertyID" json:"images"`
}

// PropertyImage picture attached to a property
type PropertyImage struct {
	Model
	PropertyID uint   `gorm:"index;not null" json:"propertyId"`
	ImageURL   string `gorm:"not null" json:"imageUrl"`
}

// PropertyInput create payload; units are created in the same transaction
type PropertyInput struct {
	Title          *string             `json:"title"`
	Description    *string             `json:"description"`
	LotSize        *float64            `json:"lotSize"`
	YearBuilt      *int                `json:"yearBuilt"`
	RealEstateType RealEstateType      `json:"realEstateType"`
	MarketPrice    decimal.NullDecimal `json:"marketPrice"`
	Currency       *string             `json:"currency"`
	Street         *string             `json:"street"`
	City           *string             `json:"city"`
	State          *string             `json:"state"`
	Zip            *string             `json:"zip"`
	Country        *string             `json:"country"`
	ImageURLs      []string            `json:"imageUrls"`
	Units          []UnitInput         `json:"units"`
}

// Validate checks enum values and nested units
func (in PropertyInput) Validate() error {
	var errs ValidationErrors
	if in.RealEstateType != "" && !in.RealEstateType.Valid() {
		errs = append(errs, ValidationError{Field: "realEstateType", Message: "Invalid real estate type"})
	}
	if in.MarketPrice.Valid && in.MarketPrice.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "marketPrice", Message: "Must be positive"})
	}
	if in.YearBuilt != nil && *in.YearBuilt < 0 {
		errs = append(errs, ValidationError{Field: "yearBuilt", Message: "Invalid input"})
	}
	for _, u := range in.Units {
		if err := u.Validate(); err != nil {
			var ve ValidationErrors
			if asValidation(err, &ve) {
				for _, e := range ve {
					errs = append(errs, ValidationError{Field: "units." + e.Field, Message: e.Message})
				}
			}
		}
	}
	return errs.OrNil()
}

// ToModel builds the property graph for realtorID
func (in PropertyInput) ToModel(realtorID uint) *Property {
	p := &Property{
		Title:          in.Title,
		Description:    in.Description,
		LotSize:        in.LotSize,
		YearBuilt:      in.YearBuilt,
		RealEstateType: in.RealEstateType,
		MarketPrice:    in.MarketPrice,
		Currency:       in.Currency,
		Street:         in.Street,
		City:           in.City,
		State:          in.State,
		Zip:            in.Zip,
		Country:        in.Country,
		RealtorID:      realtorID,
	}
	for _, u := range in.Units {
		p.Units = append(p.Units, *u.ToModel(0))
	}
	for _, url := range in.ImageURLs {
		p.Images = append(p.Images, PropertyImage{ImageURL: url})
	}
	return p
}
