package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease links a unit, a realtor and optionally a tenant
type Lease struct {
	Model
	StartDate        *time.Time          `json:"startDate"`
	EndDate          *time.Time          `json:"endDate"`
	RentalPrice      decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"rentalPrice"`
	Currency         *string             `gorm:"type:varchar(3)" json:"currency"`
	PaymentFrequency PaymentFrequency    `gorm:"type:varchar(16)" json:"paymentFrequency,omitempty"`
	Status           LeaseStatus         `gorm:"type:varchar(16)" json:"status,omitempty"`
	Notes            *string             `json:"notes"`
	TotalRentDue     decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"totalRentDue"`
	RentPaid         decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"rentPaid"`
	LastPaymentDate  *time.Time          `json:"lastPaymentDate"`
	TenantID         *uint               `gorm:"index" json:"tenantId"`
	UnitID           *uint               `gorm:"index" json:"unitId"`
	RealtorID        uint                `gorm:"index;not null" json:"realtorId"`
}

// LeaseInput fields a client may supply for a new lease.
// It has no realtor field; the realtor is always the caller.
type LeaseInput struct {
	StartDate        *time.Time          `json:"startDate"`
	EndDate          *time.Time          `json:"endDate"`
	RentalPrice      decimal.NullDecimal `json:"rentalPrice"`
	Currency         *string             `json:"currency"`
	PaymentFrequency PaymentFrequency    `json:"paymentFrequency"`
	Status           LeaseStatus         `json:"status"`
	Notes            *string             `json:"notes"`
	UnitID           *uint               `json:"unitId"`
}

// Validate applies the lease form rules
func (in LeaseInput) Validate() error {
	var errs ValidationErrors
	if in.StartDate == nil {
		errs = append(errs, ValidationError{Field: "startDate", Message: "Start date is required"})
	}
	if in.EndDate == nil {
		errs = append(errs, ValidationError{Field: "endDate", Message: "End date is required"})
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		errs = append(errs, ValidationError{Field: "endDate", Message: "End date must be after start date"})
	}
	if in.RentalPrice.Valid && in.RentalPrice.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "rentalPrice", Message: "Must be positive"})
	}
	if in.PaymentFrequency != "" && !in.PaymentFrequency.Valid() {
		errs = append(errs, ValidationError{Field: "paymentFrequency", Message: "Invalid payment frequency"})
	}
	if in.Status != "" && !in.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: "Invalid status"})
	}
	return errs.OrNil()
}

// ToModel builds a lease owned by realtorID, applying the MONTHLY/ACTIVE defaults
func (in LeaseInput) ToModel(realtorID uint) *Lease {
	l := &Lease{
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		RentalPrice:      in.RentalPrice,
		Currency:         in.Currency,
		PaymentFrequency: in.PaymentFrequency,
		Status:           in.Status,
		Notes:            in.Notes,
		UnitID:           in.UnitID,
		RealtorID:        realtorID,
	}
	if l.PaymentFrequency == "" {
		l.PaymentFrequency = PaymentMonthly
	}
	if l.Status == "" {
		l.Status = LeaseActive
	}
	return l
}
