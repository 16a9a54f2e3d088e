package domain

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

// Tenant has no realtor column; ownership is reached through its leases
type Tenant struct {
	Model
	FirstName   *string             `json:"firstName"`
	LastName    *string             `json:"lastName"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	CivilStatus *string             `json:"civilStatus"`
	Occupation  *string             `json:"occupation"`
	Income      decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"income"`
	CreditScore *int                `json:"creditScore"`
	UserID      *uint               `gorm:"index" json:"userId"`
	Leases      []Lease             `gorm:"foreignKey:TenantID" json:"leases"`
}

// TenantInput tenant fields accepted on create
type TenantInput struct {
	FirstName   *string             `json:"firstName"`
	LastName    *string             `json:"lastName"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	CivilStatus *string             `json:"civilStatus"`
	Occupation  *string             `json:"occupation"`
	Income      decimal.NullDecimal `json:"income"`
	CreditScore *int                `json:"creditScore"`
}

// Validate first and last name are required; email must parse when present
func (in TenantInput) Validate() error {
	var errs ValidationErrors
	if blank(in.FirstName) {
		errs = append(errs, ValidationError{Field: "firstName", Message: "First name is required"})
	}
	if blank(in.LastName) {
		errs = append(errs, ValidationError{Field: "lastName", Message: "Last name is required"})
	}
	if !blank(in.Email) {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			errs = append(errs, ValidationError{Field: "email", Message: "Invalid email"})
		}
	}
	if in.Income.Valid && in.Income.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "income", Message: "Must be positive"})
	}
	if in.CreditScore != nil && (*in.CreditScore < 0 || *in.CreditScore > 1000) {
		errs = append(errs, ValidationError{Field: "creditScore", Message: "Invalid input"})
	}
	return errs.OrNil()
}

// ToModel converts the input into an unsaved tenant
func (in TenantInput) ToModel() *Tenant {
	return &Tenant{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		CivilStatus: in.CivilStatus,
		Occupation:  in.Occupation,
		Income:      in.Income,
		CreditScore: in.CreditScore,
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
