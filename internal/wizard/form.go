package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// LeaseOption the two-way toggle on the lease step
type LeaseOption string

const (
	LeaseNew      LeaseOption = "new"
	LeaseExisting LeaseOption = "existing"
)

// LeaseForm raw lease inputs
type LeaseForm struct {
	StartDate        string
	EndDate          string
	RentalPrice      string
	PaymentFrequency string
	Status           string
	Notes            string
}

// Form raw wizard inputs, exactly as typed
type Form struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CivilStatus string
	Occupation  string
	Income      string
	CreditScore string

	Lease       LeaseForm
	LeaseOption LeaseOption
	LeaseID     string
	UnitID      string
}

// NewForm returns the empty form with the lease defaults preselected
func NewForm() Form {
	return Form{
		Lease: LeaseForm{
			PaymentFrequency: string(domain.PaymentMonthly),
			Status:           string(domain.LeaseActive),
		},
		LeaseOption: LeaseNew,
	}
}

// Set assigns a field by its form path, e.g. "firstName" or "lease.startDate"
func (f *Form) Set(field, value string) error {
	switch field {
	case "firstName":
		f.FirstName = value
	case "lastName":
		f.LastName = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "civilStatus":
		f.CivilStatus = value
	case "occupation":
		f.Occupation = value
	case "income":
		f.Income = value
	case "creditScore":
		f.CreditScore = value
	case "lease.startDate":
		f.Lease.StartDate = value
	case "lease.endDate":
		f.Lease.EndDate = value
	case "lease.rentalPrice":
		f.Lease.RentalPrice = value
	case "lease.paymentFrequency":
		f.Lease.PaymentFrequency = value
	case "lease.status":
		f.Lease.Status = value
	case "lease.notes":
		f.Lease.Notes = value
	case "leaseId":
		f.LeaseID = value
	case "unitId":
		f.UnitID = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

type parsed struct {
	tenant  domain.TenantInput
	lease   domain.LeaseInput
	leaseID *uint
	unitID  *uint
}

// parse applies the field transforms, collecting one error per bad field
func (f Form) parse(loc *time.Location) (parsed, domain.ValidationErrors) {
	var p parsed
	var errs domain.ValidationErrors
	fail := func(field string) {
		errs = append(errs, domain.ValidationError{Field: field, Message: InvalidInput})
	}

	p.tenant = domain.TenantInput{
		FirstName:   StringField(f.FirstName),
		LastName:    StringField(f.LastName),
		Email:       StringField(f.Email),
		Phone:       StringField(f.Phone),
		CivilStatus: StringField(f.CivilStatus),
		Occupation:  StringField(f.Occupation),
	}
	var err error
	if p.tenant.Income, err = NumberField(f.Income); err != nil {
		fail("income")
	}
	if p.tenant.CreditScore, err = IntField(f.CreditScore); err != nil {
		fail("creditScore")
	}

	p.lease = domain.LeaseInput{
		PaymentFrequency: domain.PaymentFrequency(f.Lease.PaymentFrequency),
		Status:           domain.LeaseStatus(f.Lease.Status),
		Notes:            StringField(f.Lease.Notes),
	}
	if p.lease.StartDate, err = DateField(f.Lease.StartDate, loc); err != nil {
		fail("lease.startDate")
	}
	if p.lease.EndDate, err = DateField(f.Lease.EndDate, loc); err != nil {
		fail("lease.endDate")
	}
	if p.lease.RentalPrice, err = NumberField(f.Lease.RentalPrice); err != nil {
		fail("lease.rentalPrice")
	}
	if p.leaseID, err = IDField(f.LeaseID); err != nil {
		fail("leaseId")
	}
	if p.unitID, err = IDField(f.UnitID); err != nil {
		fail("unitId")
	}
	return p, errs
}

// Validate runs the transforms and the tenant and lease rules. Only the branch
// chosen by LeaseOption is checked; transform errors win over rule errors.
func Validate(f Form, loc *time.Location) domain.ValidationErrors {
	p, errs := f.parse(loc)
	seen := make(map[string]bool, len(errs))
	for _, e := range errs {
		seen[e.Field] = true
	}
	add := func(prefix string, err error) {
		var ve domain.ValidationErrors
		if !errors.As(err, &ve) {
			return
		}
		for _, e := range ve {
			field := prefix + e.Field
			if seen[field] {
				continue
			}
			seen[field] = true
			errs = append(errs, domain.ValidationError{Field: field, Message: e.Message})
		}
	}

	add("", p.tenant.Validate())
	switch f.LeaseOption {
	case LeaseExisting:
		if f.LeaseID == "" {
			errs = append(errs, domain.ValidationError{Field: "leaseId", Message: "Lease is required"})
		}
	default:
		add("lease.", p.lease.Validate())
	}
	return errs
}

// Valid reports full-form validity
func Valid(f Form, loc *time.Location) bool {
	return len(Validate(f, loc)) == 0
}
