package domain

// ListingStatus unit status
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingInactive ListingStatus = "INACTIVE"
	ListingVacant   ListingStatus = "VACANT"
	ListingRented   ListingStatus = "RENTED"
	ListingSold     ListingStatus = "SOLD"
	ListingReserved ListingStatus = "RESERVED"
)

var listingStatusLabels = map[ListingStatus]string{
	ListingActive:   "Active",
	ListingInactive: "Inactive",
	ListingVacant:   "Vacant",
	ListingRented:   "Rented",
	ListingSold:     "Sold",
	ListingReserved: "Reserved",
}

// Valid reports whether s is a known status
func (s ListingStatus) Valid() bool {
	_, ok := listingStatusLabels[s]
	return ok
}

// Label human readable name
func (s ListingStatus) Label() string { return listingStatusLabels[s] }

// IsOccupied is the occupancy classification; it is derived and never stored.
// Unknown and unset statuses count as vacant.
func (s ListingStatus) IsOccupied() bool {
	switch s {
	case ListingActive, ListingRented, ListingSold, ListingReserved:
		return true
	}
	return false
}

// LeaseStatus lease lifecycle state
type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseInactive   LeaseStatus = "INACTIVE"
	LeaseTerminated LeaseStatus = "TERMINATED"
	LeaseCompleted  LeaseStatus = "COMPLETED"
)

var leaseStatusLabels = map[LeaseStatus]string{
	LeaseActive:     "Active",
	LeaseInactive:   "Inactive",
	LeaseTerminated: "Terminated",
	LeaseCompleted:  "Completed",
}

func (s LeaseStatus) Valid() bool {
	_, ok := leaseStatusLabels[s]
	return ok
}

func (s LeaseStatus) Label() string { return leaseStatusLabels[s] }

// PaymentFrequency how often rent is due
type PaymentFrequency string

const (
	PaymentDaily     PaymentFrequency = "DAILY"
	PaymentWeekly    PaymentFrequency = "WEEKLY"
	PaymentBiweekly  PaymentFrequency = "BIWEEKLY"
	PaymentMonthly   PaymentFrequency = "MONTHLY"
	PaymentQuarterly PaymentFrequency = "QUARTERLY"
	PaymentYearly    PaymentFrequency = "YEARLY"
)

var paymentFrequencyLabels = map[PaymentFrequency]string{
	PaymentDaily:     "Daily",
	PaymentWeekly:    "Weekly",
	PaymentBiweekly:  "Bi-Weekly",
	PaymentMonthly:   "Monthly",
	PaymentQuarterly: "Quarterly",
	PaymentYearly:    "Yearly",
}

func (f PaymentFrequency) Valid() bool {
	_, ok := paymentFrequencyLabels[f]
	return ok
}

func (f PaymentFrequency) Label() string { return paymentFrequencyLabels[f] }

// RealEstateType property classification
type RealEstateType string

const (
	RealEstateApartment   RealEstateType = "APARTMENT"
	RealEstateCondo       RealEstateType = "CONDO"
	RealEstateHouse       RealEstateType = "HOUSE"
	RealEstateTownhouse   RealEstateType = "TOWNHOUSE"
	RealEstateMultiFamily RealEstateType = "MULTI_FAMILY"
	RealEstateCommercial  RealEstateType = "COMMERCIAL"
	RealEstateLand        RealEstateType = "LAND"
	RealEstateOther       RealEstateType = "OTHER"
)

var realEstateTypeLabels = map[RealEstateType]string{
	RealEstateApartment:   "Apartment",
	RealEstateCondo:       "Condominium",
	RealEstateHouse:       "House",
	RealEstateTownhouse:   "Townhouse",
	RealEstateMultiFamily: "Multi-Family",
	RealEstateCommercial:  "Commercial",
	RealEstateLand:        "Land",
	RealEstateOther:       "Other",
}

func (t RealEstateType) Valid() bool {
	_, ok := realEstateTypeLabels[t]
	return ok
}

func (t RealEstateType) Label() string { return realEstateTypeLabels[t] }

// UserRole account role
type UserRole string

const (
	RoleRealtor UserRole = "REALTOR"
	RoleTenant  UserRole = "TENANT"
	RoleAdmin   UserRole = "ADMIN"
)

// AccountStatus account state
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)
