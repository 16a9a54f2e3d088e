package domain

// User authenticated principal; a realtor is a user with role REALTOR.
// Properties and leases reference users.id as realtor_id.
type User struct {
	Model
	Email     string        `gorm:"uniqueIndex;not null" json:"email"`
	FirstName *string       `json:"firstName"`
	LastName  *string       `json:"lastName"`
	Name      *string       `json:"name"`
	Phone     *string       `json:"phone"`
	Company   *string       `json:"company"`
	Title     *string       `json:"title"`
	Role      UserRole      `gorm:"type:varchar(16);default:REALTOR" json:"role"`
	Status    AccountStatus `gorm:"type:varchar(16);default:ACTIVE" json:"status"`
}
