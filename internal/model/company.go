// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is a regulated insurance company. Read-mostly reference data; rows
// are deactivated rather than deleted so grievance history stays intact.
type Company struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name              string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	LicenseNumber     string    `gorm:"type:text;uniqueIndex;not null" json:"license_number"`
	EstablishedYear   int       `gorm:"not null" json:"established_year"`
	Address           string    `gorm:"type:text" json:"address"`
	Phone             string    `gorm:"type:text" json:"phone"`
	Email             string    `gorm:"type:text" json:"email"`
	Website           string    `gorm:"type:text" json:"website,omitempty"`
	RegistrationDate  time.Time `json:"registration_date"`
	LicenseExpiryDate time.Time `json:"license_expiry_date"`
	AuthorizedCapital float64   `gorm:"type:numeric(15,2)" json:"authorized_capital"`
	PaidUpCapital     float64   `gorm:"type:numeric(15,2)" json:"paid_up_capital"`
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
