// internal/model/identity.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePolicyholder     Role = "policyholder"
	RoleInsuranceCompany Role = "insurance_company"
	RoleIDRAAdmin        Role = "idra_admin"
	RoleSuperAdmin       Role = "super_admin"
)

// Valid reports whether r is a recognized role value.
func (r Role) Valid() bool {
	switch r {
	case RolePolicyholder, RoleInsuranceCompany, RoleIDRAAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries regulator-wide privileges.
func (r Role) IsAdmin() bool {
	return r == RoleIDRAAdmin || r == RoleSuperAdmin
}

// Identity is an authenticated user of the system. Email is the login key.
// CompanyID is set only for insurance_company identities and binds their
// visibility scope to that company. Identities are soft-deactivated, never
// deleted, to preserve referential history.
type Identity struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	Phone        string     `gorm:"type:text" json:"phone"`
	Role         Role       `gorm:"type:text;not null;default:'policyholder'" json:"role"`
	CompanyID    *uuid.UUID `gorm:"type:uuid" json:"company_id,omitempty"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Identity) TableName() string {
	return "identities"
}

// FullName is the display name used in complainant snapshots.
func (i *Identity) FullName() string {
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
