// internal/model/grievance.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type GrievanceStatus string

const (
	StatusOpen            GrievanceStatus = "open"
	StatusUnderReview     GrievanceStatus = "under_review"
	StatusPendingResponse GrievanceStatus = "pending_response"
	StatusResolved        GrievanceStatus = "resolved"
	StatusClosed          GrievanceStatus = "closed"
)

// Valid reports whether s is a recognized status value.
func (s GrievanceStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusUnderReview, StatusPendingResponse, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s GrievanceStatus) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

type GrievancePriority string

const (
	PriorityLow    GrievancePriority = "low"
	PriorityMedium GrievancePriority = "medium"
	PriorityHigh   GrievancePriority = "high"
	PriorityUrgent GrievancePriority = "urgent"
)

func (p GrievancePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type GrievanceCategory string

const (
	CategoryClaimSettlement GrievanceCategory = "claim_settlement"
	CategoryPolicyTerms     GrievanceCategory = "policy_terms"
	CategoryPremiumIssues   GrievanceCategory = "premium_issues"
	CategoryServiceQuality  GrievanceCategory = "service_quality"
	CategoryAgentConduct    GrievanceCategory = "agent_conduct"
	CategoryDocumentation   GrievanceCategory = "documentation"
	CategoryFraudConcern    GrievanceCategory = "fraud_concern"
	CategoryOther           GrievanceCategory = "other"
)

func (c GrievanceCategory) Valid() bool {
	switch c {
	case CategoryClaimSettlement, CategoryPolicyTerms, CategoryPremiumIssues,
		CategoryServiceQuality, CategoryAgentConduct, CategoryDocumentation,
		CategoryFraudConcern, CategoryOther:
		return true
	}
	return false
}

// FormatReference renders the human-readable grievance reference for a
// year-scoped sequence number, e.g. GRV-2025-00042.
func FormatReference(year int, seq int64) string {
	return fmt.Sprintf("GRV-%d-%05d", year, seq)
}

// Grievance is a complaint record tracked from submission to resolution.
// Reference is assigned once at creation and never mutated. The complainant
// fields are a snapshot captured at submission time, independent of later
// profile changes on the submitting identity.
type Grievance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference string    `gorm:"type:text;uniqueIndex;not null" json:"reference"`

	Title       string            `gorm:"type:text;not null" json:"title"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Category    GrievanceCategory `gorm:"type:text;not null;index" json:"category"`

	ComplainantName  string `gorm:"type:text;not null" json:"complainant_name"`
	ComplainantEmail string `gorm:"type:text;not null" json:"complainant_email"`
	ComplainantPhone string `gorm:"type:text" json:"complainant_phone"`
	PolicyNumber     string `gorm:"type:text" json:"policy_number,omitempty"`

	CompanyID     *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	SubmittedByID *uuid.UUID `gorm:"type:uuid;index" json:"submitted_by_id,omitempty"`
	AssignedToID  *uuid.UUID `gorm:"type:uuid" json:"assigned_to_id,omitempty"`

	Status   GrievanceStatus   `gorm:"type:text;not null;default:'open';index" json:"status"`
	Priority GrievancePriority `gorm:"type:text;not null;default:'medium';index" json:"priority"`

	SubmittedAt time.Time  `gorm:"not null" json:"submitted_at"`
	SLADeadline time.Time  `gorm:"not null" json:"sla_deadline"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`

	ClaimAmount      *float64 `gorm:"type:numeric(12,2)" json:"claim_amount,omitempty"`
	SettlementAmount *float64 `gorm:"type:numeric(12,2)" json:"settlement_amount,omitempty"`

	IsPublic  bool      `gorm:"not null;default:false" json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company     *Company           `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	SubmittedBy *Identity          `gorm:"foreignKey:SubmittedByID" json:"submitted_by,omitempty"`
	AssignedTo  *Identity          `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	Messages    []GrievanceMessage `gorm:"foreignKey:GrievanceID" json:"messages,omitempty"`
}

func (Grievance) TableName() string {
	return "grievances"
}

// GrievanceMessage is one entry in a grievance's append-only conversation
// thread. SenderID is nil for system-generated status summaries. Internal
// messages are visible to staff and company roles only.
type GrievanceMessage struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	GrievanceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"grievance_id"`
	SenderID    *uuid.UUID `gorm:"type:uuid" json:"sender_id,omitempty"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	IsInternal  bool       `gorm:"not null;default:false" json:"is_internal"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`

	Sender *Identity `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (GrievanceMessage) TableName() string {
	return "grievance_messages"
}

// GrievanceSequence is the per-year reference counter. The row is incremented
// inside a transaction so concurrent creates never observe the same value.
type GrievanceSequence struct {
	Year    int   `gorm:"primaryKey"`
	Counter int64 `gorm:"not null"`
}

func (GrievanceSequence) TableName() string {
	return "grievance_sequences"
}
