package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditEntry records who did what to which record, for compliance. Rows are
// append-only and never mutated.
type AuditEntry struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	Action     string     `json:"action" gorm:"type:text;not null;index"`
	TargetType string     `json:"target_type" gorm:"type:text;not null;index"`
	TargetID   string     `json:"target_id" gorm:"type:text;not null"`
	Details    JSONMap    `json:"details" gorm:"type:jsonb"`
	RequestID  string     `json:"request_id" gorm:"type:text"`
	ClientIP   string     `json:"client_ip" gorm:"type:text"`
	UserAgent  string     `json:"user_agent" gorm:"type:text"`
	Timestamp  time.Time  `json:"timestamp" gorm:"not null;index;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuditEntry
func (AuditEntry) TableName() string {
	return "audit_entries"
}

// Constants for AuditEntry actions
const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionStatusChange = "status_change"
	ActionMessageSent  = "message_sent"
	ActionView         = "view"
	ActionLogin        = "login"
)

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
