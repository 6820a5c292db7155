package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/idracore/gms/internal/model"
)

type AuditRepositoryIface interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	Query(ctx context.Context, params AuditQueryParams) ([]model.AuditEntry, int64, error)
}

// AuditRepository handles database operations for audit entries
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new audit entry
func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create audit entry: %w", result.Error)
	}

	return nil
}

// AuditQueryParams holds parameters for querying audit entries
type AuditQueryParams struct {
	ActorID    *uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// Query retrieves audit entries based on the provided query parameters
func (r *AuditRepository) Query(ctx context.Context, params AuditQueryParams) ([]model.AuditEntry, int64, error) {
	var entries []model.AuditEntry
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AuditEntry{})

	// Apply filters
	if params.ActorID != nil {
		query = query.Where("actor_id = ?", *params.ActorID)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.TargetType != "" {
		query = query.Where("target_type = ?", params.TargetType)
	}
	if params.TargetID != "" {
		query = query.Where("target_id = ?", params.TargetID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	// Apply pagination
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&entries)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query audit entries: %w", result.Error)
	}

	return entries, count, nil
}
