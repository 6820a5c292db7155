// internal/repository/grievance.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/idracore/gms/internal/authz"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/model"
)

// CategoryCount is one row of the per-category aggregate.
type CategoryCount struct {
	Category model.GrievanceCategory `json:"category"`
	Count    int64                   `json:"count"`
}

// CompanyCount is one row of the per-company aggregate.
type CompanyCount struct {
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Count       int64     `json:"count"`
}

type GrievanceRepositoryIface interface {
	AllocateReference(ctx context.Context, year int) (string, error)
	Create(ctx context.Context, grievance *model.Grievance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Grievance, error)
	FindByReference(ctx context.Context, reference string) (*model.Grievance, error)
	ListByScope(ctx context.Context, scope authz.Scope, offset, limit int) ([]*model.Grievance, int64, error)
	UpdateStatus(ctx context.Context, grievance *model.Grievance, expected model.GrievanceStatus) (bool, error)

	CreateMessage(ctx context.Context, message *model.GrievanceMessage) error
	FindMessages(ctx context.Context, grievanceID uuid.UUID, includeInternal bool) ([]*model.GrievanceMessage, error)

	CountByStatus(ctx context.Context) (map[model.GrievanceStatus]int64, error)
	CountSubmittedSince(ctx context.Context, since time.Time) (int64, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	TopCompanies(ctx context.Context, limit int) ([]CompanyCount, error)
}

type GrievanceRepository struct {
	db *gorm.DB
}

func NewGrievanceRepository(db *gorm.DB) *GrievanceRepository {
	return &GrievanceRepository{db: db}
}

// AllocateReference increments the authoritative per-year counter and returns
// the formatted reference. The upsert runs as a single statement so two
// concurrent creates can never observe the same counter value; a plain
// count-then-format would race.
func (r *GrievanceRepository) AllocateReference(ctx context.Context, year int) (string, error) {
	var counter int64
	result := r.db.WithContext(ctx).Raw(
		`INSERT INTO grievance_sequences (year, counter) VALUES (?, 1)
		 ON CONFLICT (year) DO UPDATE SET counter = grievance_sequences.counter + 1
		 RETURNING counter`,
		year,
	).Scan(&counter)
	if result.Error != nil {
		return "", fmt.Errorf("failed to allocate grievance reference: %w", result.Error)
	}
	return model.FormatReference(year, counter), nil
}

func (r *GrievanceRepository) Create(ctx context.Context, grievance *model.Grievance) error {
	result := r.db.WithContext(ctx).Create(grievance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create grievance: %w", result.Error)
	}
	return nil
}

func (r *GrievanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Grievance, error) {
	var grievance model.Grievance
	result := r.db.WithContext(ctx).
		Preload("Company").
		First(&grievance, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("failed to find grievance: %w", result.Error)
	}
	return &grievance, nil
}

func (r *GrievanceRepository) FindByReference(ctx context.Context, reference string) (*model.Grievance, error) {
	var grievance model.Grievance
	result := r.db.WithContext(ctx).
		Preload("Company").
		Where("reference = ?", reference).
		First(&grievance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("failed to find grievance by reference: %w", result.Error)
	}
	return &grievance, nil
}

// ListByScope applies the visibility scope as a query predicate and returns
// grievances ordered by submission time descending.
func (r *GrievanceRepository) ListByScope(ctx context.Context, scope authz.Scope, offset, limit int) ([]*model.Grievance, int64, error) {
	var grievances []*model.Grievance
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Grievance{})
	switch scope.Kind {
	case authz.ScopeAll:
		// no predicate
	case authz.ScopeOwnedBy:
		query = query.Where("submitted_by_id = ?", scope.IdentityID)
	case authz.ScopeCompanyOf:
		query = query.Where("company_id = ?", scope.CompanyID)
	default:
		query = query.Where("is_public = ?", true)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count grievances: %w", err)
	}

	result := query.Preload("Company").
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).
		Find(&grievances)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list grievances: %w", result.Error)
	}

	return grievances, count, nil
}

// UpdateStatus writes status, priority and resolved_at with a compare-and-swap
// on the expected current status. Returns false when the row was not in the
// expected status, which callers surface as a lost transition race.
func (r *GrievanceRepository) UpdateStatus(ctx context.Context, grievance *model.Grievance, expected model.GrievanceStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("id = ? AND status = ?", grievance.ID, expected).
		Updates(map[string]interface{}{
			"status":      grievance.Status,
			"priority":    grievance.Priority,
			"resolved_at": grievance.ResolvedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update grievance status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *GrievanceRepository) CreateMessage(ctx context.Context, message *model.GrievanceMessage) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create grievance message: %w", result.Error)
	}
	return nil
}

// FindMessages returns the conversation thread in creation order. Internal
// notes are filtered out unless the caller's role may see them.
func (r *GrievanceRepository) FindMessages(ctx context.Context, grievanceID uuid.UUID, includeInternal bool) ([]*model.GrievanceMessage, error) {
	var messages []*model.GrievanceMessage
	query := r.db.WithContext(ctx).
		Preload("Sender").
		Where("grievance_id = ?", grievanceID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}
	result := query.Order("created_at ASC").Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find grievance messages: %w", result.Error)
	}
	return messages, nil
}

func (r *GrievanceRepository) CountByStatus(ctx context.Context) (map[model.GrievanceStatus]int64, error) {
	var rows []struct {
		Status model.GrievanceStatus
		Count  int64
	}
	result := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count grievances by status: %w", result.Error)
	}

	counts := make(map[model.GrievanceStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *GrievanceRepository) CountSubmittedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Where("submitted_at >= ?", since).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count recent grievances: %w", result.Error)
	}
	return count, nil
}

func (r *GrievanceRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	result := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count grievances by category: %w", result.Error)
	}
	return rows, nil
}

// TopCompanies returns the companies with the most grievances, ties broken by
// company name ascending.
func (r *GrievanceRepository) TopCompanies(ctx context.Context, limit int) ([]CompanyCount, error) {
	var rows []CompanyCount
	result := r.db.WithContext(ctx).Model(&model.Grievance{}).
		Select("companies.id AS company_id, companies.name AS company_name, COUNT(*) AS count").
		Joins("JOIN companies ON companies.id = grievances.company_id").
		Group("companies.id, companies.name").
		Order("count DESC, companies.name ASC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to rank companies by grievance count: %w", result.Error)
	}
	return rows, nil
}
