// internal/repository/identity.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/model"
)

type IdentityRepositoryIface interface {
	Create(ctx context.Context, identity *model.Identity) error
	FindByEmail(ctx context.Context, email string) (*model.Identity, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Identity, error)
	Update(ctx context.Context, identity *model.Identity) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Create(ctx context.Context, identity *model.Identity) error {
	result := r.db.WithContext(ctx).Create(identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create identity: %w", result.Error)
	}
	return nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var identity model.Identity
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to find identity: %w", result.Error)
	}
	return &identity, nil
}

func (r *IdentityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	var identity model.Identity
	result := r.db.WithContext(ctx).First(&identity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to find identity: %w", result.Error)
	}
	return &identity, nil
}

func (r *IdentityRepository) Update(ctx context.Context, identity *model.Identity) error {
	result := r.db.WithContext(ctx).Save(identity)
	if result.Error != nil {
		return fmt.Errorf("failed to update identity: %w", result.Error)
	}
	return nil
}

// Deactivate soft-deletes by clearing the active flag; rows are never removed
// so audit and grievance references stay resolvable.
func (r *IdentityRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Identity{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}
