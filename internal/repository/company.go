// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindActive(ctx context.Context) ([]*model.Company, error)
	FindActivePaginated(ctx context.Context, offset, limit int) ([]*model.Company, int64, error)
	Update(ctx context.Context, company *model.Company) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCompany
		}
		return fmt.Errorf("failed to create company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

// FindActive returns all active companies ordered by name.
func (r *CompanyRepository) FindActive(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find active companies: %w", result.Error)
	}
	return companies, nil
}

// FindActivePaginated returns a paginated list of active companies
func (r *CompanyRepository) FindActivePaginated(ctx context.Context, offset, limit int) ([]*model.Company, int64, error) {
	var companies []*model.Company
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Company{}).Where("is_active = ?", true)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	result := query.Order("name ASC").Offset(offset).Limit(limit).Find(&companies)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated companies: %w", result.Error)
	}

	return companies, count, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Save(company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
