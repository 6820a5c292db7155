// internal/service/company.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/idracore/gms/internal/audit"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"
)

type CompanyService struct {
	repo     repository.CompanyRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewCompanyService(repo repository.CompanyRepositoryIface, recorder audit.Recorder) *CompanyService {
	if recorder == nil {
		recorder = &audit.NoOpRecorder{}
	}
	return &CompanyService{
		repo:     repo,
		recorder: recorder,
		validate: validator.New(),
	}
}

type CreateCompanyInput struct {
	Name              string  `json:"name" validate:"required"`
	LicenseNumber     string  `json:"license_number" validate:"required"`
	EstablishedYear   int     `json:"established_year" validate:"required,gte=1800"`
	Address           string  `json:"address" validate:"required"`
	Phone             string  `json:"phone" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Website           string  `json:"website"`
	RegistrationDate  string  `json:"registration_date" validate:"required,datetime=2006-01-02"`
	LicenseExpiryDate string  `json:"license_expiry_date" validate:"required,datetime=2006-01-02"`
	AuthorizedCapital float64 `json:"authorized_capital" validate:"gte=0"`
	PaidUpCapital     float64 `json:"paid_up_capital" validate:"gte=0"`
}

// Create registers a new insurance company. Regulator roles only.
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput, actor *model.Identity, req *http.Request) (*model.Company, error) {
	if actor == nil || !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: company registration requires a regulator role", domain.ErrPermissionDenied)
	}

	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	registrationDate, _ := parseDate(input.RegistrationDate)
	licenseExpiry, _ := parseDate(input.LicenseExpiryDate)

	company := &model.Company{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(input.Name),
		LicenseNumber:     strings.TrimSpace(input.LicenseNumber),
		EstablishedYear:   input.EstablishedYear,
		Address:           input.Address,
		Phone:             input.Phone,
		Email:             input.Email,
		Website:           input.Website,
		RegistrationDate:  registrationDate,
		LicenseExpiryDate: licenseExpiry,
		AuthorizedCapital: input.AuthorizedCapital,
		PaidUpCapital:     input.PaidUpCapital,
		IsActive:          true,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, &actor.ID, model.ActionCreate, "company", company.ID.String(), map[string]interface{}{
		"name":           company.Name,
		"license_number": company.LicenseNumber,
	}, req)

	return company, nil
}

func (s *CompanyService) validateCreateInput(input CreateCompanyInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	verr := &domain.ValidationError{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "required":
				verr.Violationf("%s is required", strings.ToLower(fe.Field()))
			case "email":
				verr.Violationf("%s must be a valid email address", strings.ToLower(fe.Field()))
			case "datetime":
				verr.Violationf("%s must be a date in YYYY-MM-DD form", strings.ToLower(fe.Field()))
			case "gte":
				verr.Violationf("%s is out of range", strings.ToLower(fe.Field()))
			default:
				verr.Violationf("%s is invalid", strings.ToLower(fe.Field()))
			}
		}
		return verr.OrNil()
	}
	return fmt.Errorf("validating company input: %w", err)
}

// List returns active companies ordered by name. Public.
func (s *CompanyService) List(ctx context.Context, offset, limit int) ([]*model.Company, int64, error) {
	return s.repo.FindActivePaginated(ctx, offset, limit)
}

// Get returns one active company. Public.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.IsActive {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}
