// internal/service/identity.go
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
	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"
)

type IdentityService struct {
	repo           repository.IdentityRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	recorder       audit.Recorder
	validate       *validator.Validate
}

func NewIdentityService(
	repo repository.IdentityRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	recorder audit.Recorder,
) *IdentityService {
	if recorder == nil {
		recorder = &audit.NoOpRecorder{}
	}
	return &IdentityService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		recorder:       recorder,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

type RegisterOutput struct {
	Identity *model.Identity `json:"identity"`
	Token    string          `json:"token"`
}

// Register creates a policyholder identity. Company and regulator identities
// are provisioned administratively, never through self-registration.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput, req *http.Request) (*RegisterOutput, error) {
	if err := s.validateRegisterInput(input); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	identity := &model.Identity{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         model.RolePolicyholder,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(identity.ID.String(), identity.Email, string(identity.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.recorder.Record(ctx, &identity.ID, model.ActionCreate, "identity", identity.ID.String(), map[string]interface{}{
		"role": string(identity.Role),
	}, req)

	return &RegisterOutput{Identity: identity, Token: token}, nil
}

func (s *IdentityService) validateRegisterInput(input RegisterInput) error {
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
			case "min":
				verr.Violationf("%s must be at least %s characters", strings.ToLower(fe.Field()), fe.Param())
			default:
				verr.Violationf("%s is invalid", strings.ToLower(fe.Field()))
			}
		}
		return verr.OrNil()
	}
	return fmt.Errorf("validating register input: %w", err)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Identity *model.Identity `json:"identity"`
	Token    string          `json:"token"`
}

func (s *IdentityService) Login(ctx context.Context, input LoginInput, req *http.Request) (*LoginOutput, error) {
	identity, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !identity.IsActive {
		return nil, domain.ErrIdentityInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, identity.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(identity.ID.String(), identity.Email, string(identity.Role))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.recorder.Record(ctx, &identity.ID, model.ActionLogin, "identity", identity.ID.String(), nil, req)

	return &LoginOutput{Identity: identity, Token: token}, nil
}

// Profile returns the identity for an authenticated request.
func (s *IdentityService) Profile(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	return s.repo.FindByID(ctx, id)
}
