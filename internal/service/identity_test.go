package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/mocks"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/service"
)

func newIdentityService(repo *mocks.MockIdentityRepositoryIface) (*service.IdentityService, *auth.TokenManager) {
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)
	return service.NewIdentityService(repo, auth.NewPasswordHasher(), tokenManager, nil), tokenManager
}

func TestIdentityRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.RegisterInput{
		Email:     "Alice@Example.COM",
		FirstName: "Alice",
		LastName:  "Rahman",
		Password:  "correct_password",
	}

	t.Run("creates a policyholder with a usable token", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, tokenManager := newIdentityService(repo)

		var saved *model.Identity
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, identity *model.Identity) error {
				saved = identity
				return nil
			})

		out, err := svc.Register(context.Background(), input, nil)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "alice@example.com", saved.Email)
		assert.Equal(t, model.RolePolicyholder, saved.Role)
		assert.True(t, saved.IsActive)
		assert.NotEqual(t, input.Password, saved.PasswordHash)

		claims, err := tokenManager.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID.String(), claims.IdentityID)
		assert.Equal(t, string(model.RolePolicyholder), claims.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, _ := newIdentityService(repo)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailAlreadyExists)

		_, err := svc.Register(context.Background(), input, nil)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("collects all field violations", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, _ := newIdentityService(repo)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "not-an-email",
			Password: "short",
		}, nil)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "email must be a valid email address")
		assert.Contains(t, verr.Violations, "firstname is required")
		assert.Contains(t, verr.Violations, "password must be at least 8 characters")
	})
}

func TestIdentityLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	activeIdentity := func() *model.Identity {
		return &model.Identity{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			FirstName:    "Alice",
			Role:         model.RolePolicyholder,
			PasswordHash: hash,
			IsActive:     true,
		}
	}

	t.Run("successful login returns a token", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, tokenManager := newIdentityService(repo)
		identity := activeIdentity()

		repo.EXPECT().
			FindByEmail(gomock.Any(), "alice@example.com").
			Return(identity, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    " Alice@example.com ",
			Password: "correct_password",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, identity, out.Identity)

		claims, err := tokenManager.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, identity.ID.String(), claims.IdentityID)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, _ := newIdentityService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "alice@example.com").
			Return(activeIdentity(), nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong_password",
		}, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email yields invalid credentials, not not-found", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, _ := newIdentityService(repo)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrIdentityNotFound)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		}, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("deactivated identity may not log in", func(t *testing.T) {
		repo := mocks.NewMockIdentityRepositoryIface(ctrl)
		svc, _ := newIdentityService(repo)
		identity := activeIdentity()
		identity.IsActive = false

		repo.EXPECT().
			FindByEmail(gomock.Any(), "alice@example.com").
			Return(identity, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "alice@example.com",
			Password: "correct_password",
		}, nil)

		assert.ErrorIs(t, err, domain.ErrIdentityInactive)
	})
}
