package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/middleware"
	"github.com/idracore/gms/internal/mocks"
	"github.com/idracore/gms/internal/model"
)

func identityEcho(t *testing.T, captured **model.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = middleware.IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("valid token loads the full identity", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		identity := &model.Identity{
			ID:       uuid.New(),
			Email:    "alice@example.com",
			Role:     model.RolePolicyholder,
			IsActive: true,
		}
		token, err := tokenManager.Generate(identity.ID.String(), identity.Email, string(identity.Role))
		require.NoError(t, err)

		identities.EXPECT().
			FindByID(gomock.Any(), identity.ID).
			Return(identity, nil)

		var seen *model.Identity
		h := middleware.RequireAuth(tokenManager, identities)(identityEcho(t, &seen))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, identity, seen)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		var seen *model.Identity
		h := middleware.RequireAuth(tokenManager, identities)(identityEcho(t, &seen))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		var seen *model.Identity
		h := middleware.RequireAuth(tokenManager, identities)(identityEcho(t, &seen))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated identity is rejected even with a valid token", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		identity := &model.Identity{
			ID:       uuid.New(),
			Email:    "gone@example.com",
			Role:     model.RolePolicyholder,
			IsActive: false,
		}
		token, err := tokenManager.Generate(identity.ID.String(), identity.Email, string(identity.Role))
		require.NoError(t, err)

		identities.EXPECT().
			FindByID(gomock.Any(), identity.ID).
			Return(identity, nil)

		var seen *model.Identity
		h := middleware.RequireAuth(tokenManager, identities)(identityEcho(t, &seen))

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})
}

func TestOptionalAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("absent header passes through anonymously", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		var seen *model.Identity
		h := middleware.OptionalAuth(tokenManager, identities)(identityEcho(t, &seen))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/grievances", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("present but invalid token is still rejected", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		var seen *model.Identity
		h := middleware.OptionalAuth(tokenManager, identities)(identityEcho(t, &seen))

		req := httptest.NewRequest("POST", "/api/grievances", nil)
		req.Header.Set("Authorization", "Bearer expired.or.garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("valid token resolves the identity", func(t *testing.T) {
		identities := mocks.NewMockIdentityRepositoryIface(ctrl)
		identity := &model.Identity{
			ID:       uuid.New(),
			Email:    "alice@example.com",
			Role:     model.RolePolicyholder,
			IsActive: true,
		}
		token, err := tokenManager.Generate(identity.ID.String(), identity.Email, string(identity.Role))
		require.NoError(t, err)

		identities.EXPECT().
			FindByID(gomock.Any(), identity.ID).
			Return(identity, nil)

		var seen *model.Identity
		h := middleware.OptionalAuth(tokenManager, identities)(identityEcho(t, &seen))

		req := httptest.NewRequest("POST", "/api/grievances", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, identity, seen)
	})
}
