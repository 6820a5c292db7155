// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/idracore/gms/internal/auth"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"

	"github.com/google/uuid"
)

type identityContextKey string

const identityKey identityContextKey = "gms_identity"

// IdentityFrom returns the authenticated identity from the request context,
// or nil for anonymous requests.
func IdentityFrom(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(identityKey).(*model.Identity)
	return identity
}

// WithIdentity injects an identity into a context. Exported for tests.
func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// RequireAuth validates the bearer token and loads the full identity so
// downstream scope resolution sees role and company binding. Requests
// without a valid token are rejected.
func RequireAuth(tokenManager *auth.TokenManager, identities repository.IdentityRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authenticate(w, r, tokenManager, identities)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// OptionalAuth resolves an identity when a bearer token is present but lets
// anonymous requests through; public endpoints use it so an authenticated
// caller still gets its proper scope.
func OptionalAuth(tokenManager *auth.TokenManager, identities repository.IdentityRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, ok := authenticate(w, r, tokenManager, identities)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, tokenManager *auth.TokenManager, identities repository.IdentityRepositoryIface) (*model.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		respondWithError(w, http.StatusUnauthorized, "No authorization header")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
		return nil, false
	}

	claims, err := tokenManager.Validate(parts[1])
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	identityID, err := uuid.Parse(claims.IdentityID)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return nil, false
	}

	identity, err := identities.FindByID(r.Context(), identityID)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Unknown identity")
		return nil, false
	}
	if !identity.IsActive {
		respondWithError(w, http.StatusUnauthorized, "Identity deactivated")
		return nil, false
	}

	return identity, true
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
