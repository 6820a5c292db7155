// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/idracore/gms/internal/middleware"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/service"
)

type AuthHandler struct {
	identityService *service.IdentityService
}

func NewAuthHandler(identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

type RegisterResponse struct {
	BaseResponse
	Identity *model.Identity `json:"identity"`
	Token    string          `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.Register(r.Context(), input, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		BaseResponse: BaseResponse{Ok: true},
		Identity:     output.Identity,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	Identity *model.Identity `json:"identity"`
	Token    string          `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.Login(r.Context(), input, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		Identity:     output.Identity,
		Token:        output.Token,
	})
}

// ProfileHandler returns the authenticated identity.
func (h *AuthHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respondWithJSON(w, http.StatusOK, identity)
}
