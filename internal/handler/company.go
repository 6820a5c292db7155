// internal/handler/company.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/idracore/gms/internal/middleware"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/service"
)

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	companies, total, err := h.companyService.List(r.Context(), offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Total:        total,
		Offset:       offset,
		Limit:        limit,
		Items:        companies,
	})
}

func (h *CompanyHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	company, err := h.companyService.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, company)
}

type CompanyResponse struct {
	BaseResponse
	Company *model.Company `json:"company"`
}

func (h *CompanyHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companyService.Create(r.Context(), input, middleware.IdentityFrom(r.Context()), r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}
