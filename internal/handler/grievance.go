// internal/handler/grievance.go
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

type GrievanceHandler struct {
	grievanceService *service.GrievanceService
}

func NewGrievanceHandler(grievanceService *service.GrievanceService) *GrievanceHandler {
	return &GrievanceHandler{grievanceService: grievanceService}
}

type GrievanceResponse struct {
	BaseResponse
	Grievance *model.Grievance `json:"grievance"`
}

// CreateHandler accepts authenticated policyholder submissions and anonymous
// public submissions alike; the service decides what the actor may do.
func (h *GrievanceHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateGrievanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	grievance, err := h.grievanceService.Create(r.Context(), input, middleware.IdentityFrom(r.Context()), r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, GrievanceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Grievance:    grievance,
	})
}

func (h *GrievanceHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	grievances, total, err := h.grievanceService.List(r.Context(), middleware.IdentityFrom(r.Context()), offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Total:        total,
		Offset:       offset,
		Limit:        limit,
		Items:        grievances,
	})
}

func (h *GrievanceHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid grievance id")
		return
	}

	grievance, err := h.grievanceService.Get(r.Context(), id, middleware.IdentityFrom(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GrievanceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Grievance:    grievance,
	})
}

// TransitionHandler updates status and optionally priority.
func (h *GrievanceHandler) TransitionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid grievance id")
		return
	}

	var input service.TransitionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	grievance, err := h.grievanceService.Transition(r.Context(), id, input, middleware.IdentityFrom(r.Context()), r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GrievanceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Grievance:    grievance,
	})
}

// TrackHandler is the public tracking lookup; the reference itself is the
// authorization token, so no scope applies.
func (h *GrievanceHandler) TrackHandler(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		respondWithError(w, http.StatusBadRequest, "Reference is required")
		return
	}

	grievance, err := h.grievanceService.TrackByReference(r.Context(), reference, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GrievanceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Grievance:    grievance,
	})
}

type MessageResponse struct {
	BaseResponse
	Message *model.GrievanceMessage `json:"message"`
}

func (h *GrievanceHandler) AppendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid grievance id")
		return
	}

	var input service.MessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	message, err := h.grievanceService.AppendMessage(r.Context(), id, input, middleware.IdentityFrom(r.Context()), r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, MessageResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      message,
	})
}

func (h *GrievanceHandler) ListMessagesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid grievance id")
		return
	}

	messages, err := h.grievanceService.ListMessages(r.Context(), id, middleware.IdentityFrom(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"messages": messages,
	})
}

// AnalyticsHandler serves the regulator dashboard aggregates.
func (h *GrievanceHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.grievanceService.Analytics(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
