// internal/handler/audit.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/idracore/gms/internal/middleware"
	"github.com/idracore/gms/internal/repository"
	"github.com/idracore/gms/internal/service"
)

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// QueryHandler lets regulator admins search the compliance trail.
func (h *AuditHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil || !identity.Role.IsAdmin() {
		respondWithError(w, http.StatusForbidden, "Audit access requires a regulator role")
		return
	}

	params := repository.AuditQueryParams{
		Action:     r.URL.Query().Get("action"),
		TargetType: r.URL.Query().Get("target_type"),
		TargetID:   r.URL.Query().Get("target_id"),
	}

	if v := r.URL.Query().Get("actor_id"); v != "" {
		actorID, err := uuid.Parse(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid actor_id")
			return
		}
		params.ActorID = &actorID
	}

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid start time, want RFC3339")
			return
		}
		params.StartTime = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid end time, want RFC3339")
			return
		}
		params.EndTime = t
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			params.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			params.Offset = n
		}
	}

	entries, total, err := h.auditService.Query(r.Context(), params)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Total:        total,
		Offset:       params.Offset,
		Limit:        params.Limit,
		Items:        entries,
	})
}
