// internal/service/audit.go
package service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/idracore/gms/internal/audit"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/obs"
	"github.com/idracore/gms/internal/repository"
)

// Ensure AuditService implements the audit.Recorder interface
var _ audit.Recorder = (*AuditService)(nil)

// AuditService persists compliance audit entries. Recording is deliberately
// not transactional with the primary write: a failed audit insert is logged
// and counted, never surfaced to the caller, so an audit-store outage cannot
// take grievance handling down with it.
type AuditService struct {
	repo repository.AuditRepositoryIface
}

// NewAuditService creates a new AuditService
func NewAuditService(repo repository.AuditRepositoryIface) *AuditService {
	return &AuditService{repo: repo}
}

// Record implements audit.Recorder.
func (s *AuditService) Record(
	ctx context.Context,
	actorID *uuid.UUID,
	action string,
	targetType string,
	targetID string,
	details map[string]interface{},
	req *http.Request,
) {
	entry := &model.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    model.JSONMap(details),
		Timestamp:  time.Now().UTC(),
	}

	if req != nil {
		entry.RequestID = middleware.GetReqID(ctx)
		entry.ClientIP = req.RemoteAddr
		entry.UserAgent = req.UserAgent()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		obs.AuditWriteFailures.Inc()
		slog.ErrorContext(ctx, "audit entry write failed",
			"error", err,
			"action", action,
			"target_type", targetType,
			"target_id", targetID,
		)
	}
}

// Query retrieves audit entries for the admin audit endpoint.
func (s *AuditService) Query(ctx context.Context, params repository.AuditQueryParams) ([]model.AuditEntry, int64, error) {
	return s.repo.Query(ctx, params)
}
