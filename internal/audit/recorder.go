package audit

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Recorder defines the interface for compliance audit recording. Recording is
// best-effort: implementations must never fail the primary operation, only
// surface write failures to the operational log.
type Recorder interface {
	// Record appends one audit entry for an action performed by actor
	// (nil for anonymous requests) against the target record. The request,
	// when present, contributes request id, client IP and user agent.
	Record(
		ctx context.Context,
		actorID *uuid.UUID,
		action string,
		targetType string,
		targetID string,
		details map[string]interface{},
		req *http.Request,
	)
}

// NoOpRecorder is a recorder that does nothing
type NoOpRecorder struct{}

// Record implements Recorder.Record
func (r *NoOpRecorder) Record(
	ctx context.Context,
	actorID *uuid.UUID,
	action string,
	targetType string,
	targetID string,
	details map[string]interface{},
	req *http.Request,
) {
}
