// internal/service/grievance.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/idracore/gms/internal/audit"
	"github.com/idracore/gms/internal/authz"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/email"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/obs"
	"github.com/idracore/gms/internal/repository"
)

// maxReferenceAttempts bounds the create retry loop when a reference collides
// on its unique index. The transactional counter makes collisions effectively
// impossible, so the budget is small.
const maxReferenceAttempts = 5

// Notifier sends best-effort notification email.
type Notifier interface {
	Send(data email.Data) error
}

type GrievanceService struct {
	repo      repository.GrievanceRepositoryIface
	recorder  audit.Recorder
	notifier  Notifier
	validate  *validator.Validate
	slaWindow time.Duration
	now       func() time.Time
}

func NewGrievanceService(
	repo repository.GrievanceRepositoryIface,
	recorder audit.Recorder,
	notifier Notifier,
	slaWindow time.Duration,
) *GrievanceService {
	if recorder == nil {
		recorder = &audit.NoOpRecorder{}
	}
	return &GrievanceService{
		repo:      repo,
		recorder:  recorder,
		notifier:  notifier,
		validate:  validator.New(),
		slaWindow: slaWindow,
		now:       time.Now,
	}
}

type CreateGrievanceInput struct {
	Title        string                  `json:"title" validate:"required"`
	Description  string                  `json:"description" validate:"required"`
	Category     model.GrievanceCategory `json:"category" validate:"required"`
	CompanyID    *uuid.UUID              `json:"company_id"`
	PolicyNumber string                  `json:"policy_number"`
	ClaimAmount  *float64                `json:"claim_amount" validate:"omitempty,gte=0"`
	IsPublic     bool                    `json:"is_public"`

	// Complainant snapshot for anonymous submissions. Ignored when an
	// authenticated policyholder submits; their profile is snapshotted
	// instead.
	ComplainantName  string `json:"complainant_name"`
	ComplainantEmail string `json:"complainant_email" validate:"omitempty,email"`
	ComplainantPhone string `json:"complainant_phone"`
}

// validateCreateInput collects every violation into one ValidationError so
// the caller sees the full list at once.
func (s *GrievanceService) validateCreateInput(input CreateGrievanceInput, anonymous bool) error {
	verr := &domain.ValidationError{}

	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.Tag() {
				case "required":
					verr.Violationf("%s is required", strings.ToLower(fe.Field()))
				case "email":
					verr.Violationf("%s must be a valid email address", strings.ToLower(fe.Field()))
				case "gte":
					verr.Violationf("%s must not be negative", strings.ToLower(fe.Field()))
				default:
					verr.Violationf("%s is invalid", strings.ToLower(fe.Field()))
				}
			}
		} else {
			return fmt.Errorf("validating grievance input: %w", err)
		}
	}

	if input.Category != "" && !input.Category.Valid() {
		verr.Violationf("category %q is not recognized", input.Category)
	}

	if anonymous {
		if strings.TrimSpace(input.ComplainantName) == "" {
			verr.Violationf("complainant_name is required for anonymous submissions")
		}
		if strings.TrimSpace(input.ComplainantEmail) == "" {
			verr.Violationf("complainant_email is required for anonymous submissions")
		}
	}

	return verr.OrNil()
}

// Create registers a new grievance. The actor is the submitting policyholder,
// or nil for anonymous public submission; any other role is rejected. The
// reference is allocated from the serialized per-year counter and the insert
// retried on the unique-index backstop.
func (s *GrievanceService) Create(ctx context.Context, input CreateGrievanceInput, actor *model.Identity, req *http.Request) (*model.Grievance, error) {
	if actor != nil && actor.Role != model.RolePolicyholder {
		return nil, fmt.Errorf("%w: only policyholders may submit grievances", domain.ErrPermissionDenied)
	}

	if err := s.validateCreateInput(input, actor == nil); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	grievance := &model.Grievance{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		CompanyID:    input.CompanyID,
		PolicyNumber: input.PolicyNumber,
		ClaimAmount:  input.ClaimAmount,
		IsPublic:     input.IsPublic,
		Status:       model.StatusOpen,
		Priority:     model.PriorityMedium,
		SubmittedAt:  now,
		SLADeadline:  now.Add(s.slaWindow),
	}

	// Complainant contact is captured once at submission; later profile
	// edits never rewrite history.
	if actor != nil {
		grievance.SubmittedByID = &actor.ID
		grievance.ComplainantName = actor.FullName()
		grievance.ComplainantEmail = actor.Email
		grievance.ComplainantPhone = actor.Phone
	} else {
		grievance.ComplainantName = strings.TrimSpace(input.ComplainantName)
		grievance.ComplainantEmail = strings.TrimSpace(input.ComplainantEmail)
		grievance.ComplainantPhone = strings.TrimSpace(input.ComplainantPhone)
	}

	created := false
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		reference, err := s.repo.AllocateReference(ctx, now.Year())
		if err != nil {
			return nil, fmt.Errorf("allocating reference: %w", err)
		}
		grievance.Reference = reference

		err = s.repo.Create(ctx, grievance)
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, domain.ErrDuplicateReference) {
			return nil, err
		}
		obs.ReferenceRetries.Inc()
		slog.WarnContext(ctx, "grievance reference collision, retrying",
			"reference", reference, "attempt", attempt)
	}
	if !created {
		return nil, domain.ErrSequenceExhausted
	}

	obs.GrievancesCreated.WithLabelValues(string(grievance.Category)).Inc()

	var actorID *uuid.UUID
	if actor != nil {
		actorID = &actor.ID
	}
	s.recorder.Record(ctx, actorID, model.ActionCreate, "grievance", grievance.ID.String(), map[string]interface{}{
		"reference": grievance.Reference,
		"category":  string(grievance.Category),
	}, req)

	s.notify(ctx, grievance, "grievance_submitted",
		fmt.Sprintf("Grievance %s registered", grievance.Reference),
		map[string]interface{}{
			"ComplainantName": grievance.ComplainantName,
			"Reference":       grievance.Reference,
			"Title":           grievance.Title,
			"SLADeadline":     grievance.SLADeadline.Format("02 Jan 2006"),
		})

	return grievance, nil
}

type TransitionInput struct {
	Status   model.GrievanceStatus    `json:"status"`
	Priority *model.GrievancePriority `json:"priority,omitempty"`

	// ExpectedStatus, when set, turns the update into a compare-and-swap:
	// the transition fails if the grievance has moved on in the meantime.
	ExpectedStatus *model.GrievanceStatus `json:"expected_status,omitempty"`
}

// Transition moves a grievance through its status machine. Policyholders are
// read-only for status; terminal states admit no further transitions. On
// success one system message summarizing the change is appended and the
// complainant is notified.
func (s *GrievanceService) Transition(ctx context.Context, grievanceID uuid.UUID, input TransitionInput, actor *model.Identity, req *http.Request) (*model.Grievance, error) {
	grievance, err := s.repo.FindByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}

	if actor == nil || actor.Role == model.RolePolicyholder {
		return nil, fmt.Errorf("%w: status changes require a company or regulator role", domain.ErrPermissionDenied)
	}
	if !authz.ResolveScope(actor).Allows(grievance) {
		return nil, fmt.Errorf("%w: grievance outside actor scope", domain.ErrPermissionDenied)
	}

	current := grievance.Status
	if current.Terminal() {
		return nil, fmt.Errorf("%w: grievance %s is %s", domain.ErrInvalidTransition, grievance.Reference, current)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, input.Status)
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf("priority %q is not recognized", *input.Priority))
	}

	previousPriority := grievance.Priority
	grievance.Status = input.Status
	if input.Priority != nil {
		grievance.Priority = *input.Priority
	}
	if input.Status.Terminal() && grievance.ResolvedAt == nil {
		resolvedAt := s.now().UTC()
		grievance.ResolvedAt = &resolvedAt
	}

	expected := current
	if input.ExpectedStatus != nil {
		expected = *input.ExpectedStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, grievance, expected)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: grievance was no longer in status %q", domain.ErrInvalidTransition, expected)
	}

	summary := fmt.Sprintf("Status updated from '%s' to '%s'", current, input.Status)
	if input.Priority != nil && previousPriority != *input.Priority {
		summary += fmt.Sprintf(", priority changed from '%s' to '%s'", previousPriority, *input.Priority)
	}

	// System message carries no sender; that distinguishes it from
	// participant conversation.
	message := &model.GrievanceMessage{
		ID:          uuid.New(),
		GrievanceID: grievance.ID,
		Content:     summary,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("appending status message: %w", err)
	}

	obs.GrievanceTransitions.WithLabelValues(string(input.Status)).Inc()

	s.recorder.Record(ctx, &actor.ID, model.ActionStatusChange, "grievance", grievance.ID.String(), map[string]interface{}{
		"reference": grievance.Reference,
		"from":      string(current),
		"to":        string(input.Status),
	}, req)

	s.notify(ctx, grievance, "grievance_status_changed",
		fmt.Sprintf("Grievance %s: status update", grievance.Reference),
		map[string]interface{}{
			"ComplainantName": grievance.ComplainantName,
			"Reference":       grievance.Reference,
			"Summary":         summary,
		})

	return grievance, nil
}

// Get returns a single grievance when it lies within the actor's scope.
func (s *GrievanceService) Get(ctx context.Context, grievanceID uuid.UUID, actor *model.Identity) (*model.Grievance, error) {
	grievance, err := s.repo.FindByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	if !authz.ResolveScope(actor).Allows(grievance) {
		return nil, fmt.Errorf("%w: grievance outside actor scope", domain.ErrPermissionDenied)
	}
	return grievance, nil
}

// TrackByReference is the unauthenticated tracking lookup. It deliberately
// bypasses scope: knowledge of the reference is the authorization token.
func (s *GrievanceService) TrackByReference(ctx context.Context, reference string, req *http.Request) (*model.Grievance, error) {
	grievance, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, nil, model.ActionView, "grievance", grievance.ID.String(), map[string]interface{}{
		"reference": grievance.Reference,
		"via":       "public_tracking",
	}, req)

	return grievance, nil
}

// List returns the grievances within the actor's scope, newest first.
func (s *GrievanceService) List(ctx context.Context, actor *model.Identity, offset, limit int) ([]*model.Grievance, int64, error) {
	return s.repo.ListByScope(ctx, authz.ResolveScope(actor), offset, limit)
}

type MessageInput struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"is_internal"`
}

// AppendMessage adds a conversation entry. Unlike status transitions,
// messaging is read/write symmetric: any authenticated actor whose scope
// covers the grievance may post. A policyholder can never author an
// internal-only note; the flag is forced false for that role.
func (s *GrievanceService) AppendMessage(ctx context.Context, grievanceID uuid.UUID, input MessageInput, actor *model.Identity, req *http.Request) (*model.GrievanceMessage, error) {
	if actor == nil {
		return nil, fmt.Errorf("%w: messaging requires authentication", domain.ErrPermissionDenied)
	}

	grievance, err := s.repo.FindByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	if !authz.ResolveScope(actor).Allows(grievance) {
		return nil, fmt.Errorf("%w: grievance outside actor scope", domain.ErrPermissionDenied)
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.NewValidationError("content must not be empty")
	}

	isInternal := input.IsInternal
	if actor.Role == model.RolePolicyholder {
		isInternal = false
	}

	message := &model.GrievanceMessage{
		ID:          uuid.New(),
		GrievanceID: grievance.ID,
		SenderID:    &actor.ID,
		Content:     content,
		IsInternal:  isInternal,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, &actor.ID, model.ActionMessageSent, "grievance", grievance.ID.String(), map[string]interface{}{
		"reference":   grievance.Reference,
		"is_internal": isInternal,
	}, req)

	return message, nil
}

// ListMessages returns the conversation thread for a grievance the actor may
// see. Internal notes are stripped for policyholders and anonymous viewers.
func (s *GrievanceService) ListMessages(ctx context.Context, grievanceID uuid.UUID, actor *model.Identity) ([]*model.GrievanceMessage, error) {
	grievance, err := s.repo.FindByID(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	if !authz.ResolveScope(actor).Allows(grievance) {
		return nil, fmt.Errorf("%w: grievance outside actor scope", domain.ErrPermissionDenied)
	}

	includeInternal := actor != nil && actor.Role != model.RolePolicyholder
	return s.repo.FindMessages(ctx, grievanceID, includeInternal)
}

// AnalyticsReport aggregates the regulator dashboard numbers.
type AnalyticsReport struct {
	TotalGrievances    int64                           `json:"total_grievances"`
	PendingGrievances  int64                           `json:"pending_grievances"`
	ResolvedGrievances int64                           `json:"resolved_grievances"`
	MonthlyGrievances  int64                           `json:"monthly_grievances"`
	StatusCounts       map[model.GrievanceStatus]int64 `json:"status_counts"`
	CategoryStats      []repository.CategoryCount      `json:"category_stats"`
	CompanyStats       []repository.CompanyCount       `json:"company_stats"`
}

// Analytics computes regulator-wide aggregates. Restricted to admin roles.
func (s *GrievanceService) Analytics(ctx context.Context, actor *model.Identity) (*AnalyticsReport, error) {
	if actor == nil || !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: analytics requires a regulator role", domain.ErrPermissionDenied)
	}

	statusCounts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range statusCounts {
		total += n
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthly, err := s.repo.CountSubmittedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	categoryStats, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	companyStats, err := s.repo.TopCompanies(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &AnalyticsReport{
		TotalGrievances:    total,
		PendingGrievances:  statusCounts[model.StatusOpen],
		ResolvedGrievances: statusCounts[model.StatusResolved],
		MonthlyGrievances:  monthly,
		StatusCounts:       statusCounts,
		CategoryStats:      categoryStats,
		CompanyStats:       companyStats,
	}, nil
}

// notify sends a best-effort complainant email; failures only reach the log.
func (s *GrievanceService) notify(ctx context.Context, grievance *model.Grievance, templateName, subject string, data map[string]interface{}) {
	if s.notifier == nil || grievance.ComplainantEmail == "" {
		return
	}
	err := s.notifier.Send(email.Data{
		To:           grievance.ComplainantEmail,
		FromName:     "IDRA Grievance Management",
		Subject:      subject,
		TemplateName: templateName,
		TemplateData: data,
	})
	if err != nil {
		slog.WarnContext(ctx, "notification email failed",
			"error", err, "reference", grievance.Reference, "template", templateName)
	}
}
