package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idracore/gms/internal/authz"
	"github.com/idracore/gms/internal/domain"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"
	"github.com/idracore/gms/internal/service"
)

// fakeGrievanceRepo mimics the database guarantees the service relies on: a
// serialized per-year counter and a unique index on reference. Everything
// else is the minimum needed to satisfy the interface.
type fakeGrievanceRepo struct {
	mu       sync.Mutex
	counters map[int]int64
	byRef    map[string]*model.Grievance
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{
		counters: make(map[int]int64),
		byRef:    make(map[string]*model.Grievance),
	}
}

func (f *fakeGrievanceRepo) AllocateReference(ctx context.Context, year int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[year]++
	return model.FormatReference(year, f.counters[year]), nil
}

func (f *fakeGrievanceRepo) Create(ctx context.Context, grievance *model.Grievance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byRef[grievance.Reference]; exists {
		return domain.ErrDuplicateReference
	}
	f.byRef[grievance.Reference] = grievance
	return nil
}

func (f *fakeGrievanceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Grievance, error) {
	return nil, domain.ErrGrievanceNotFound
}

func (f *fakeGrievanceRepo) FindByReference(ctx context.Context, reference string) (*model.Grievance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.byRef[reference]; ok {
		return g, nil
	}
	return nil, domain.ErrGrievanceNotFound
}

func (f *fakeGrievanceRepo) ListByScope(ctx context.Context, scope authz.Scope, offset, limit int) ([]*model.Grievance, int64, error) {
	return nil, 0, nil
}

func (f *fakeGrievanceRepo) UpdateStatus(ctx context.Context, grievance *model.Grievance, expected model.GrievanceStatus) (bool, error) {
	return false, nil
}

func (f *fakeGrievanceRepo) CreateMessage(ctx context.Context, message *model.GrievanceMessage) error {
	return nil
}

func (f *fakeGrievanceRepo) FindMessages(ctx context.Context, grievanceID uuid.UUID, includeInternal bool) ([]*model.GrievanceMessage, error) {
	return nil, nil
}

func (f *fakeGrievanceRepo) CountByStatus(ctx context.Context) (map[model.GrievanceStatus]int64, error) {
	return nil, nil
}

func (f *fakeGrievanceRepo) CountSubmittedSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeGrievanceRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	return nil, nil
}

func (f *fakeGrievanceRepo) TopCompanies(ctx context.Context, limit int) ([]repository.CompanyCount, error) {
	return nil, nil
}

func TestGrievanceCreateConcurrentReferences(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := service.NewGrievanceService(repo, nil, nil, testSLAWindow)

	const workers = 50

	var wg sync.WaitGroup
	references := make(chan string, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grievance, err := svc.Create(context.Background(), service.CreateGrievanceInput{
				Title:            "Duplicate premium charge",
				Description:      "Charged twice in one billing cycle.",
				Category:         model.CategoryPremiumIssues,
				ComplainantName:  "Emma Begum",
				ComplainantEmail: "emma@example.com",
			}, nil, nil)
			if err != nil {
				errs <- err
				return
			}
			references <- grievance.Reference
		}()
	}

	wg.Wait()
	close(references)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool, workers)
	for ref := range references {
		assert.Regexp(t, `^GRV-\d{4}-\d{5}$`, ref)
		assert.False(t, seen[ref], "reference %s assigned twice", ref)
		seen[ref] = true
	}
	assert.Len(t, seen, workers)
}
