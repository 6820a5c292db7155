package service_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/idracore/gms/internal/mocks"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/service"
)

func TestAuditRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("captures actor and request context", func(t *testing.T) {
		repo := mocks.NewMockAuditRepositoryIface(ctrl)
		svc := service.NewAuditService(repo)

		actorID := uuid.New()
		req := httptest.NewRequest("POST", "/api/grievances", nil)
		req.Header.Set("User-Agent", "integration-test/1.0")

		var saved *model.AuditEntry
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *model.AuditEntry) error {
				saved = entry
				return nil
			})

		svc.Record(context.Background(), &actorID, model.ActionCreate, "grievance", "abc", map[string]interface{}{
			"reference": "GRV-2025-00001",
		}, req)

		require.NotNil(t, saved)
		assert.Equal(t, &actorID, saved.ActorID)
		assert.Equal(t, model.ActionCreate, saved.Action)
		assert.Equal(t, "grievance", saved.TargetType)
		assert.Equal(t, "integration-test/1.0", saved.UserAgent)
		assert.WithinDuration(t, time.Now().UTC(), saved.Timestamp, 5*time.Second)
	})

	t.Run("repository failure never reaches the caller", func(t *testing.T) {
		repo := mocks.NewMockAuditRepositoryIface(ctrl)
		svc := service.NewAuditService(repo)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("audit store down"))

		assert.NotPanics(t, func() {
			svc.Record(context.Background(), nil, model.ActionView, "grievance", "abc", nil, nil)
		})
	})
}
