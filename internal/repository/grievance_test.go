package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/idracore/gms/internal/authz"
	"github.com/idracore/gms/internal/model"
	"github.com/idracore/gms/internal/repository"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAllocateReference(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewGrievanceRepository(db)

	t.Run("first allocation of a year starts at one", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO grievance_sequences \(year, counter\) VALUES \(\$1, 1\)`).
			WithArgs(2025).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(int64(1)))

		reference, err := repo.AllocateReference(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, "GRV-2025-00001", reference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counter value is zero padded to five digits", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO grievance_sequences`).
			WithArgs(2025).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(int64(12345)))

		reference, err := repo.AllocateReference(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, "GRV-2025-12345", reference)
	})

	t.Run("counter past five digits widens the reference", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO grievance_sequences`).
			WithArgs(2025).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(int64(123456)))

		reference, err := repo.AllocateReference(context.Background(), 2025)

		require.NoError(t, err)
		assert.Equal(t, "GRV-2025-123456", reference)
	})
}

func TestUpdateStatusCompareAndSwap(t *testing.T) {
	grievance := &model.Grievance{
		ID:       uuid.New(),
		Status:   model.StatusResolved,
		Priority: model.PriorityHigh,
	}

	t.Run("swap succeeds when the row is in the expected status", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewGrievanceRepository(db)

		mock.ExpectExec(`UPDATE "grievances" SET .* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateStatus(context.Background(), grievance, model.StatusOpen)

		require.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("swap reports false when the row has moved on", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewGrievanceRepository(db)

		mock.ExpectExec(`UPDATE "grievances" SET .* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.UpdateStatus(context.Background(), grievance, model.StatusOpen)

		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestListByScopePredicates(t *testing.T) {
	countRows := func(n int64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}
	emptyGrievances := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "reference", "status"})
	}

	t.Run("public-only scope filters on is_public", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewGrievanceRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "grievances" WHERE is_public = \$1`).
			WithArgs(true).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT \* FROM "grievances" WHERE is_public = \$1 ORDER BY submitted_at DESC`).
			WillReturnRows(emptyGrievances())

		_, count, err := repo.ListByScope(context.Background(), authz.Scope{Kind: authz.ScopePublicOnly}, 0, 20)

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owned scope filters on submitter", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewGrievanceRepository(db)
		identityID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "grievances" WHERE submitted_by_id = \$1`).
			WithArgs(identityID).
			WillReturnRows(countRows(2))
		mock.ExpectQuery(`SELECT \* FROM "grievances" WHERE submitted_by_id = \$1 ORDER BY submitted_at DESC`).
			WillReturnRows(emptyGrievances())

		_, count, err := repo.ListByScope(context.Background(), authz.Scope{
			Kind:       authz.ScopeOwnedBy,
			IdentityID: identityID,
		}, 0, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("all scope applies no predicate", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewGrievanceRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "grievances"`).
			WillReturnRows(countRows(7))
		mock.ExpectQuery(`SELECT \* FROM "grievances" ORDER BY submitted_at DESC`).
			WillReturnRows(emptyGrievances())

		_, count, err := repo.ListByScope(context.Background(), authz.Scope{Kind: authz.ScopeAll}, 0, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}
