package packages

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Save(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	pkg := &domain.SavedPackage{
		ID:        "0f8c3c2e-5d1a-4c1e-8a4b-1b2c3d4e5f60",
		OwnerID:   "session-1",
		Name:      "Honeymoon",
		StartDate: "2025-06-15",
		Guests:    2,
		Items:     []domain.Selection{{ID: "yoga_session", Quantity: 1}},
		Total:     80,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_packages (id,owner_id,name,start_date,end_date,guests,items,total)")).
		WithArgs(pkg.ID, "session-1", "Honeymoon", "2025-06-15", nil, 2, []byte(`[{"id":"yoga_session","quantity":1}]`), 80.0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	saved, err := repo.Save(context.Background(), pkg)
	require.NoError(t, err)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, created, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_ForeignOwner(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_packages")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Save(context.Background(), &domain.SavedPackage{ID: "pkg-1", OwnerID: "intruder", Name: "x", Guests: 1})
	assert.True(t, errors.Is(err, ErrPackageNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_DatabaseError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO saved_packages")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Save(context.Background(), &domain.SavedPackage{ID: "pkg-1", OwnerID: "s", Name: "x", Guests: 1})
	assert.True(t, errors.Is(err, ErrExecQuery))
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepository(t)
	created := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(selectColumns).
		AddRow("pkg-2", "session-1", "Adventure", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
			int64(4), []byte(`[{"id":"atv_tour","quantity":1}]`), 380.0, created, created).
		AddRow("pkg-1", "session-1", "Honeymoon", nil, nil,
			int64(2), []byte(`[{"id":"spa_massage","quantity":2}]`), 480.0, created, created)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, name, start_date, end_date, guests, items, total, created_at, updated_at FROM saved_packages WHERE owner_id = $1 ORDER BY created_at DESC")).
		WithArgs("session-1").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "pkg-2", list[0].ID)
	assert.Equal(t, "2025-07-01", list[0].StartDate)
	assert.Equal(t, "2025-07-03", list[0].EndDate)
	assert.Equal(t, []domain.Selection{{ID: "atv_tour", Quantity: 1}}, list[0].Items)
	assert.Equal(t, 380.0, list[0].Total)

	assert.Equal(t, "", list[1].StartDate)
	assert.Equal(t, 2, list[1].Guests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(selectColumns))

	list, err := repo.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRepository_Delete(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM saved_packages WHERE id = $1 AND owner_id = $2")

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(query).WithArgs("pkg-1", "session-1").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "session-1", "pkg-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(query).WithArgs("pkg-1", "session-2").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "session-2", "pkg-1")
		assert.True(t, errors.Is(err, ErrPackageNotFound))
	})
}

func TestRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := newMockRepository(t)
	before := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_packages WHERE updated_at < $1")).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteOlderThan(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
