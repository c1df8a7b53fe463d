package packages

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/internal/catalog"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	packagesRepo "github.com/m04kA/SMC-ConciergeBooking/internal/infra/storage/packages"
	"github.com/m04kA/SMC-ConciergeBooking/internal/pricing"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
	"github.com/m04kA/SMC-ConciergeBooking/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeRepository повторяет семантику PostgreSQL репозитория в памяти
type fakeRepository struct {
	pkgs       map[string]*domain.SavedPackage
	now        time.Time
	err        error
	purgedFrom time.Time
}

func newFakeRepository(now time.Time) *fakeRepository {
	return &fakeRepository{pkgs: map[string]*domain.SavedPackage{}, now: now}
}

func (r *fakeRepository) Save(_ context.Context, pkg *domain.SavedPackage) (*domain.SavedPackage, error) {
	if r.err != nil {
		return nil, r.err
	}
	saved := *pkg
	if existing, ok := r.pkgs[pkg.ID]; ok {
		if existing.OwnerID != pkg.OwnerID {
			return nil, packagesRepo.ErrPackageNotFound
		}
		saved.CreatedAt = existing.CreatedAt
	} else {
		saved.CreatedAt = r.now
	}
	saved.UpdatedAt = r.now
	r.pkgs[pkg.ID] = &saved
	return &saved, nil
}

func (r *fakeRepository) List(_ context.Context, ownerID string) ([]*domain.SavedPackage, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*domain.SavedPackage
	for _, pkg := range r.pkgs {
		if pkg.OwnerID == ownerID {
			result = append(result, pkg)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeRepository) Delete(_ context.Context, ownerID, id string) error {
	pkg, ok := r.pkgs[id]
	if !ok || pkg.OwnerID != ownerID {
		return packagesRepo.ErrPackageNotFound
	}
	delete(r.pkgs, id)
	return nil
}

func (r *fakeRepository) DeleteOlderThan(_ context.Context, before time.Time) (int64, error) {
	r.purgedFrom = before
	var removed int64
	for id, pkg := range r.pkgs {
		if pkg.UpdatedAt.Before(before) {
			delete(r.pkgs, id)
			removed++
		}
	}
	return removed, nil
}

var testNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func newTestService() (*Service, *fakeRepository) {
	catalogs := catalog.Default()
	repo := newFakeRepository(testNow)
	svc := NewService(
		repo,
		validation.NewValidator(catalogs),
		pricing.NewCalculator(catalogs, time.UTC),
		catalogs.CustomPackage.Items,
		fixedTime{now: testNow},
		nopLogger{},
	)
	return svc, repo
}

func honeymoonRequest() *models.SavePackageRequest {
	return &models.SavePackageRequest{
		OwnerID: "session-1",
		Name:    "Honeymoon",
		Guests:  2,
		Items: []domain.Selection{
			{ID: "spa_massage", Quantity: 1},
			{ID: "private_chef", Quantity: 1},
		},
	}
}

func TestService_Save(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Save(context.Background(), honeymoonRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	// 120 × 2 гостя + 450
	assert.Equal(t, 690.0, resp.Total)
	assert.Equal(t, domain.Currency, resp.Currency)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Spa Massage", resp.Items[0].Name)
	assert.Equal(t, "wellness", resp.Items[0].Category)
	assert.Equal(t, "dining", resp.Items[1].Category)

	assert.Len(t, repo.pkgs, 1)
}

func TestService_Save_UpdateOwnPackage(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Save(context.Background(), honeymoonRequest())
	require.NoError(t, err)

	update := honeymoonRequest()
	update.ID = created.ID
	update.Name = "Honeymoon v2"
	update.Items = []domain.Selection{{ID: "private_chef", Quantity: 1}}

	updated, err := svc.Save(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 450.0, updated.Total)
	assert.Len(t, repo.pkgs, 1)

	foreign := honeymoonRequest()
	foreign.ID = created.ID
	foreign.OwnerID = "session-2"
	_, err = svc.Save(context.Background(), foreign)
	assert.True(t, errors.Is(err, ErrPackageNotFound))
}

func TestService_Save_Validation(t *testing.T) {
	svc, repo := newTestService()

	req := honeymoonRequest()
	req.Name = ""
	req.Items = []domain.Selection{{ID: "moon_landing", Quantity: 1}}

	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Fields.Has("name"))
	assert.True(t, verr.Fields.Has("items"))
	assert.Empty(t, repo.pkgs)

	req = honeymoonRequest()
	req.ID = "not-a-uuid"
	_, err = svc.Save(context.Background(), req)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	req = honeymoonRequest()
	req.OwnerID = ""
	_, err = svc.Save(context.Background(), req)
	assert.True(t, errors.Is(err, ErrMissingOwner))
}

func TestService_Save_MalformedDates(t *testing.T) {
	svc, repo := newTestService()

	req := honeymoonRequest()
	req.StartDate = "not-a-date"
	req.EndDate = "31/12/2025"

	_, err := svc.Save(context.Background(), req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Fields.Has("startDate"))
	assert.True(t, verr.Fields.Has("endDate"))
	assert.Empty(t, repo.pkgs, "malformed dates never reach the repository")
}

func TestService_ListAndDelete(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Save(context.Background(), honeymoonRequest())
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Packages[0].ID)

	other, err := svc.List(context.Background(), "session-2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Total)
	assert.NotNil(t, other.Packages)

	assert.True(t, errors.Is(svc.Delete(context.Background(), "session-2", created.ID), ErrPackageNotFound))
	require.NoError(t, svc.Delete(context.Background(), "session-1", created.ID))
	assert.True(t, errors.Is(svc.Delete(context.Background(), "session-1", created.ID), ErrPackageNotFound))
	assert.True(t, errors.Is(svc.Delete(context.Background(), "session-1", "garbage"), ErrPackageNotFound))
}

func TestService_RepositoryErrors(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection reset")

	_, err := svc.Save(context.Background(), honeymoonRequest())
	assert.True(t, errors.Is(err, ErrInternal))

	_, err = svc.List(context.Background(), "session-1")
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestService_PurgeOlderThan(t *testing.T) {
	svc, repo := newTestService()

	repo.pkgs["old"] = &domain.SavedPackage{ID: "old", UpdatedAt: testNow.AddDate(0, 0, -40)}
	repo.pkgs["fresh"] = &domain.SavedPackage{ID: "fresh", UpdatedAt: testNow.AddDate(0, 0, -5)}

	removed, err := svc.PurgeOlderThan(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, testNow.AddDate(0, 0, -30), repo.purgedFrom)
	_, ok := repo.pkgs["fresh"]
	assert.True(t, ok)
}
