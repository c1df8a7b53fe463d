package submit_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/internal/assembler"
	"github.com/m04kA/SMC-ConciergeBooking/internal/catalog"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/pricing"
	"github.com/m04kA/SMC-ConciergeBooking/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStore struct {
	records map[string]*domain.ReservationRecord
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*domain.ReservationRecord{}}
}

func (s *fakeStore) Put(_ context.Context, sessionID string, record *domain.ReservationRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records[sessionID] = record
	return nil
}

type fakeNotifier struct {
	bodies []string
	err    error
}

func (n *fakeNotifier) Notify(_ context.Context, body string) (string, error) {
	n.bodies = append(n.bodies, body)
	if n.err != nil {
		return "", n.err
	}
	return "SM123", nil
}

type fakeMetrics struct {
	reservations       map[string]float64
	notificationErrors int
}

func (m *fakeMetrics) ObserveReservation(serviceType string, total float64) {
	if m.reservations == nil {
		m.reservations = map[string]float64{}
	}
	m.reservations[serviceType] += total
}

func (m *fakeMetrics) ObserveNotificationError(string) {
	m.notificationErrors++
}

var testNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	store    *fakeStore
	notifier *fakeNotifier
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	catalogs := catalog.Default()
	f := &fixture{
		store:    newFakeStore(),
		notifier: &fakeNotifier{},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(
		validation.NewValidator(catalogs),
		pricing.NewCalculator(catalogs, time.UTC),
		assembler.NewAssembler(catalogs),
		f.store,
		f.notifier,
		f.metrics,
		fixedTime{now: testNow},
		nopLogger{},
	)
	return f
}

func bikeRentalForm() *domain.BikeRentalForm {
	return &domain.BikeRentalForm{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-17",
		Adults:    2,
		Children:  1,
		Bikes:     []domain.Selection{{ID: "city", Quantity: 3}},
		Location:  domain.LocationHotelPickup,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: bikeRentalForm()})
	require.NoError(t, err)

	assert.Equal(t, domain.ConfirmationPath, resp.ConfirmationPath)
	assert.Equal(t, domain.ServiceBikeRental, resp.ServiceType)
	assert.Equal(t, 180.0, resp.Total)
	assert.Equal(t, domain.Currency, resp.Currency)
	assert.False(t, resp.SameDay)
	assert.Equal(t, "2025-06-15T09:00:00Z", resp.StartAt)

	record, ok := f.store.records["session-1"]
	require.True(t, ok)
	assert.Equal(t, resp.ReservationID, record.ID)
	assert.Equal(t, 3, record.Party.Total)

	assert.Equal(t, 180.0, f.metrics.reservations["bike_rental"])
	require.Len(t, f.notifier.bodies, 1)
	assert.Contains(t, f.notifier.bodies[0], "New Bike Rental booking")
	assert.Contains(t, f.notifier.bodies[0], "3 guests, total $180.00")
}

func TestExecute_ValidationError(t *testing.T) {
	f := newFixture()

	form := bikeRentalForm()
	form.Bikes = []domain.Selection{{ID: "city", Quantity: 2}}

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: form})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Fields.Has("bikes"))

	assert.Empty(t, f.store.records, "store must not be written on failure")
	assert.Empty(t, f.notifier.bodies)
}

func TestExecute_SameDayRequiresConfirmation(t *testing.T) {
	f := newFixture()

	form := bikeRentalForm()
	form.StartDate = "2025-06-10"
	form.PickupTime = "17:00"

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: form})
	assert.True(t, errors.Is(err, ErrSameDayConfirmationRequired))
	assert.Empty(t, f.store.records)

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", ConfirmSameDay: true, Form: form})
	require.NoError(t, err)
	assert.True(t, resp.SameDay)
	assert.Contains(t, f.notifier.bodies[0], "(SAME DAY)")
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("twilio down")

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: bikeRentalForm()})
	require.NoError(t, err)

	assert.Len(t, f.store.records, 1)
	assert.Equal(t, 1, f.metrics.notificationErrors)
}

func TestExecute_WithoutNotifier(t *testing.T) {
	f := newFixture()
	f.uc.notifier = nil

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: bikeRentalForm()})
	require.NoError(t, err)
	assert.Len(t, f.store.records, 1)
}

func TestExecute_StoreFailure(t *testing.T) {
	f := newFixture()
	f.store.err = errors.New("redis unavailable")

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1", Form: bikeRentalForm()})
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Empty(t, f.notifier.bodies)
	assert.Empty(t, f.metrics.reservations)
}

func TestExecute_InputErrors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "session-1"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = f.uc.Execute(context.Background(), &Request{Form: bikeRentalForm()})
	assert.True(t, errors.Is(err, ErrMissingSession))
}
