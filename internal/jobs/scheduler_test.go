package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/pkg/logger"
)

type fakePurger struct {
	removed int
	err     error
	calls   int
}

func (f *fakePurger) Purge(_ context.Context) (int, error) {
	f.calls++
	return f.removed, f.err
}

type fakeCleaner struct {
	maxIdle time.Duration
}

func (f *fakeCleaner) Cleanup(maxIdle time.Duration) int {
	f.maxIdle = maxIdle
	return 4
}

type fakePackagePurger struct {
	retention time.Duration
}

func (f *fakePackagePurger) PurgeOlderThan(_ context.Context, retention time.Duration) (int64, error) {
	f.retention = retention
	return 2, nil
}

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(0, logger.NewNop())
	purger := &fakePurger{}

	require.NoError(t, s.Register("reservations", "@every 5m", PurgeReservations(purger)))
	assert.Equal(t, []string{"reservations"}, s.Jobs())

	err := s.Register("reservations", "@every 1m", PurgeReservations(purger))
	assert.True(t, errors.Is(err, ErrDuplicateJob))

	err = s.Register("broken", "every five minutes", PurgeReservations(purger))
	assert.True(t, errors.Is(err, ErrInvalidSchedule))
	assert.Len(t, s.Jobs(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(time.Second, logger.NewNop())
	require.NoError(t, s.Register("reservations", "@hourly", PurgeReservations(&fakePurger{})))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestScheduler_Run(t *testing.T) {
	s := NewScheduler(time.Second, logger.NewNop())

	purger := &fakePurger{removed: 3}
	s.run("reservations", PurgeReservations(purger))
	assert.Equal(t, 1, purger.calls)

	failing := &fakePurger{err: errors.New("redis down")}
	s.run("reservations", PurgeReservations(failing))
	assert.Equal(t, 1, failing.calls)
}

func TestTasks(t *testing.T) {
	ctx := context.Background()

	n, err := PurgeReservations(&fakePurger{removed: 5})(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	cleaner := &fakeCleaner{}
	n, err = CleanupVisitors(cleaner, 10*time.Minute)(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, 10*time.Minute, cleaner.maxIdle)

	packages := &fakePackagePurger{}
	n, err = PurgePackages(packages, 90*24*time.Hour)(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 90*24*time.Hour, packages.retention)
}
