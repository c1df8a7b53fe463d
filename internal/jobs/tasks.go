package jobs

import (
	"context"
	"time"
)

// PurgeReservations задача очистки просроченных записей броней
func PurgeReservations(p ReservationPurger) Task {
	return func(ctx context.Context) (int64, error) {
		n, err := p.Purge(ctx)
		return int64(n), err
	}
}

// CleanupVisitors задача очистки клиентов ограничителя, неактивных дольше maxIdle
func CleanupVisitors(c VisitorCleaner, maxIdle time.Duration) Task {
	return func(_ context.Context) (int64, error) {
		return int64(c.Cleanup(maxIdle)), nil
	}
}

// PurgePackages задача удаления старых сохраненных пакетов
func PurgePackages(p PackagePurger, retention time.Duration) Task {
	return func(ctx context.Context) (int64, error) {
		return p.PurgeOlderThan(ctx, retention)
	}
}
