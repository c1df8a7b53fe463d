package jobs

import (
	"context"
	"time"
)

// ReservationPurger удаляет просроченные записи броней
type ReservationPurger interface {
	Purge(ctx context.Context) (int, error)
}

// VisitorCleaner забывает неактивных клиентов ограничителя запросов
type VisitorCleaner interface {
	Cleanup(maxIdle time.Duration) int
}

// PackagePurger удаляет сохраненные пакеты старше retention
type PackagePurger interface {
	PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
