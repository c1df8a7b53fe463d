package packages

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// PackageRepository интерфейс репозитория сохраненных пакетов
type PackageRepository interface {
	Save(ctx context.Context, pkg *domain.SavedPackage) (*domain.SavedPackage, error)
	List(ctx context.Context, ownerID string) ([]*domain.SavedPackage, error)
	Delete(ctx context.Context, ownerID, id string) error
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// DraftValidator интерфейс проверки черновика пакета
type DraftValidator interface {
	ValidatePackageDraft(f *domain.CustomPackageForm) domain.FieldErrors
}

// Calculator интерфейс расчета стоимости
type Calculator interface {
	Quote(form domain.Form) (*domain.PriceQuote, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
