package list_packages

import (
	"context"

	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
)

type PackageService interface {
	List(ctx context.Context, ownerID string) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
