package save_package

import (
	"context"

	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
)

type PackageService interface {
	Save(ctx context.Context, req *models.SavePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
