package delete_package

import "context"

type PackageService interface {
	Delete(ctx context.Context, ownerID, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
