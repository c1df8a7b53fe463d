package get_catalog

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

type CatalogProvider interface {
	For(st domain.ServiceType) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
