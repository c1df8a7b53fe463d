package packages

import (
	"github.com/m04kA/SMC-ConciergeBooking/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics
// Поддерживает *sql.DB, *sql.Tx и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
