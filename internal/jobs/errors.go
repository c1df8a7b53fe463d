package jobs

import "errors"

var (
	// ErrInvalidSchedule возвращается для некорректного cron выражения
	ErrInvalidSchedule = errors.New("jobs: invalid schedule")

	// ErrDuplicateJob возвращается при повторной регистрации задачи
	ErrDuplicateJob = errors.New("jobs: job already registered")
)
