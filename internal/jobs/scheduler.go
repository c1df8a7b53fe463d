package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout ограничение на один запуск задачи
const DefaultTimeout = time.Minute

// Task периодическая задача; возвращает число обработанных записей
type Task func(ctx context.Context) (int64, error)

// Scheduler запускает обслуживающие задачи по cron расписанию
type Scheduler struct {
	cron    *cron.Cron
	names   map[string]cron.EntryID
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик; запуски одной задачи не перекрываются
func NewScheduler(timeout time.Duration, logger Logger) *Scheduler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		names:   make(map[string]cron.EntryID),
		timeout: timeout,
		logger:  logger,
	}
}

// Register добавляет задачу с cron расписанием (стандартный формат или @every)
func (s *Scheduler) Register(name, schedule string, task Task) error {
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateJob, name)
	}

	id, err := s.cron.AddFunc(schedule, func() { s.run(name, task) })
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, name, schedule, err)
	}

	s.names[name] = id
	s.logger.Info("Scheduler: registered job %s (%s)", name, schedule)
	return nil
}

// Jobs имена зарегистрированных задач
func (s *Scheduler) Jobs() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	return names
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: started with %d jobs", len(s.names))
}

// Stop останавливает планировщик и ждет выполняющиеся задачи, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler: stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop timed out, running jobs abandoned")
	}
}

func (s *Scheduler) run(name string, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	n, err := task(ctx)
	if err != nil {
		s.logger.Error("Scheduler: job %s failed after %s: %v", name, time.Since(started), err)
		return
	}
	if n > 0 {
		s.logger.Info("Scheduler: job %s removed %d entries in %s", name, n, time.Since(started))
	}
}
