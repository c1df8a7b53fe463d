package reservation

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore хранилище записей в памяти процесса (когда Redis не настроен)
// Просроченные записи не выдаются; физически удаляются через Purge
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put сохраняет запись сессии; хранится сериализованная копия
func (s *MemoryStore) Put(_ context.Context, sessionID string, record *domain.ReservationRecord) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	data, err := encode(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Take забирает запись сессии один раз
func (s *MemoryStore) Take(_ context.Context, sessionID string) (*domain.ReservationRecord, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}

	s.mu.Lock()
	entry, ok := s.entries[sessionID]
	delete(s.entries, sessionID)
	s.mu.Unlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, ErrReservationNotFound
	}

	return decode(entry.data)
}

// Purge удаляет просроченные записи; возвращает количество удаленных
func (s *MemoryStore) Purge(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len количество хранимых записей (включая просроченные)
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
