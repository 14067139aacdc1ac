package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

type memoryEntry struct {
	snapshot  wizard.Snapshot
	expiresAt time.Time
}

// MemoryStore хранилище сессий мастера в памяти процесса
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

// NewMemoryStore создает хранилище; ttl <= 0 отключает истечение
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

// Save сохраняет снимок и продлевает срок жизни сессии
func (s *MemoryStore) Save(_ context.Context, id string, snapshot wizard.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{snapshot: cloneSnapshot(snapshot)}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[id] = entry
	return nil
}

// Get возвращает снимок по ID сессии
func (s *MemoryStore) Get(_ context.Context, id string) (wizard.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return wizard.Snapshot{}, ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		return wizard.Snapshot{}, ErrSessionNotFound
	}
	return cloneSnapshot(entry.snapshot), nil
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func cloneSnapshot(s wizard.Snapshot) wizard.Snapshot {
	c := s
	c.Draft.AdditionalServices = append([]string(nil), s.Draft.AdditionalServices...)
	if s.Booking != nil {
		b := *s.Booking
		c.Booking = &b
	}
	return c
}
