package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Suitable for tests and a
// single instance deployment.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, sid, key string, dst any) (bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[sid][key]
	if ok && !s.now().Before(entry.expiresAt) {
		delete(s.entries[sid], key)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, decode(entry.payload, dst)
}

func (s *MemoryStore) Set(_ context.Context, sid, key string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[sid] == nil {
		s.entries[sid] = make(map[string]memoryEntry)
	}
	s.entries[sid][key] = memoryEntry{payload: payload, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// PurgeExpired drops every entry past its expiry, along with sessions left
// empty, and returns how many entries went.
func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var purged int64
	for sid, keys := range s.entries {
		for key, entry := range keys {
			if !now.Before(entry.expiresAt) {
				delete(keys, key)
				purged++
			}
		}
		if len(keys) == 0 {
			delete(s.entries, sid)
		}
	}
	return purged, nil
}
