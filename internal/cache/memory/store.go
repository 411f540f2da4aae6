// Package memory implements the domain cache interfaces with in-process TTL
// maps. It is the default backend: the freshness windows here are 1-3
// seconds, so a per-replica cache is usually sufficient, and no external
// service is needed.
package memory

import (
	"sync"
	"time"
)

// entry is an immutable cache record. A refresh always creates a new entry;
// entries are never mutated in place.
type entry[T any] struct {
	value    T
	storedAt time.Time
	ttl      time.Duration
}

func (e entry[T]) expired(now time.Time) bool {
	return now.Sub(e.storedAt) >= e.ttl
}

// Store is a generic TTL key-value store. Expired entries are removed lazily
// on access and by a background sweep so memory stays bounded even for keys
// that are never read again.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]

	done      chan struct{}
	closeOnce sync.Once
}

// NewStore creates a Store and starts its sweep goroutine. sweepInterval
// values <= 0 default to one minute. Close must be called to stop the sweep.
func NewStore[T any](sweepInterval time.Duration) *Store[T] {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	s := &Store[T]{
		entries: make(map[string]entry[T]),
		done:    make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

// Get returns the value for key if present and fresh. A logically expired
// entry is deleted on the spot and reported as a miss.
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T
	now := time.Now()

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if e.expired(now) {
		s.mu.Lock()
		// Re-check: a fresher entry may have been stored meanwhile.
		if cur, ok := s.entries[key]; ok && cur.expired(time.Now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the given ttl, fully replacing any
// existing entry.
func (s *Store[T]) Set(key string, value T, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = entry[T]{value: value, storedAt: time.Now(), ttl: ttl}
	s.mu.Unlock()
}

// Len returns the number of entries, including any not yet swept.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the sweep goroutine. Safe to call more than once.
func (s *Store[T]) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store[T]) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, e := range s.entries {
				if e.expired(now) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
