// Package ratelimit applies a per-caller sliding-window limit to the
// qualification endpoint. The window is in-process; a multi-instance
// deployment needs a shared store behind the same interface.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of one limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// MemoryStore tracks request timestamps per key in a sliding window. The
// sliding window avoids the burst-at-boundary behavior of fixed windows.
type MemoryStore struct {
	mu        sync.Mutex
	buckets   map[string][]time.Time
	limit     int
	window    time.Duration
	lastSweep time.Time
}

// NewMemoryStore builds a store allowing limit requests per window per key.
func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryStore{
		buckets:   make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// Allow records one request for key and reports whether it fits the window.
func (s *MemoryStore) Allow(key string) Result {
	now := time.Now()
	cutoff := now.Add(-s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Idle keys would otherwise accumulate for the process lifetime.
	if now.Sub(s.lastSweep) >= s.window {
		s.sweepLocked(cutoff)
		s.lastSweep = now
	}

	stamps := s.buckets[key]
	i := 0
	for ; i < len(stamps); i++ {
		if stamps[i].After(cutoff) {
			break
		}
	}
	stamps = stamps[i:]

	if len(stamps) >= s.limit {
		s.buckets[key] = stamps
		return Result{
			Allowed: false,
			Limit:   s.limit,
			ResetAt: stamps[0].Add(s.window),
		}
	}

	stamps = append(stamps, now)
	s.buckets[key] = stamps
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(stamps),
		ResetAt:   stamps[0].Add(s.window),
	}
}

// sweepLocked drops keys whose every timestamp has aged out of the window.
// Callers must hold s.mu.
func (s *MemoryStore) sweepLocked(cutoff time.Time) {
	for key, stamps := range s.buckets {
		i := 0
		for ; i < len(stamps); i++ {
			if stamps[i].After(cutoff) {
				break
			}
		}
		if i == len(stamps) {
			delete(s.buckets, key)
			continue
		}
		s.buckets[key] = stamps[i:]
	}
}
