package ratelimit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RateLimitSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestRateLimitSuite(t *testing.T) {
	suite.Run(t, new(RateLimitSuite))
}

func (s *RateLimitSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *RateLimitSuite) TestMemoryStore() {
	s.Run("allows up to the limit then rejects", func() {
		store := NewMemoryStore(3, time.Minute)
		for i := 0; i < 3; i++ {
			result := store.Allow("client-a")
			s.True(result.Allowed)
			s.Equal(3-(i+1), result.Remaining)
		}
		result := store.Allow("client-a")
		s.False(result.Allowed)
	})

	s.Run("keys are independent", func() {
		store := NewMemoryStore(1, time.Minute)
		s.True(store.Allow("client-a").Allowed)
		s.True(store.Allow("client-b").Allowed)
		s.False(store.Allow("client-a").Allowed)
	})

	s.Run("window slides", func() {
		store := NewMemoryStore(1, 20*time.Millisecond)
		s.True(store.Allow("client-a").Allowed)
		s.False(store.Allow("client-a").Allowed)

		time.Sleep(30 * time.Millisecond)
		s.True(store.Allow("client-a").Allowed)
	})

	s.Run("idle keys are evicted", func() {
		store := NewMemoryStore(5, 20*time.Millisecond)
		s.True(store.Allow("client-a").Allowed)
		s.True(store.Allow("client-b").Allowed)

		time.Sleep(30 * time.Millisecond)
		s.True(store.Allow("client-c").Allowed)

		store.mu.Lock()
		defer store.mu.Unlock()
		s.Len(store.buckets, 1)
		s.Contains(store.buckets, "client-c")
	})
}

func (s *RateLimitSuite) TestMiddleware() {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.Run("passes within the limit and sets headers", func() {
		store := NewMemoryStore(2, time.Minute)
		handler := Middleware(store, s.logger)(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/qualify", nil))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("2", rec.Header().Get("X-RateLimit-Limit"))
		s.Equal("1", rec.Header().Get("X-RateLimit-Remaining"))
		s.NotEmpty(rec.Header().Get("X-RateLimit-Reset"))
	})

	s.Run("rejects over the limit with 429", func() {
		store := NewMemoryStore(1, time.Minute)
		handler := Middleware(store, s.logger)(okHandler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/qualify", nil))
		s.Equal(http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/qualify", nil))
		s.Equal(http.StatusTooManyRequests, rec.Code)
		s.Contains(rec.Body.String(), "rate_limit_exceeded")

		// Retry-After must be delay-seconds within the window, never an
		// absolute timestamp.
		retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		s.Require().NoError(err)
		s.GreaterOrEqual(retryAfter, 0)
		s.LessOrEqual(retryAfter, 60)
	})
}
