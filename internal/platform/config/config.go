package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. Collaborator credentials are
// threaded into the relevant constructors from here; nothing else in the
// codebase reads the environment.
type Server struct {
	Addr          string
	JWTSigningKey string

	CompaniesHouseAPIKey string
	CompaniesHouseURL    string

	FCARegisterURL string

	PlacesAPIKey string
	PlacesURL    string

	OpenAIAPIKey string
	OpenAIModel  string

	UpstreamTimeout time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
	AuditCapacity     int
}

// Defaults for external endpoints; overridable for tests and stubs.
const (
	defaultCompaniesHouseURL = "https://api.company-information.service.gov.uk"
	defaultFCARegisterURL    = "https://register.fca.org.uk"
	defaultPlacesURL         = "https://maps.googleapis.com/maps/api/place"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:                 envOr("DEALERQ_ADDR", ":8080"),
		JWTSigningKey:        envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		CompaniesHouseAPIKey: os.Getenv("COMPANIES_HOUSE_API_KEY"),
		CompaniesHouseURL:    envOr("COMPANIES_HOUSE_URL", defaultCompaniesHouseURL),
		FCARegisterURL:       envOr("FCA_REGISTER_URL", defaultFCARegisterURL),
		PlacesAPIKey:         os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesURL:            envOr("GOOGLE_PLACES_URL", defaultPlacesURL),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          envOr("OPENAI_MODEL", "gpt-4o-mini"),
		UpstreamTimeout:      30 * time.Second,
		RateLimitRequests:    envIntOr("DEALERQ_RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:      envDurationOr("DEALERQ_RATE_LIMIT_WINDOW", time.Minute),
		AuditCapacity:        envIntOr("DEALERQ_AUDIT_CAPACITY", 1000),
	}
	if d := envDurationOr("DEALERQ_UPSTREAM_TIMEOUT", 0); d != 0 {
		cfg.UpstreamTimeout = d
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	return fallback
}
