package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/SeanJibowu555/dealer-qualifier/internal/ai"
	"github.com/SeanJibowu555/dealer-qualifier/internal/audit"
	audithandler "github.com/SeanJibowu555/dealer-qualifier/internal/audit/handler"
	jwttoken "github.com/SeanJibowu555/dealer-qualifier/internal/jwt_token"
	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/config"
	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/httpserver"
	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/logger"
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	qualifyhandler "github.com/SeanJibowu555/dealer-qualifier/internal/qualify/handler"
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify/metrics"
	"github.com/SeanJibowu555/dealer-qualifier/internal/ratelimit"
	"github.com/SeanJibowu555/dealer-qualifier/internal/rating/places"
	"github.com/SeanJibowu555/dealer-qualifier/internal/register/fca"
	"github.com/SeanJibowu555/dealer-qualifier/internal/registry/companieshouse"
	httptransport "github.com/SeanJibowu555/dealer-qualifier/internal/transport/http"
	"github.com/SeanJibowu555/dealer-qualifier/internal/website"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	registry := companieshouse.New(companieshouse.Config{
		BaseURL: cfg.CompaniesHouseURL,
		APIKey:  cfg.CompaniesHouseAPIKey,
		Timeout: cfg.UpstreamTimeout,
	})
	register := fca.New(fca.Config{
		BaseURL: cfg.FCARegisterURL,
		Timeout: cfg.UpstreamTimeout,
	})

	// The AI capability is optional; without it the authorisation check runs
	// phrase-only and no inventory estimate is produced.
	var classifier qualify.SemanticClassifier
	var opts []qualify.Option
	aiClient, err := ai.New(ai.Config{APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel})
	switch {
	case err == nil:
		classifier = aiClient
		opts = append(opts, qualify.WithInventoryEstimator(
			website.New(aiClient, cfg.UpstreamTimeout, log)))
	case errors.Is(err, ai.ErrNoAPIKey):
		log.Warn("openai key not configured; semantic classification and inventory estimates disabled")
	default:
		log.Error("ai client init failed", "error", err)
		os.Exit(1)
	}

	if cfg.PlacesAPIKey != "" {
		opts = append(opts, qualify.WithRatingSource(places.New(places.Config{
			BaseURL: cfg.PlacesURL,
			APIKey:  cfg.PlacesAPIKey,
			Timeout: cfg.UpstreamTimeout,
		})))
	} else {
		log.Warn("places key not configured; rating lookups disabled")
	}

	checker := qualify.NewAuthorisationChecker(register, classifier, log)
	opts = append(opts, qualify.WithLogger(log), qualify.WithMetrics(metrics.New()))
	service, err := qualify.New(registry, checker, opts...)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	auditStore := audit.NewInMemoryStore(cfg.AuditCapacity)
	auditInbox := make(chan audit.Event, 128)
	recorder := audit.NewRecorder(auditInbox, auditStore, log)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go func() {
		if err := audit.NewWorker(auditStore, auditInbox).Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "dealer-qualifier", "qualify-api")
	handler := qualifyhandler.New(service, log, qualifyhandler.WithAuditor(recorder))
	router := httptransport.NewRouter(httptransport.Deps{
		Qualify:      handler,
		AuditHandler: audithandler.New(recorder, log),
		Limiter:      ratelimit.NewMemoryStore(cfg.RateLimitRequests, cfg.RateLimitWindow),
		Validator:    jwttoken.NewJWTServiceAdapter(jwtService),
		Logger:       log,
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting dealer-qualifier", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
