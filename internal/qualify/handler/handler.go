package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/httputil"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/middleware/metadata"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/requestcontext"
)

// Service defines the interface for qualification operations.
type Service interface {
	Qualify(ctx context.Context, query qualify.DealerQuery) (*qualify.Result, error)
}

// Auditor records completed qualifications out of band. Recording must never
// fail the request.
type Auditor interface {
	RecordQualification(ctx context.Context, query qualify.DealerQuery, result *qualify.Result)
}

// Handler wires the qualification endpoint to the qualification service.
type Handler struct {
	service Service
	auditor Auditor // nil when auditing is not wired
	logger  *slog.Logger
}

// Option configures optional handler dependencies.
type Option func(*Handler)

// WithAuditor wires the qualification audit trail.
func WithAuditor(a Auditor) Option {
	return func(h *Handler) { h.auditor = a }
}

// New constructs a qualification handler with its dependencies.
func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service: service,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts qualification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/qualify", h.HandleQualify)
}

// HandleQualify handles POST /qualify requests.
func (h *Handler) HandleQualify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[QualifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Qualify(ctx, req.DealerQuery())
	if err != nil {
		h.logger.ErrorContext(ctx, "qualification failed",
			"request_id", requestID,
			"dealer", req.DealerName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if h.auditor != nil {
		h.auditor.RecordQualification(ctx, req.DealerQuery(), result)
	}

	h.logger.InfoContext(ctx, "qualification served",
		"request_id", requestID,
		"client_ip", metadata.GetClientIP(ctx),
		"dealer", req.DealerName,
		"outcome", result.Decision.Outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
