package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/middleware"
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/requestcontext"
)

// Recorder captures qualification decisions without blocking the request
// path: events go into a buffered inbox that a Worker drains. A full inbox
// drops the event rather than slowing a caller down.
type Recorder struct {
	inbox  chan<- Event
	store  Store
	logger *slog.Logger
}

// NewRecorder builds a recorder writing into inbox. store is only used for
// reads; appends happen in the worker.
func NewRecorder(inbox chan<- Event, store Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{inbox: inbox, store: store, logger: logger}
}

// RecordQualification emits one audit event for a completed qualification.
func (r *Recorder) RecordQualification(ctx context.Context, query qualify.DealerQuery, result *qualify.Result) {
	event := Event{
		Timestamp:     time.Now(),
		RequestID:     requestcontext.RequestID(ctx),
		ClientName:    middleware.GetClientName(ctx),
		DealerName:    query.Name,
		Postcode:      qualify.NormalizePostcode(query.Postcode),
		Outcome:       string(result.Decision.Outcome),
		Reasons:       result.Decision.Reasons,
		Authorisation: string(result.Authorisation.Status),
	}
	if result.Match.Matched() {
		event.CompanyNumber = result.Match.Candidate.CompanyNumber
	}

	select {
	case r.inbox <- event:
	default:
		r.logger.WarnContext(ctx, "audit inbox full, event dropped",
			"dealer", query.Name,
		)
	}
}

// ListRecent returns the newest captured events.
func (r *Recorder) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	return r.store.ListRecent(ctx, limit)
}
