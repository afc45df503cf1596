package qualify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify/metrics"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/requestcontext"
)

// signalTimeout bounds the whole gathering phase. Individual collaborators
// carry their own tighter timeouts; this is the backstop so a request never
// blocks indefinitely.
const signalTimeout = 60 * time.Second

// Result is everything the service derived for one request: the verdict plus
// the full signal record and the intermediate lookups for caller auditing.
type Result struct {
	Decision      Decision
	Signals       QualificationSignals
	Match         MatchResult
	Authorisation AuthorisationResult
}

// Service runs one qualification request end to end: gather the independent
// signals from the collaborators, fold missing data into sentinels, and apply
// the decision rules. Collaborator failures degrade the corresponding signal;
// the decision engine is always reached.
type Service struct {
	registry  RegistrySearcher
	checker   *AuthorisationChecker
	ratings   RatingSource       // nil when not configured
	inventory InventoryEstimator // nil when not configured
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithRatingSource wires the external rating lookup.
func WithRatingSource(r RatingSource) Option {
	return func(s *Service) { s.ratings = r }
}

// WithInventoryEstimator wires the website inventory estimate.
func WithInventoryEstimator(e InventoryEstimator) Option {
	return func(s *Service) { s.inventory = e }
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the service metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the qualification service. The registry searcher and the
// authorisation checker are required; everything else is optional.
func New(registry RegistrySearcher, checker *AuthorisationChecker, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, errors.New("registry searcher is required")
	}
	if checker == nil {
		return nil, errors.New("authorisation checker is required")
	}
	s := &Service{
		registry: registry,
		checker:  checker,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Qualify resolves the dealer's signals and produces a decision. The only
// error it returns is a caller-input precondition violation; upstream failures
// are absorbed into the documented sentinel values.
func (s *Service) Qualify(ctx context.Context, query DealerQuery) (*Result, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	gathered := s.gatherSignals(ctx, query)
	signals := BuildSignals(gathered.match, gathered.authorisation, gathered.rating, gathered.inventory)
	decision := Decide(signals)

	s.metrics.IncrementOutcome(string(decision.Outcome))
	s.metrics.ObserveQualifyLatency(time.Since(start))
	s.logger.InfoContext(ctx, "dealer qualified",
		"request_id", requestcontext.RequestID(ctx),
		"dealer", query.Name,
		"outcome", decision.Outcome,
		"company_status", signals.CompanyStatus,
		"authorisation", signals.Authorisation,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Decision:      decision,
		Signals:       signals,
		Match:         gathered.match,
		Authorisation: gathered.authorisation,
	}, nil
}

type gatheredSignals struct {
	match         MatchResult
	authorisation AuthorisationResult
	rating        *float64
	inventory     *int
}

// gatherSignals runs the four independent lookups concurrently with a shared
// deadline. Goroutines never propagate errors upward: each source degrades to
// its sentinel so the decision engine always runs.
func (s *Service) gatherSignals(ctx context.Context, query DealerQuery) *gatheredSignals {
	ctx, cancel := context.WithTimeout(ctx, signalTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	gathered := &gatheredSignals{
		authorisation: AuthorisationResult{Status: AuthorisationUnknown},
	}
	now := requestcontext.Now(ctx)
	normPostcode := NormalizePostcode(query.Postcode)

	g.Go(func() error {
		start := time.Now()
		gathered.match = s.matchRegistry(ctx, query, now)
		s.metrics.ObserveSignalLatency("registry", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		gathered.authorisation = s.checker.Check(ctx, query.Name, normPostcode)
		s.metrics.ObserveSignalLatency("authorisation", time.Since(start))
		return nil
	})

	if s.ratings != nil {
		g.Go(func() error {
			start := time.Now()
			rating, err := s.ratings.Rating(ctx, query.Name, query.Postcode)
			s.metrics.ObserveSignalLatency("rating", time.Since(start))
			if err != nil {
				s.logger.DebugContext(ctx, "rating lookup failed",
					"dealer", query.Name,
					"error", err,
				)
				return nil
			}
			gathered.rating = rating
			return nil
		})
	}

	if s.inventory != nil {
		g.Go(func() error {
			start := time.Now()
			estimate, err := s.inventory.Estimate(ctx, query.WebsiteURL, query.Name)
			s.metrics.ObserveSignalLatency("inventory", time.Since(start))
			if err != nil {
				s.logger.DebugContext(ctx, "inventory estimate failed",
					"dealer", query.Name,
					"error", err,
				)
				return nil
			}
			gathered.inventory = estimate
			return nil
		})
	}

	// Goroutines only ever return nil; Wait is for completion, not failure.
	_ = g.Wait()
	return gathered
}

// matchRegistry searches the registry once per name variant, pools the
// candidates in search order, and scores them. Per-variant search failures
// contribute no candidates and are not fatal.
func (s *Service) matchRegistry(ctx context.Context, query DealerQuery, now time.Time) MatchResult {
	var pooled []RegistryCandidate
	for _, variant := range NameVariants(query.Name) {
		candidates, err := s.registry.Search(ctx, variant)
		if err != nil {
			s.logger.DebugContext(ctx, "registry search failed",
				"query", variant,
				"error", err,
			)
			continue
		}
		pooled = append(pooled, candidates...)
	}
	return SelectBest(query.Name, query.Postcode, pooled, now)
}
