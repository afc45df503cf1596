package qualify

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import "context"

// RegistrySearcher queries the company registry by free-text name. It may be
// called several times per request with different name variants. A failed call
// simply contributes no candidates; it is never fatal to the overall match.
type RegistrySearcher interface {
	Search(ctx context.Context, query string) ([]RegistryCandidate, error)
}

// RegisterPage is the fetched content of one regulator-register query.
type RegisterPage struct {
	Text string
	URL  string
}

// RegisterFetcher retrieves the regulator's public search page for a query.
type RegisterFetcher interface {
	Fetch(ctx context.Context, query string) (RegisterPage, error)
}

// SemanticClassifier answers a yes/no question about a bounded page excerpt.
// It is an optional capability: the authorisation check must function,
// degraded, when no classifier is configured.
type SemanticClassifier interface {
	Classify(ctx context.Context, question, excerpt string) (bool, error)
}

// RatingSource supplies an externally computed dealer rating, nil when the
// lookup found nothing.
type RatingSource interface {
	Rating(ctx context.Context, name, postcode string) (*float64, error)
}

// InventoryEstimator supplies an estimated stock count for the dealer's
// website, nil when no estimate could be produced.
type InventoryEstimator interface {
	Estimate(ctx context.Context, websiteURL, dealerName string) (*int, error)
}
