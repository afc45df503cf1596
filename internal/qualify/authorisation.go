package qualify

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// AuthorisationStatus is the closed set of regulator-register verdicts.
// Unknown means no register query could be attempted at all, which is distinct
// from a definitive "no".
type AuthorisationStatus string

const (
	AuthorisationYes     AuthorisationStatus = "yes"
	AuthorisationNo      AuthorisationStatus = "no"
	AuthorisationUnknown AuthorisationStatus = "unknown"
)

// AuthorisationResult carries the verdict and, for a positive match, the
// register URL that demonstrated it.
type AuthorisationResult struct {
	Status    AuthorisationStatus
	SourceURL string
}

// authorisedPhrases are literal, ordered markers known to appear on register
// pages for authorised firms. Phrase matching runs before any semantic
// classification to bound cost and failure surface against markup drift.
var authorisedPhrases = []string{
	"status: authorised",
	"authorised and regulated",
	"authorised by the financial conduct authority",
	"regulated by the financial conduct authority",
	"firm reference number",
}

// classifierExcerptLimit bounds the page excerpt handed to the semantic
// classifier.
const classifierExcerptLimit = 4000

// AuthorisationChecker decides whether a dealer appears on the regulator's
// register, preferring literal phrase matches and falling back to a semantic
// classifier only when phrases are inconclusive.
type AuthorisationChecker struct {
	fetcher    RegisterFetcher
	classifier SemanticClassifier // nil when the capability is absent
	logger     *slog.Logger
}

// NewAuthorisationChecker builds a checker. classifier may be nil.
func NewAuthorisationChecker(fetcher RegisterFetcher, classifier SemanticClassifier, logger *slog.Logger) *AuthorisationChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthorisationChecker{fetcher: fetcher, classifier: classifier, logger: logger}
}

// Check runs the query ladder for the dealer: cleaned name plus postcode
// first, then the cleaned name alone. Individual fetch failures advance to the
// next query; a request where no page could be fetched at all is unknown.
func (c *AuthorisationChecker) Check(ctx context.Context, dealerName, normPostcode string) AuthorisationResult {
	cleaned := cleanRegisterName(dealerName)

	var queries []string
	if normPostcode != "" {
		queries = append(queries, cleaned+" "+normPostcode)
	}
	queries = append(queries, cleaned)

	fetched := false
	for _, query := range queries {
		page, err := c.fetcher.Fetch(ctx, query)
		if err != nil {
			c.logger.DebugContext(ctx, "register fetch failed",
				"query", query,
				"error", err,
			)
			continue
		}
		fetched = true

		if pageShowsAuthorised(page.Text) {
			return AuthorisationResult{Status: AuthorisationYes, SourceURL: page.URL}
		}
		if c.classifierSaysAuthorised(ctx, dealerName, page.Text) {
			return AuthorisationResult{Status: AuthorisationYes, SourceURL: page.URL}
		}
	}

	if !fetched {
		return AuthorisationResult{Status: AuthorisationUnknown}
	}
	// A negative page is not evidence worth citing, so no URL is retained.
	return AuthorisationResult{Status: AuthorisationNo}
}

func pageShowsAuthorised(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range authorisedPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// classifierSaysAuthorised consults the optional semantic classifier. Its
// failure is non-fatal and degrades to the phrase-only verdict for the page.
func (c *AuthorisationChecker) classifierSaysAuthorised(ctx context.Context, dealerName, text string) bool {
	if c.classifier == nil {
		return false
	}
	excerpt := truncateExcerpt(text, classifierExcerptLimit)
	question := "Does this FCA register search page show the firm \"" + dealerName + "\" as authorised?"
	yes, err := c.classifier.Classify(ctx, question, excerpt)
	if err != nil {
		c.logger.DebugContext(ctx, "semantic classification failed",
			"dealer", dealerName,
			"error", err,
		)
		return false
	}
	return yes
}

// truncateExcerpt caps text at max bytes without splitting a multi-byte rune,
// so the classifier never receives invalid UTF-8.
func truncateExcerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}

// registerNoiseTokens are generic legal and trade tokens removed from the
// dealer name before querying the register.
var registerNoiseTokens = map[string]bool{
	"LIMITED": true,
	"LTD":     true,
	"PLC":     true,
	"UK":      true,
}

// cleanRegisterName strips legal/trade noise and separator punctuation so the
// register search sees the distinctive part of the trading name.
func cleanRegisterName(name string) string {
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ',', '.', '&', '/', '(', ')':
			return ' '
		}
		return r
	}, name)

	var kept []string
	for _, tok := range strings.Fields(replaced) {
		if registerNoiseTokens[strings.ToUpper(tok)] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
