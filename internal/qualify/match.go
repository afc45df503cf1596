package qualify

import (
	"strings"
	"time"
)

// RegistryCandidate is one row returned by the company registry search.
// Status is upstream free text ("active", "dissolved", ...) and is matched by
// substring, never parsed into an enum.
type RegistryCandidate struct {
	Title          string
	Status         string
	CompanyNumber  string
	Postcode       string
	CreationDate   string // upstream format "2006-01-02"; tolerated when malformed
	AddressSnippet string
}

// MatchResult is the outcome of scoring registry candidates against the
// caller's dealer. Candidate is nil when nothing cleared the threshold.
type MatchResult struct {
	Candidate       *RegistryCandidate
	Score           int
	CompanyAgeYears int
	Postcode        string
}

// Matched reports whether a candidate was accepted.
func (m MatchResult) Matched() bool { return m.Candidate != nil }

// Scoring weights and the acceptance threshold. These are load-bearing
// business constants, not tuning knobs.
const (
	scoreNameExact      = 100
	scoreNameContains   = 60
	scorePostcodeExact  = 80
	scorePostcodeShared = 30
	scoreStatusActive   = 10

	matchThreshold = 40
)

var (
	tradeWords    = map[string]bool{"MOTORS": true, "CARS": true}
	legalSuffixes = map[string]bool{"LIMITED": true, "LTD": true, "PLC": true}
)

// NameVariants returns the search-term variants tried against the registry:
// the full name, the name with generic trade words stripped, and the name with
// legal-entity suffixes stripped. Duplicates are collapsed, order preserved.
func NameVariants(name string) []string {
	full := strings.Join(strings.Fields(strings.ToUpper(name)), " ")
	if full == "" {
		return nil
	}

	variants := []string{full}
	for _, stripped := range []string{stripTokens(full, tradeWords), stripTokens(full, legalSuffixes)} {
		if stripped == "" {
			continue
		}
		seen := false
		for _, v := range variants {
			if v == stripped {
				seen = true
				break
			}
		}
		if !seen {
			variants = append(variants, stripped)
		}
	}
	return variants
}

func stripTokens(name string, drop map[string]bool) string {
	var kept []string
	for _, tok := range strings.Fields(name) {
		if drop[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// SelectBest scores every candidate and keeps the single highest-scoring one.
// Strict ties keep the earlier-seen candidate, so callers must supply
// candidates in search order (variant order, then page order). A best score
// below the threshold means no match; this is not an error.
func SelectBest(targetName, targetPostcode string, candidates []RegistryCandidate, now time.Time) MatchResult {
	variants := NameVariants(targetName)
	normTarget := NormalizePostcode(targetPostcode)

	var best *RegistryCandidate
	bestScore := 0
	for i := range candidates {
		score := scoreCandidate(variants, normTarget, candidates[i])
		if best == nil || score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}

	if best == nil || bestScore < matchThreshold {
		return MatchResult{Postcode: normTarget}
	}
	return MatchResult{
		Candidate:       best,
		Score:           bestScore,
		CompanyAgeYears: companyAge(best.CreationDate, now),
		Postcode:        resolvePostcode(*best, normTarget),
	}
}

func scoreCandidate(targetVariants []string, normTarget string, c RegistryCandidate) int {
	score := nameScore(targetVariants, c.Title)

	candidatePostcode := candidatePostcode(c)
	switch {
	case normTarget != "" && candidatePostcode == normTarget:
		score += scorePostcodeExact
	case normTarget != "" && candidatePostcode != "" &&
		(strings.Contains(candidatePostcode, normTarget) || strings.Contains(normTarget, candidatePostcode)):
		score += scorePostcodeShared
	}

	if strings.EqualFold(strings.TrimSpace(c.Status), "active") {
		score += scoreStatusActive
	}
	return score
}

// nameScore compares every target variant against the candidate title in its
// raw and legal-suffix-stripped forms, so "ACME MOTORS LTD" and "ACME MOTORS
// LIMITED" count as an exact match. Trade words are only stripped from the
// target; stripping them from titles would inflate partial matches to exact.
func nameScore(targetVariants []string, title string) int {
	normTitle := strings.Join(strings.Fields(strings.ToUpper(title)), " ")
	titleVariants := []string{normTitle}
	if stripped := stripTokens(normTitle, legalSuffixes); stripped != "" && stripped != normTitle {
		titleVariants = append(titleVariants, stripped)
	}

	best := 0
	for _, tv := range targetVariants {
		for _, cv := range titleVariants {
			switch {
			case tv == cv:
				return scoreNameExact
			case strings.Contains(tv, cv) || strings.Contains(cv, tv):
				if best < scoreNameContains {
					best = scoreNameContains
				}
			}
		}
	}
	return best
}

// candidatePostcode resolves the postcode used for scoring: the structured
// field when present, else one extracted from the address snippet.
func candidatePostcode(c RegistryCandidate) string {
	if pc := NormalizePostcode(c.Postcode); pc != "" {
		return pc
	}
	return ExtractPostcode(c.AddressSnippet)
}

// resolvePostcode picks the postcode reported on the match: candidate's own,
// else extracted from its address snippet, else the caller's input.
func resolvePostcode(c RegistryCandidate, fallback string) string {
	if pc := candidatePostcode(c); pc != "" {
		return pc
	}
	return fallback
}

// companyAge derives whole trading years from the registry creation date,
// floor-adjusted when the anniversary has not yet occurred this year.
// Malformed or absent dates yield 0 rather than an error.
func companyAge(creationDate string, now time.Time) int {
	created, err := time.Parse("2006-01-02", strings.TrimSpace(creationDate))
	if err != nil {
		return 0
	}
	age := now.Year() - created.Year()
	if now.Month() < created.Month() || (now.Month() == created.Month() && now.Day() < created.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
