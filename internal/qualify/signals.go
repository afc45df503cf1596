package qualify

// StatusNotFound is the sentinel company status when no registry candidate
// was accepted.
const StatusNotFound = "Not Found"

// QualificationSignals is the normalized record the decision engine consumes.
// It is built fresh per request; missing upstream data is already folded into
// the documented sentinel values by the time it exists.
type QualificationSignals struct {
	CompanyStatus     string
	CompanyAgeYears   int
	Authorisation     AuthorisationStatus
	Rating            *float64
	InventoryEstimate *int
}

// BuildSignals assembles the aggregate record from the individual signal
// sources. Pure assembly, no decision logic.
func BuildSignals(match MatchResult, auth AuthorisationResult, rating *float64, inventory *int) QualificationSignals {
	signals := QualificationSignals{
		CompanyStatus:     StatusNotFound,
		Authorisation:     auth.Status,
		Rating:            rating,
		InventoryEstimate: inventory,
	}
	if match.Matched() {
		signals.CompanyStatus = match.Candidate.Status
		signals.CompanyAgeYears = match.CompanyAgeYears
	}
	return signals
}
