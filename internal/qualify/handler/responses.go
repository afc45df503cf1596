package handler

import (
	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
)

// QualifyResponse is the HTTP response for POST /qualify.
type QualifyResponse struct {
	Outcome string          `json:"outcome"`
	Reasons []string        `json:"reasons"`
	Signals SignalsResponse `json:"signals"`
}

// SignalsResponse exposes the full signal record used to reach the decision,
// for caller transparency and auditing.
type SignalsResponse struct {
	CompanyStatus     string   `json:"company_status"`
	CompanyNumber     string   `json:"company_number,omitempty"`
	CompanyAgeYears   int      `json:"company_age_years"`
	Postcode          string   `json:"postcode,omitempty"`
	FCAStatus         string   `json:"fca_status"`
	FCASourceURL      string   `json:"fca_source_url,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
	InventoryEstimate *int     `json:"inventory_estimate,omitempty"`
}

// FromResult converts a domain qualification result to an HTTP response.
func FromResult(result *qualify.Result) *QualifyResponse {
	signals := SignalsResponse{
		CompanyStatus:     result.Signals.CompanyStatus,
		CompanyAgeYears:   result.Signals.CompanyAgeYears,
		FCAStatus:         string(result.Signals.Authorisation),
		FCASourceURL:      result.Authorisation.SourceURL,
		Rating:            result.Signals.Rating,
		InventoryEstimate: result.Signals.InventoryEstimate,
	}
	if result.Match.Matched() {
		signals.CompanyNumber = result.Match.Candidate.CompanyNumber
		signals.Postcode = result.Match.Postcode
	}
	return &QualifyResponse{
		Outcome: string(result.Decision.Outcome),
		Reasons: result.Decision.Reasons,
		Signals: signals,
	}
}
