package qualify

import "strings"

// Outcome is the closed set of qualification verdicts.
type Outcome string

const (
	OutcomePass   Outcome = "PASS"
	OutcomeReject Outcome = "REJECT"
)

// Decision is the verdict plus its ordered human-readable reasons. Reasons is
// never empty; on REJECT the first reason is the deciding one.
type Decision struct {
	Outcome Outcome
	Reasons []string
}

// Reason texts surfaced to callers. Wording is part of the contract.
const (
	ReasonCompanyDefunct      = "Company dissolved/liquidated/insolvent"
	ReasonYoungUnregistered   = "Not FCA registered and less than 2 years trading"
	ReasonQualified           = "Meets qualification criteria"
	ReasonFCARegistered       = "FCA registered"
	ReasonFCAUnknown          = "FCA status unknown"
	ReasonTradingUnregistered = "Not FCA registered but 2+ years trading"
	ReasonInventorySufficient = "Inventory appears sufficient"
	ReasonInventoryModerate   = "Inventory moderate"
	ReasonInventorySmall      = "Inventory appears small"
)

// Business thresholds. Exact values carry behavioral parity with the rule set
// agreed with underwriting; do not tune casually.
const (
	minTradingYears     = 2
	inventorySufficient = 20
	inventoryModerate   = 10
)

// Decide applies the qualification rules to one signal record. Rules run
// strictly in order and the first matching rule terminates evaluation. This is
// pure domain logic: no I/O, no side effects.
func Decide(signals QualificationSignals) Decision {
	status := strings.ToLower(signals.CompanyStatus)
	if strings.Contains(status, "dissolved") ||
		strings.Contains(status, "liquid") ||
		strings.Contains(status, "insolv") {
		return Decision{Outcome: OutcomeReject, Reasons: []string{ReasonCompanyDefunct}}
	}

	if signals.Authorisation == AuthorisationNo && signals.CompanyAgeYears < minTradingYears {
		return Decision{Outcome: OutcomeReject, Reasons: []string{ReasonYoungUnregistered}}
	}

	reasons := []string{ReasonQualified}
	switch signals.Authorisation {
	case AuthorisationYes:
		reasons = append(reasons, ReasonFCARegistered)
	case AuthorisationUnknown:
		reasons = append(reasons, ReasonFCAUnknown)
	case AuthorisationNo:
		reasons = append(reasons, ReasonTradingUnregistered)
	}

	if signals.InventoryEstimate != nil {
		switch {
		case *signals.InventoryEstimate >= inventorySufficient:
			reasons = append(reasons, ReasonInventorySufficient)
		case *signals.InventoryEstimate >= inventoryModerate:
			reasons = append(reasons, ReasonInventoryModerate)
		default:
			reasons = append(reasons, ReasonInventorySmall)
		}
	}

	return Decision{Outcome: OutcomePass, Reasons: reasons}
}
