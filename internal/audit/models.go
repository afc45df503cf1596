package audit

import "time"

// Event is one qualification decision captured for review. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	RequestID     string    `json:"request_id,omitempty"`
	ClientName    string    `json:"client_name,omitempty"`
	DealerName    string    `json:"dealer_name"`
	Postcode      string    `json:"postcode,omitempty"`
	Outcome       string    `json:"outcome"`
	Reasons       []string  `json:"reasons"`
	CompanyNumber string    `json:"company_number,omitempty"`
	Authorisation string    `json:"authorisation"`
}
