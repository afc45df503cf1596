package handler

import (
	"strings"

	"github.com/SeanJibowu555/dealer-qualifier/internal/qualify"
	dErrors "github.com/SeanJibowu555/dealer-qualifier/pkg/domain-errors"
)

// QualifyRequest is the HTTP request body for POST /qualify. Field names match
// the spreadsheet integration that feeds this service.
type QualifyRequest struct {
	DealerName string `json:"dealer_name"`
	Postcode   string `json:"postcode"`
	Website    string `json:"website"`
}

// Normalize trims surrounding whitespace from all fields.
// Implements the Normalizable interface for httputil.DecodeAndPrepare.
func (r *QualifyRequest) Normalize() {
	r.DealerName = strings.TrimSpace(r.DealerName)
	r.Postcode = strings.TrimSpace(r.Postcode)
	r.Website = strings.TrimSpace(r.Website)
}

// Validate enforces request preconditions.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *QualifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.DealerName == "" {
		return dErrors.New(dErrors.CodeValidation, "dealer_name is required")
	}
	if len(r.DealerName) > 200 {
		return dErrors.New(dErrors.CodeValidation, "dealer_name must be at most 200 characters")
	}
	if len(r.Postcode) > 16 {
		return dErrors.New(dErrors.CodeValidation, "postcode must be at most 16 characters")
	}
	return nil
}

// DealerQuery converts the request into the domain query.
func (r *QualifyRequest) DealerQuery() qualify.DealerQuery {
	return qualify.DealerQuery{
		Name:       r.DealerName,
		Postcode:   r.Postcode,
		WebsiteURL: r.Website,
	}
}
