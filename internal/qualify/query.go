package qualify

import (
	"strings"

	dErrors "github.com/SeanJibowu555/dealer-qualifier/pkg/domain-errors"
)

// DealerQuery is the caller's input for one qualification request. It is
// treated as immutable once validated.
type DealerQuery struct {
	Name       string
	Postcode   string
	WebsiteURL string
}

// Validate enforces the one hard precondition of the pipeline: a dealer name.
// Everything else is optional and degrades to sentinel signals.
func (q DealerQuery) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "dealer name is required")
	}
	return nil
}
