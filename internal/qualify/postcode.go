package qualify

import (
	"regexp"
	"strings"
)

// postcodePattern matches UK postcodes: one or two letters, a digit, an
// optional letter or digit, an optional space, a digit and two letters.
var postcodePattern = regexp.MustCompile(`(?i)[A-Z]{1,2}[0-9][A-Z0-9]? ?[0-9][A-Z]{2}`)

// NormalizePostcode canonicalizes a free-text postcode for comparison:
// all spaces stripped, upper-cased. Empty input yields empty output.
func NormalizePostcode(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
}

// ExtractPostcode pulls the first UK-shaped postcode out of free text such as
// an address snippet, already normalized. Returns "" when none is present.
func ExtractPostcode(text string) string {
	return NormalizePostcode(postcodePattern.FindString(text))
}
