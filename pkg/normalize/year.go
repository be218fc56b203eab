package normalize

import (
	"regexp"
	"strconv"
)

// yearToken matches a 4-digit model-year token.
var yearToken = regexp.MustCompile(`\b(20\d{2})\b`)

// Model-year bounds. The regex alone accepts tokens like "2075" (part
// numbers, tube specs), so matches are clamped to the plausible range of
// the scraped catalogs.
const (
	minModelYear = 2000
	maxModelYear = 2021
)

// ModelYear extracts a model year from free text, typically a product
// description or href. Out-of-range tokens are treated as missing.
func ModelYear(text string) string {
	m := yearToken.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	year, err := strconv.Atoi(m[1])
	if err != nil || year < minModelYear || year > maxModelYear {
		return ""
	}
	return m[1]
}
