package normalize

import "strings"

// brandSuffixes are trailing tokens stripped from scraped brand names.
var brandSuffixes = map[string]bool{
	"bikes":    true,
	"bike":     true,
	"bicycles": true,
	"bicycle":  true,
	"cycles":   true,
	"cycle":    true,
	"co.":      true,
	"co":       true,
}

// brandFixes repairs brand names truncated by upstream scrapers.
var brandFixes = map[string]string{
	"santa":  "santa cruz",
	"de":     "de rosa",
	"van":    "van dessel",
	"wilier": "wilier triestina",
	"co-op":  "co-op cycles",
}

// Brand strips suffix noise from a scraped brand name and repairs known
// truncations. The result is lowercase.
func Brand(raw string) string {
	if raw == "" {
		return ""
	}
	tokens := strings.Fields(strings.ToLower(raw))
	for len(tokens) > 1 && brandSuffixes[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	name := strings.Join(tokens, " ")
	if fixed, ok := brandFixes[name]; ok {
		return fixed
	}
	return name
}
