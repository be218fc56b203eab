package normalize

import "strings"

// bikeTypeKeywords is the controlled bike-type vocabulary, searched in order.
// The first keyword found in the text wins.
var bikeTypeKeywords = []string{
	"road",
	"mountain",
	"cyclocross",
	"gravel",
	"triathlon",
	"track",
	"bmx",
	"kids",
	"commuter",
	"urban",
	"hybrid",
	"electric",
	"folding",
	"touring",
	"cruiser",
	"fat",
	"tandem",
	"recumbent",
	"adventure",
	"fitness",
	"cargo",
}

// bikeTypeLabelAliases folds curated vendor category labels onto the keyword
// vocabulary before the raw label itself is searched for keywords.
var bikeTypeLabelAliases = map[string]string{
	"mtb":           "mountain",
	"mtn":           "mountain",
	"e-bike":        "electric",
	"ebike":         "electric",
	"e bikes":       "electric",
	"pedal assist":  "electric",
	"cx":            "cyclocross",
	"cross":         "cyclocross",
	"tri":           "triathlon",
	"tt":            "triathlon",
	"time trial":    "triathlon",
	"city":          "commuter",
	"pavement":      "road",
	"all-road":      "gravel",
	"allroad":       "gravel",
	"youth":         "kids",
	"childrens":     "kids",
	"children's":    "kids",
	"boys":          "kids",
	"girls":         "kids",
	"fat bike":      "fat",
	"fixie":         "track",
	"fixed gear":    "track",
	"single speed":  "urban",
	"singlespeed":   "urban",
	"comfort":       "cruiser",
	"dirt jump":     "bmx",
	"path":          "hybrid",
	"dual sport":    "hybrid",
	"expedition":    "touring",
	"bikepacking":   "adventure",
	"exercise":      "fitness",
	"utility":       "cargo",
}

// descriptionSubstitutions fixes typos and folds synonyms in free-text
// descriptions before keyword inference runs.
var descriptionSubstitutions = [][2]string{
	{"moutain", "mountain"},
	{"montain", "mountain"},
	{"mtn ", "mountain "},
	{"e-bike", "electric bike"},
	{"ebike", "electric bike"},
	{"cross bike", "cyclocross bike"},
	{"cross-bike", "cyclocross bike"},
	{"tri bike", "triathlon bike"},
	{"tt bike", "triathlon bike"},
	{"commuting", "commuter"},
	{"all-road", "gravel"},
}

// keywordIn returns the first vocabulary keyword contained in the text.
func keywordIn(text string) string {
	for _, kw := range bikeTypeKeywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// BikeType resolves a row's bike-type partition.
//
// When the raw label is present it is folded through the curated label alias
// table; a vocabulary keyword found in the original raw label overrides the
// alias-table result. When the label is missing the free-text description is
// searched instead, after typo/synonym substitutions. The empty string means
// the row could not be resolved and must be dropped by the caller.
func BikeType(label, description string) string {
	if label != "" {
		text := fold(label)
		resolved := bikeTypeLabelAliases[text]
		if kw := keywordIn(text); kw != "" {
			resolved = kw
		}
		if resolved != "" {
			return resolved
		}
	}

	if description == "" {
		return ""
	}
	text := fold(description)
	for _, sub := range descriptionSubstitutions {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}
	return keywordIn(text)
}
