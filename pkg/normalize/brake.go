package normalize

import "strings"

// Brake category component lists. Each category is checked as an independent
// pass in brakeCategories order, and every matching pass reassigns the working
// value, so the last matching category wins. The pass order is load-bearing;
// see DESIGN.md before changing it.
var (
	discComponents = []string{
		"avid bb5",
		"avid bb7",
		"tektro aries",
		"tektro mira",
		"tektro novela",
		"tektro lyra",
		"promax render",
		"promax dsk",
		"hayes cx",
		"shimano br-m375",
		"mechanical disc",
		"spyre",
	}
	caliperComponents = []string{
		"sram rival",
		"sram force",
		"sram red",
		"sram apex",
		"shimano 105",
		"shimano tiagra",
		"shimano sora",
		"shimano claris",
		"shimano ultegra",
		"shimano dura-ace",
		"dual-pivot",
		"dual pivot",
		"side pull",
		"sidepull",
		"long reach",
		"tektro r340",
		"tektro r540",
		"promax rc-452",
	}
	vBrakeComponents = []string{
		"v-brake",
		"v brake",
		"linear pull",
		"linear-pull",
		"tektro 857",
		"tektro 855",
		"promax tx-117",
	}
	hydraulicComponents = []string{
		"hydraulic",
		"hydro",
		"shimano mt200",
		"shimano mt400",
		"shimano mt500",
		"sram guide",
		"sram level",
		"sram code",
		"magura mt",
		"hayes dominion",
		"tektro hd",
	}
)

// brakeCategories fixes the category pass order.
var brakeCategories = []struct {
	name       string
	components []string
}{
	{"disc", discComponents},
	{"caliper", caliperComponents},
	{"v-brake", vBrakeComponents},
	{"hydraulic", hydraulicComponents},
}

// brakeVocabulary is the final canonical pass, searched in order.
var brakeVocabulary = []string{
	"hydraulic",
	"mechanical",
	"rim",
	"caliper",
	"coaster",
	"disc",
	"v-brake",
	"u-brake",
	"linear-pull",
}

// Brake maps raw brake component text to a canonical brake type. Text that
// matches nothing in the category lists or the canonical vocabulary is
// preserved as-is rather than discarded.
func Brake(raw string) string {
	if raw == "" {
		return ""
	}
	text := fold(raw)

	// Each category pass searches the original text and reassigns the
	// working value on a hit, so a later category overrides an earlier one.
	value := text
	for _, category := range brakeCategories {
		for _, component := range category.components {
			if strings.Contains(text, component) {
				value = category.name
				break
			}
		}
	}

	for _, canonical := range brakeVocabulary {
		if strings.Contains(value, canonical) {
			return canonical
		}
	}
	return value
}
