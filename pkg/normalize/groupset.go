package normalize

import (
	"regexp"
	"strings"
)

// speedToken matches speed-count phrasing like "11-speed", "11 speed", "11spd".
var speedToken = regexp.MustCompile(`\b\d{1,2}[ -]?(speed|spd)\b`)

// groupsetTypos fixes misspellings seen in vendor copy before alias matching.
var groupsetTypos = [][2]string{
	{"ultrega", "ultegra"},
	{"ultegera", "ultegra"},
	{"dura ace", "dura-ace"},
	{"duraace", "dura-ace"},
	{"durace", "dura-ace"},
	{"di 2", "di2"},
	{"campy", "campagnolo"},
	{"campag ", "campagnolo "},
	{"e-tap", "etap"},
	{"deore-xt", "deore xt"},
}

// groupsetAliases maps raw groupset fragments to canonical groupset names.
// Electronic and flagship variants precede the base names they contain.
var groupsetAliases = []alias{
	// Shimano road.
	{"dura-ace di2", "shimano dura-ace di2"},
	{"dura-ace", "shimano dura-ace"},
	{"ultegra di2", "shimano ultegra di2"},
	{"ultegra", "shimano ultegra"},
	{"105", "shimano 105"},
	{"tiagra", "shimano tiagra"},
	{"sora", "shimano sora"},
	{"claris", "shimano claris"},
	{"tourney", "shimano tourney"},
	{"grx di2", "shimano grx di2"},
	{"grx", "shimano grx"},

	// Shimano mountain.
	{"xtr di2", "shimano xtr di2"},
	{"xtr", "shimano xtr"},
	{"deore xt di2", "shimano deore xt di2"},
	{"xt di2", "shimano deore xt di2"},
	{"deore xt", "shimano deore xt"},
	{"slx", "shimano slx"},
	{"deore", "shimano deore"},
	{"saint", "shimano saint"},
	{"zee", "shimano zee"},
	{"alivio", "shimano alivio"},
	{"acera", "shimano acera"},
	{"altus", "shimano altus"},

	// SRAM road.
	{"red etap axs", "sram red etap axs"},
	{"red etap", "sram red etap"},
	{"sram red", "sram red"},
	{"force etap axs", "sram force etap axs"},
	{"sram force", "sram force"},
	{"rival", "sram rival"},
	{"apex", "sram apex"},

	// SRAM mountain.
	{"xx1 eagle", "sram xx1 eagle"},
	{"x01 eagle", "sram x01 eagle"},
	{"gx eagle", "sram gx eagle"},
	{"nx eagle", "sram nx eagle"},
	{"sx eagle", "sram sx eagle"},
	{"xx1", "sram xx1"},
	{"x01", "sram x01"},
	{"sram x9", "sram x9"},
	{"sram x7", "sram x7"},
	{"sram x5", "sram x5"},
	{"sram x4", "sram x4"},
	{"sram x3", "sram x3"},

	// Campagnolo.
	{"super record eps", "campagnolo super record eps"},
	{"super record", "campagnolo super record"},
	{"record eps", "campagnolo record eps"},
	{"record", "campagnolo record"},
	{"chorus", "campagnolo chorus"},
	{"potenza", "campagnolo potenza"},
	{"athena", "campagnolo athena"},
	{"centaur", "campagnolo centaur"},
	{"veloce", "campagnolo veloce"},
}

// brandFallback catches component makers with no entry in the main table.
// The canonical value is just the brand; tier cannot be inferred.
var brandFallback = []alias{
	{"shimano", "shimano"},
	{"sram", "sram"},
	{"campagnolo", "campagnolo"},
	{"microshift", "microshift"},
	{"sunrace", "sunrace"},
	{"suntour", "suntour"},
	{"race face", "race face"},
	{"raceface", "race face"},
	{"praxis", "praxis"},
	{"rotor", "rotor"},
	{"truvativ", "truvativ"},
	{"fsa", "fsa"},
	{"vision", "vision"},
	{"easton", "easton"},
	{"box", "box"},
	{"prowheel", "prowheel"},
	{"lasco", "lasco"},
}

// cleanGroupsetText lowercases the raw value, fixes known typos, and strips
// speed-count tokens so "Ultrega 11-Speed" and "ultegra" alias identically.
func cleanGroupsetText(raw string) string {
	text := fold(raw)
	for _, t := range groupsetTypos {
		text = strings.ReplaceAll(text, t[0], t[1])
	}
	text = speedToken.ReplaceAllString(text, "")
	return fold(text)
}

// Groupset maps a raw component description to a canonical groupset name.
// Text with no alias in the main table falls back to a brand-only match;
// text with no match at all is retained cleaned rather than dropped.
func Groupset(raw string) string {
	if raw == "" {
		return ""
	}
	text := cleanGroupsetText(raw)
	if text == "" {
		return ""
	}
	if canonical := lookup(text, groupsetAliases); canonical != "" {
		return canonical
	}
	if canonical := lookup(text, brandFallback); canonical != "" {
		return canonical
	}
	return text
}

// groupsetRanks assigns each canonical groupset a hand-curated tier rank.
// Ranks order tiers within a brand family; cross-brand ties and near-ties
// (4.0 vs 4.25) are deliberate ordinal distinctions.
var groupsetRanks = map[string]float64{
	"shimano tourney":      1,
	"shimano altus":        1.25,
	"shimano acera":        1.5,
	"shimano alivio":       1.75,
	"shimano claris":       2,
	"shimano sora":         2.25,
	"shimano tiagra":       2.5,
	"shimano deore":        2.75,
	"shimano 105":          3,
	"shimano slx":          3.25,
	"shimano grx":          3.5,
	"shimano deore xt":     3.5,
	"shimano zee":          3,
	"shimano saint":        3.75,
	"shimano grx di2":      4,
	"shimano ultegra":      4,
	"shimano ultegra di2":  4.25,
	"shimano deore xt di2": 4.25,
	"shimano xtr":          4.5,
	"shimano xtr di2":      4.75,
	"shimano dura-ace":     5,
	"shimano dura-ace di2": 5.25,

	"sram x3":             1,
	"sram x4":             1.25,
	"sram x5":             1.5,
	"sram x7":             2,
	"sram apex":           2.25,
	"sram x9":             2.5,
	"sram sx eagle":       2,
	"sram nx eagle":       2.5,
	"sram rival":          3,
	"sram gx eagle":       3,
	"sram force":          4,
	"sram x01 eagle":      4.25,
	"sram force etap axs": 4.25,
	"sram red":            5,
	"sram xx1":            4.75,
	"sram xx1 eagle":      5,
	"sram red etap":       5.25,
	"sram red etap axs":   5.5,

	"campagnolo veloce":           2.5,
	"campagnolo centaur":          3,
	"campagnolo athena":           3.25,
	"campagnolo potenza":          3.5,
	"campagnolo chorus":           4,
	"campagnolo record":           4.75,
	"campagnolo record eps":       5,
	"campagnolo super record":     5.25,
	"campagnolo super record eps": 5.5,
}

// GroupsetRank returns the tier rank for a canonical groupset name.
func GroupsetRank(canonical string) (float64, bool) {
	rank, ok := groupsetRanks[canonical]
	return rank, ok
}
