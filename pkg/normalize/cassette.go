package normalize

import (
	"fmt"
	"regexp"
)

// cassetteAliases maps cassette model codes to the groupset vocabulary.
// Used only when the groupset alias pass finds nothing in the text.
var cassetteAliases = []alias{
	{"cs-hg500", "shimano tiagra"},
	{"cs-hg700", "shimano 105"},
	{"cs-hg800", "shimano ultegra"},
	{"cs-5800", "shimano 105"},
	{"cs-r7000", "shimano 105"},
	{"cs-6800", "shimano ultegra"},
	{"cs-r8000", "shimano ultegra"},
	{"cs-9000", "shimano dura-ace"},
	{"cs-m7000", "shimano slx"},
	{"cs-m8000", "shimano deore xt"},
	{"cs-m9000", "shimano xtr"},
	{"pg-1130", "sram rival"},
	{"pg-1170", "sram rival"},
	{"pg-1070", "sram apex"},
	{"xg-1150", "sram nx eagle"},
	{"xg-1175", "sram gx eagle"},
	{"xg-1275", "sram gx eagle"},
	{"xg-1190", "sram red"},
	{"xg-1295", "sram x01 eagle"},
	{"xg-1299", "sram xx1 eagle"},
}

// shifterAliases maps shifter model codes to the groupset vocabulary.
var shifterAliases = []alias{
	{"st-ef500", "shimano tourney"},
	{"st-ef505", "shimano tourney"},
	{"revoshift", "shimano tourney"},
	{"st-2400", "shimano claris"},
	{"st-r2000", "shimano claris"},
	{"st-3500", "shimano sora"},
	{"st-r3000", "shimano sora"},
	{"st-4700", "shimano tiagra"},
	{"st-5800", "shimano 105"},
	{"st-r7000", "shimano 105"},
	{"st-6800", "shimano ultegra"},
	{"st-r8000", "shimano ultegra"},
	{"sl-m315", "shimano altus"},
	{"sl-m2000", "shimano altus"},
	{"sl-m3010", "shimano acera"},
	{"sl-m4000", "shimano alivio"},
	{"sl-m7000", "shimano slx"},
	{"sl-m8000", "shimano deore xt"},
	{"grip shift", "sram"},
	{"gripshift", "sram"},
}

// speedPattern maps vendor-specific "N-speed" phrasing to a canonical
// "<brand> N-speed" placeholder when no model code resolves the field.
type speedPattern struct {
	re    *regexp.Regexp
	brand string
}

var speedPatterns = []speedPattern{
	{regexp.MustCompile(`shimano[^,;]*?(\d{1,2})[ -]?(?:speed|spd)`), "shimano"},
	{regexp.MustCompile(`sram[^,;]*?(\d{1,2})[ -]?(?:speed|spd)`), "sram"},
	{regexp.MustCompile(`campagnolo[^,;]*?(\d{1,2})[ -]?(?:speed|spd)`), "campagnolo"},
	{regexp.MustCompile(`microshift[^,;]*?(\d{1,2})[ -]?(?:speed|spd)`), "microshift"},
	{regexp.MustCompile(`sunrace[^,;]*?(\d{1,2})[ -]?(?:speed|spd)`), "sunrace"},
}

func speedLookup(text string) string {
	for _, p := range speedPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return fmt.Sprintf("%s %s-speed", p.brand, m[1])
		}
	}
	return ""
}

// componentLookup runs groupset normalization first and falls back to a
// field-specific model-code table, then to speed-count phrasing.
func componentLookup(raw string, aliases []alias) string {
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
	if canonical := lookup(text, aliases); canonical != "" {
		return canonical
	}
	// Speed phrasing runs against the folded raw text: the groupset cleaner
	// strips exactly the tokens these patterns need.
	if canonical := speedLookup(fold(raw)); canonical != "" {
		return canonical
	}
	if canonical := lookup(text, brandFallback); canonical != "" {
		return canonical
	}
	return text
}

// Cassette maps raw cassette text to the groupset vocabulary, falling back
// to cassette model codes and speed-count phrasing.
func Cassette(raw string) string {
	return componentLookup(raw, cassetteAliases)
}

// Shifter maps raw shifter text to the groupset vocabulary, falling back
// to shifter model codes and speed-count phrasing.
func Shifter(raw string) string {
	return componentLookup(raw, shifterAliases)
}
