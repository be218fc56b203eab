// Package normalize holds the canonicalization tables and field parsers that
// fold free-text vendor component specs into a controlled vocabulary.
//
// Every table is an ordered list of (fragment, canonical) pairs searched by
// case-insensitive substring match. First match wins, so list order is a
// correctness property: more specific fragments must appear before fragments
// they contain (see TestMaterialAliases_OrderSensitive).
package normalize

import "strings"

// alias maps one raw surface form to its canonical value.
type alias struct {
	fragment  string
	canonical string
}

// lookup scans an alias list in order and returns the first canonical value
// whose fragment occurs in the text. The empty string means no match.
func lookup(text string, aliases []alias) string {
	text = strings.ToLower(text)
	for _, a := range aliases {
		if strings.Contains(text, a.fragment) {
			return a.canonical
		}
	}
	return ""
}

// fold lowercases and collapses interior whitespace.
func fold(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
