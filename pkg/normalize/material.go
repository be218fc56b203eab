package normalize

// materialAliases normalizes frame/fork/handlebar/crankset/seatpost materials.
// Specific fragments come first: "carbon steel" must be tested before "carbon",
// and branded aluminum grades like "aluxx" before the generic spellings.
var materialAliases = []alias{
	// Steel family, most specific first.
	{"carbon steel", "steel"},
	{"hi-tensile", "steel"},
	{"hi-ten", "steel"},
	{"high-tensile", "steel"},
	{"chromoly", "steel"},
	{"cromoly", "steel"},
	{"chrome-moly", "steel"},
	{"chrome moly", "steel"},
	{"cro-mo", "steel"},
	{"cr-mo", "steel"},
	{"crmo", "steel"},
	{"4130", "steel"},
	{"reynolds 520", "steel"},
	{"reynolds 725", "steel"},
	{"reynolds 853", "steel"},
	{"columbus", "steel"},

	// Branded aluminum grades.
	{"aluxx", "aluminium"},
	{"alpha aluminum", "aluminium"},
	{"alpha gold", "aluminium"},
	{"a1 premium", "aluminium"},
	{"e5 premium", "aluminium"},
	{"x6 aluminum", "aluminium"},
	{"6061", "aluminium"},
	{"6066", "aluminium"},
	{"7005", "aluminium"},

	// Branded titanium grades.
	{"3al-2.5v", "titanium"},
	{"3al/2.5v", "titanium"},
	{"6al-4v", "titanium"},

	// Branded carbon layups.
	{"fact carbon", "carbon"},
	{"oclv", "carbon"},
	{"advanced-grade composite", "carbon"},
	{"advanced composite", "carbon"},
	{"cf slx", "carbon"},
	{"cf sl", "carbon"},

	// Generic spellings last.
	{"aluminum", "aluminium"},
	{"aluminium", "aluminium"},
	{"alloy", "aluminium"},
	{"titanium", "titanium"},
	{"carbon", "carbon"},
	{"steel", "steel"},
}

// Material maps a raw material description to the canonical material
// vocabulary. No match returns the empty string; null input passes through.
func Material(raw string) string {
	if raw == "" {
		return ""
	}
	return lookup(raw, materialAliases)
}
