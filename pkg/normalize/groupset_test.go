package normalize

import "testing"

func TestGroupset(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Shimano Ultegra Di2 R8050 rear derailleur, 11-speed", "shimano ultegra di2"},
		{"Shimano Ultegra R8000", "shimano ultegra"},
		{"Shimano Dura Ace 9100", "shimano dura-ace"},
		{"Shimano 105 5800 11 Speed", "shimano 105"},
		{"SRAM Red eTap AXS", "sram red etap axs"},
		{"SRAM X01 Eagle 12-speed", "sram x01 eagle"},
		{"Campagnolo Super Record EPS", "campagnolo super record eps"},
		{"Campy Chorus 12s", "campagnolo chorus"},
		{"Shimano Ultrega", "shimano ultegra"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Groupset(tt.raw); got != tt.want {
			t.Errorf("Groupset(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestGroupset_BrandFallback(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"MicroShift RD-M26L", "microshift"},
		{"FSA Omega crankset", "fsa"},
		{"Race Face Aeffect", "race face"},
	}
	for _, tt := range tests {
		if got := Groupset(tt.raw); got != tt.want {
			t.Errorf("Groupset(%q) = %q, want brand fallback %q", tt.raw, got, tt.want)
		}
	}
}

// Text with no canonical equivalent is retained cleaned, never dropped.
func TestGroupset_RetainsUnmatchedText(t *testing.T) {
	got := Groupset("Samox SAC12B 8-Speed")
	if got != "samox sac12b" {
		t.Errorf("Groupset(unmatched) = %q, want cleaned text retained", got)
	}
}

// Canonical groupset names must be fixed points of the normalizer.
func TestGroupset_Idempotent(t *testing.T) {
	for _, canonical := range []string{
		"shimano ultegra di2",
		"shimano dura-ace",
		"sram red etap axs",
		"sram gx eagle",
		"campagnolo super record",
		"microshift",
	} {
		if got := Groupset(canonical); got != canonical {
			t.Errorf("Groupset(%q) = %q, want fixed point", canonical, got)
		}
	}
}

// Electronic variants must outrank and precede the base names they contain.
func TestGroupsetAliases_SpecificBeforeGeneric(t *testing.T) {
	pairs := [][2]string{
		{"shimano ultegra di2 system", "shimano ultegra di2"},
		{"shimano dura-ace di2 9150", "shimano dura-ace di2"},
		{"sram red etap hrd", "sram red etap"},
		{"sram xx1 eagle axs", "sram xx1 eagle"},
		{"campagnolo super record 12", "campagnolo super record"},
	}
	for _, p := range pairs {
		if got := Groupset(p[0]); got != p[1] {
			t.Errorf("Groupset(%q) = %q, want %q (specific alias must win)", p[0], got, p[1])
		}
	}
}

func TestGroupsetRank(t *testing.T) {
	tests := []struct {
		canonical string
		want      float64
	}{
		{"shimano ultegra", 4},
		{"shimano ultegra di2", 4.25},
		{"shimano dura-ace di2", 5.25},
		{"sram rival", 3},
		{"campagnolo super record eps", 5.5},
	}
	for _, tt := range tests {
		got, ok := GroupsetRank(tt.canonical)
		if !ok {
			t.Errorf("GroupsetRank(%q) not found", tt.canonical)
			continue
		}
		if got != tt.want {
			t.Errorf("GroupsetRank(%q) = %v, want %v", tt.canonical, got, tt.want)
		}
	}

	if _, ok := GroupsetRank("acme"); ok {
		t.Error("GroupsetRank(unknown) reported a rank")
	}

	// Near-ties are deliberate: di2 must rank strictly above mechanical.
	mech, _ := GroupsetRank("shimano ultegra")
	di2, _ := GroupsetRank("shimano ultegra di2")
	if di2 <= mech {
		t.Errorf("ultegra di2 rank %v not above ultegra %v", di2, mech)
	}
}

// Every alias target and every rank key should round-trip: ranked names are
// reachable from the alias table, so the rank table never goes stale.
func TestGroupsetRanks_CoverAliasTargets(t *testing.T) {
	targets := map[string]bool{}
	for _, a := range groupsetAliases {
		targets[a.canonical] = true
	}
	for canonical := range groupsetRanks {
		if !targets[canonical] {
			t.Errorf("ranked groupset %q has no alias producing it", canonical)
		}
	}
}
