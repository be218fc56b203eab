package normalize

import "testing"

func TestBrake(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Shimano 105 dual-pivot", "caliper"},
		{"Avid BB7 mechanical", "disc"},
		{"Tektro 857AL linear pull", "v-brake"},
		{"Shimano MT200 levers", "hydraulic"},
		{"Hydraulic Disc", "hydraulic"},
		{"Disc", "disc"},
		{"Coaster brake", "coaster"},
		{"band brake", "band brake"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Brake(tt.raw); got != tt.want {
			t.Errorf("Brake(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// The category passes reassign the working value on every hit, so the last
// matching category in disc -> caliper -> v-brake -> hydraulic order wins.
// "SRAM Rival hydraulic disc" matches the caliper list ("sram rival") and
// the hydraulic list ("hydraulic"); hydraulic is checked last and wins.
func TestBrake_LastCategoryWins(t *testing.T) {
	if got := Brake("SRAM Rival hydraulic disc"); got != "hydraulic" {
		t.Errorf(`Brake("SRAM Rival hydraulic disc") = %q, want "hydraulic"`, got)
	}

	// Only the caliper list matches here, so caliper stands.
	if got := Brake("SRAM Rival 22"); got != "caliper" {
		t.Errorf(`Brake("SRAM Rival 22") = %q, want "caliper"`, got)
	}

	// Disc list and v-brake list both match; v-brake is checked later.
	if got := Brake("Avid BB7 with linear pull levers"); got != "v-brake" {
		t.Errorf(`Brake(disc+v-brake text) = %q, want "v-brake"`, got)
	}
}

// Canonical brake types must be fixed points of the normalizer.
func TestBrake_Idempotent(t *testing.T) {
	for _, canonical := range []string{"hydraulic", "mechanical", "rim", "caliper", "coaster", "disc", "u-brake"} {
		if got := Brake(canonical); got != canonical {
			t.Errorf("Brake(%q) = %q, want fixed point", canonical, got)
		}
	}
}
