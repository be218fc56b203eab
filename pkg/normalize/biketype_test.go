package normalize

import "testing"

func TestBikeType_LabelAliases(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Mtb", "mountain"},
		{"e-bike", "electric"},
		{"CX", "cyclocross"},
		{"City", "commuter"},
		{"Youth", "kids"},
		{"Road Bikes", "road"},
	}
	for _, tt := range tests {
		if got := BikeType(tt.label, ""); got != tt.want {
			t.Errorf("BikeType(%q, ...) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

// A vocabulary keyword present in the raw label overrides the alias table.
func TestBikeType_RawKeywordOverridesAlias(t *testing.T) {
	// "electric road" would alias nowhere, but "road" is found first in the
	// keyword scan of the raw label and wins outright.
	if got := BikeType("Electric Road", ""); got != "road" {
		t.Errorf("BikeType(keyword-bearing label) = %q, want %q", got, "road")
	}
}

func TestBikeType_InferredFromDescription(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Talon 29 2 Moutain Bike - 2019", "mountain"},
		{"Domane AL 2 road bike", "road"},
		{"Powerfly ebike with Bosch motor", "electric"},
		{"Crux Elite cross bike", "cyclocross"},
		{"Steel is real", ""},
	}
	for _, tt := range tests {
		if got := BikeType("", tt.description); got != tt.want {
			t.Errorf("BikeType(\"\", %q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

// An unresolvable label falls back to the description before giving up.
func TestBikeType_LabelFallsBackToDescription(t *testing.T) {
	if got := BikeType("Clearance", "Tarmac SL6 road bike"); got != "road" {
		t.Errorf("BikeType(unresolvable label) = %q, want %q", got, "road")
	}
	if got := BikeType("Clearance", "frame pump"); got != "" {
		t.Errorf("BikeType(unresolvable everything) = %q, want empty", got)
	}
}
