package table

import (
	"path/filepath"
	"testing"
)

func TestIsNull(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"  ", true},
		{"NA", true},
		{"n/a", true},
		{"None", true},
		{"NaN", true},
		{"-", true},
		{"0", false},
		{"aluminium", false},
	}
	for _, tt := range tests {
		if got := IsNull(tt.value); got != tt.want {
			t.Errorf("IsNull(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCoalesce_FirstNonNullWins(t *testing.T) {
	tbl := New("brakeset", "brake_levers")
	tbl.AppendRow(map[string]string{"brakeset": "Shimano 105", "brake_levers": "Tektro"})
	tbl.AppendRow(map[string]string{"brakeset": "", "brake_levers": "Tektro"})
	tbl.AppendRow(map[string]string{"brakeset": "", "brake_levers": ""})

	tbl.Coalesce("brakes", "brakeset", "brake_levers")

	if !tbl.HasColumn("brakes") {
		t.Fatal("Coalesce did not add target column")
	}
	wants := []string{"Shimano 105", "Tektro", ""}
	for i, want := range wants {
		if got := tbl.Get(i, "brakes"); got != want {
			t.Errorf("row %d brakes = %q, want %q", i, got, want)
		}
	}
}

func TestCoalesce_NeverOverwritesPopulated(t *testing.T) {
	tbl := New("brakes", "brake_levers")
	tbl.AppendRow(map[string]string{"brakes": "hydraulic disc", "brake_levers": "Tektro"})

	tbl.Coalesce("brakes", "brake_levers")

	if got := tbl.Get(0, "brakes"); got != "hydraulic disc" {
		t.Errorf("brakes = %q, want populated value retained", got)
	}
}

func TestMerge_AnchoredOnSpecs(t *testing.T) {
	products := New("site", "product_id", "price")
	products.AppendRow(map[string]string{"site": "giant", "product_id": "p1", "price": "999"})
	products.AppendRow(map[string]string{"site": "giant", "product_id": "p3", "price": "1299"})

	specs := New("site", "product_id", "frame")
	specs.AppendRow(map[string]string{"site": "giant", "product_id": "p1", "frame": "aluxx"})
	specs.AppendRow(map[string]string{"site": "giant", "product_id": "p2", "frame": "carbon"})

	merged := Merge(products, specs, "product_id", "site")

	if merged.Len() != 2 {
		t.Fatalf("merged rows = %d, want 2 (one per spec row)", merged.Len())
	}
	// Spec row with a matching product gains the product columns.
	if got := merged.Get(0, "price"); got != "999" {
		t.Errorf("matched row price = %q, want %q", got, "999")
	}
	// Spec row with no matching product survives with null product columns.
	if got := merged.Get(1, "price"); got != "" {
		t.Errorf("unmatched row price = %q, want null", got)
	}
	// Product p3 has no specs and must be dropped.
	for i := 0; i < merged.Len(); i++ {
		if merged.Get(i, "product_id") == "p3" {
			t.Error("product row without specs survived the merge")
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rows.csv")

	tbl := New("site", "product_id", "frame")
	tbl.AppendRow(map[string]string{"site": "trek", "product_id": "t1", "frame": "oclv carbon"})
	tbl.AppendRow(map[string]string{"site": "trek", "product_id": "t2", "frame": ""})

	if err := tbl.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("rows = %d, want 2", got.Len())
	}
	if got.Get(0, "frame") != "oclv carbon" {
		t.Errorf("frame = %q, want %q", got.Get(0, "frame"), "oclv carbon")
	}
	if got.Get(1, "frame") != "" {
		t.Errorf("null cell read back as %q, want empty", got.Get(1, "frame"))
	}

	header, err := ReadHeader(path)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}
	if len(header) != 3 || header[0] != "site" || header[2] != "frame" {
		t.Errorf("header = %v, want [site product_id frame]", header)
	}
}
