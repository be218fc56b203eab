package ingest

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/table"
)

const testBatch = "20190910120000"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func rawEntry(site, bikeType, tablename string) manifest.Entry {
	return manifest.Entry{
		"site":        site,
		"tablename":   tablename,
		"bike_type":   bikeType,
		"filename":    site + "_" + bikeType + "_" + tablename + ".csv",
		"timestamp":   testBatch,
		"loaded":      "false",
		"date_loaded": "",
	}
}

// setupMediator builds a raw data root holding a giant road batch (a specs
// file and a products file) and returns a mediator over fresh manifests.
func setupMediator(t *testing.T) *Mediator {
	t.Helper()
	dir := t.TempDir()
	rawRoot := filepath.Join(dir, "data")
	mungedRoot := filepath.Join(dir, "munged")

	writeFile(t, filepath.Join(rawRoot, testBatch, "giant_road_product_specs.csv"),
		"site,product_id,category,frame,brakes\n"+
			"giant,g1,Road,ALUXX-Grade Aluminum,Conduct hydraulic disc\n")
	writeFile(t, filepath.Join(rawRoot, testBatch, "giant_road_products.csv"),
		"site,product_id,description,href,brand,price,msrp\n"+
			"giant,g1,Contend AR 3 2020,/bikes/contend-ar-3,Giant Bicycles,999,1200\n"+
			"giant,g9,Orphan product with no specs row,/bikes/orphan,Giant,500,500\n")

	raw := manifest.New(filepath.Join(dir, "manifest.csv"), rawRoot)
	if err := raw.Initialize(false); err != nil {
		t.Fatal(err)
	}
	err := raw.Upsert([]manifest.Entry{
		rawEntry("giant", "road", models.TableProductSpecs),
		rawEntry("giant", "road", models.TableProducts),
	}, manifest.UpsertOptions{})
	if err != nil {
		t.Fatal(err)
	}

	munged := manifest.NewMunged(filepath.Join(dir, "munged_manifest.csv"), mungedRoot)
	if err := munged.Initialize(false); err != nil {
		t.Fatal(err)
	}

	return New(raw, munged, mungedRoot, discardLogger())
}

func TestCleanSource(t *testing.T) {
	md := setupMediator(t)
	batch := "20190910130000"

	outPath, err := md.CleanSource("giant", "road", batch)
	if err != nil {
		t.Fatalf("CleanSource() error = %v", err)
	}

	wantPath := filepath.Join(md.MungedDir, batch, "giant_road_munged.csv")
	if outPath != wantPath {
		t.Errorf("output path = %q, want %q", outPath, wantPath)
	}

	out, err := table.ReadCSV(outPath)
	if err != nil {
		t.Fatalf("reading cleaned output: %v", err)
	}
	// One spec row in, one canonical row out; the orphan product row with no
	// specs counterpart must not survive the merge.
	if out.Len() != 1 {
		t.Fatalf("cleaned rows = %d, want 1", out.Len())
	}
	want := map[string]string{
		"site":           "giant",
		"bike_type":      "road",
		"product_id":     "g1",
		"brand":          "giant",
		"price":          "999",
		"frame_material": "aluminium",
		"brake_type":     "hydraulic",
		"model_year":     "2020",
	}
	for c, v := range want {
		if got := out.Get(0, c); got != v {
			t.Errorf("%s = %q, want %q", c, got, v)
		}
	}

	entries, err := md.Munged.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("munged manifest entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e["filename"] != "giant_road_munged.csv" || e["timestamp"] != batch {
		t.Errorf("munged entry = %v, want giant_road_munged.csv under batch %s", e, batch)
	}
	if e["loaded"] != "false" {
		t.Errorf("munged entry loaded = %q, want %q", e["loaded"], "false")
	}
}

// The merge is anchored on the specs file, so a pair tracked without a
// products file still cleans; product columns just stay null.
func TestCleanSource_MissingProductsFile(t *testing.T) {
	dir := t.TempDir()
	rawRoot := filepath.Join(dir, "data")
	writeFile(t, filepath.Join(rawRoot, testBatch, "trek_mountain_product_specs.csv"),
		"site,product_id,category,name,frame\n"+
			"trek,t1,Mountain,Marlin 5 2019,Alpha Gold Aluminum\n")

	raw := manifest.New(filepath.Join(dir, "manifest.csv"), rawRoot)
	if err := raw.Upsert([]manifest.Entry{rawEntry("trek", "mountain", models.TableProductSpecs)}, manifest.UpsertOptions{}); err != nil {
		t.Fatal(err)
	}
	munged := manifest.NewMunged(filepath.Join(dir, "munged_manifest.csv"), filepath.Join(dir, "munged"))
	md := New(raw, munged, filepath.Join(dir, "munged"), discardLogger())

	outPath, err := md.CleanSource("trek", "mountain", testBatch)
	if err != nil {
		t.Fatalf("CleanSource() error = %v", err)
	}
	out, err := table.ReadCSV(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 1 {
		t.Fatalf("cleaned rows = %d, want 1", out.Len())
	}
	if got := out.Get(0, "frame_material"); got != "aluminium" {
		t.Errorf("frame_material = %q, want %q", got, "aluminium")
	}
	if got := out.Get(0, "price"); got != "" {
		t.Errorf("price = %q, want null", got)
	}
}

func TestCleanSource_UntrackedPair(t *testing.T) {
	md := setupMediator(t)
	_, err := md.CleanSource("giant", "bmx", testBatch)
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Errorf("CleanSource(untracked pair) error = %v, want ErrNotFound", err)
	}
}

// Sites outside the closed vendor set are skipped, not fatal.
func TestCleanAll_SkipsUnknownSites(t *testing.T) {
	md := setupMediator(t)

	rawRoot := filepath.Join(filepath.Dir(md.Manifest.Path()), "data")
	writeFile(t, filepath.Join(rawRoot, testBatch, "velodrome_road_product_specs.csv"),
		"site,product_id,category\nvelodrome,v1,Road\n")
	if err := md.Manifest.Upsert([]manifest.Entry{rawEntry("velodrome", "road", models.TableProductSpecs)}, manifest.UpsertOptions{}); err != nil {
		t.Fatal(err)
	}

	n, err := md.CleanAll(testBatch)
	if err != nil {
		t.Fatalf("CleanAll() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CleanAll() cleaned %d pairs, want 1 (unknown site skipped)", n)
	}

	entries, err := md.Munged.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0]["filename"] != "giant_road_munged.csv" {
		t.Errorf("munged manifest entries = %v, want only giant_road_munged.csv", entries)
	}
}

func TestAggregate(t *testing.T) {
	md := setupMediator(t)
	if _, err := md.CleanSource("giant", "road", testBatch); err != nil {
		t.Fatal(err)
	}

	outPath, err := md.Aggregate(testBatch)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	combined, err := table.ReadCSV(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if combined.Len() != 1 {
		t.Fatalf("aggregate rows = %d, want 1", combined.Len())
	}
	for i, c := range models.CanonicalColumns {
		if combined.Columns[i] != c {
			t.Fatalf("aggregate column %d = %q, want %q", i, combined.Columns[i], c)
		}
	}

	entries, err := md.Munged.Query(manifest.Filter{Sites: []string{"all"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0]["filename"] != "all_munged.csv" {
		t.Fatalf("aggregate manifest entry = %v, want all_munged.csv for site all", entries)
	}

	// A second run must not fold the previous aggregate back into itself.
	if _, err := md.Aggregate(testBatch); err != nil {
		t.Fatalf("Aggregate() rerun error = %v", err)
	}
	combined, err = table.ReadCSV(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if combined.Len() != 1 {
		t.Errorf("aggregate rerun rows = %d, want 1 (must exclude its own output)", combined.Len())
	}
}
