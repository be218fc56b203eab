// Package ingest sequences manifest lookups, cleaner invocation, and
// manifest updates for single-source and batch cleaning runs.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/cleaner"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/table"
)

// Mediator drives the clean and aggregate operations. The batch id is
// threaded through explicitly so multiple batches can run in one process.
type Mediator struct {
	Manifest  *manifest.Manifest
	Munged    *manifest.Manifest
	MungedDir string
	Logger    *slog.Logger
}

// New returns a mediator over the two manifests. A nil logger defaults to
// slog's package default.
func New(raw, munged *manifest.Manifest, mungedDir string, logger *slog.Logger) *Mediator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mediator{Manifest: raw, Munged: munged, MungedDir: mungedDir, Logger: logger}
}

// CleanSource cleans one (site, bike_type) pair: locates the products and
// specs files through the manifest grouping, merges them anchored on the
// specs file, runs the vendor cleaner, writes the munged CSV under the
// batch id, and upserts the munged manifest.
func (md *Mediator) CleanSource(site, bikeType, batchID string) (string, error) {
	grouped, err := md.Manifest.GroupBySourceAndType()
	if err != nil {
		return "", err
	}
	paths, ok := grouped[site][bikeType]
	if !ok {
		return "", fmt.Errorf("%w: no tracked files for %s/%s", manifest.ErrNotFound, site, bikeType)
	}
	specsPath, ok := paths[models.TableProductSpecs]
	if !ok {
		return "", fmt.Errorf("%w: no specs file for %s/%s", manifest.ErrNotFound, site, bikeType)
	}

	specs, err := table.ReadCSV(specsPath)
	if err != nil {
		return "", err
	}

	// A missing products file is tolerated: the merge is anchored on specs,
	// product columns just stay null.
	products := table.New()
	if productsPath, ok := paths[models.TableProducts]; ok {
		products, err = table.ReadCSV(productsPath)
		if err != nil {
			return "", err
		}
	}

	merged := table.Merge(products, specs, "product_id", "site")
	cleaned, err := cleaner.Clean(site, merged)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s_munged.csv", site, bikeType)
	entry := manifest.Entry{
		"site":        site,
		"tablename":   models.TableMunged,
		"filename":    filename,
		"timestamp":   batchID,
		"loaded":      "false",
		"date_loaded": "",
	}
	outPath := md.Munged.ResolvePath(entry)
	if err := cleaned.WriteCSV(outPath); err != nil {
		return "", err
	}
	if err := md.Munged.Upsert([]manifest.Entry{entry}, manifest.UpsertOptions{}); err != nil {
		return "", err
	}

	md.Logger.Info("cleaned source",
		"site", site, "bike_type", bikeType,
		"rows_in", specs.Len(), "rows_out", cleaned.Len(), "path", outPath)
	return outPath, nil
}

// CleanAll cleans every (site, bike_type) pair the manifest knows about.
// Pairs whose site has no registered cleaner are skipped with a warning;
// other per-pair failures are reported and skipped too, so one bad vendor
// never halts the batch. Returns the number of pairs cleaned.
func (md *Mediator) CleanAll(batchID string) (int, error) {
	grouped, err := md.Manifest.GroupBySourceAndType()
	if err != nil {
		return 0, err
	}

	cleanedCount := 0
	for _, site := range sortedKeys(grouped) {
		if !cleaner.HasCleaner(site) {
			md.Logger.Warn("skipping site with no registered cleaner", "site", site)
			continue
		}
		for _, bikeType := range sortedKeys(grouped[site]) {
			if _, ok := grouped[site][bikeType][models.TableProductSpecs]; !ok {
				continue
			}
			if _, err := md.CleanSource(site, bikeType, batchID); err != nil {
				if errors.Is(err, cleaner.ErrNoCleaner) {
					md.Logger.Warn("skipping source with no cleaner", "site", site, "bike_type", bikeType)
					continue
				}
				md.Logger.Warn("failed to clean source, skipping",
					"site", site, "bike_type", bikeType, "error", err)
				continue
			}
			cleanedCount++
		}
	}
	return cleanedCount, nil
}

// Aggregate concatenates every cleaned output the munged manifest tracks
// into one combined table, written under the batch id and registered in
// the munged manifest.
func (md *Mediator) Aggregate(batchID string) (string, error) {
	entries, err := md.Munged.Query(manifest.Filter{Tables: []string{models.TableMunged}})
	if err != nil {
		return "", err
	}

	combined := table.New(models.CanonicalColumns...)
	for _, e := range entries {
		if e["filename"] == aggregateFilename {
			continue
		}
		t, err := table.ReadCSV(md.Munged.ResolvePath(e))
		if err != nil {
			return "", err
		}
		combined.Append(t)
	}

	entry := manifest.Entry{
		"site":        "all",
		"tablename":   models.TableMunged,
		"filename":    aggregateFilename,
		"timestamp":   batchID,
		"loaded":      "false",
		"date_loaded": "",
	}
	outPath := md.Munged.ResolvePath(entry)
	if err := combined.WriteCSV(outPath); err != nil {
		return "", err
	}
	if err := md.Munged.Upsert([]manifest.Entry{entry}, manifest.UpsertOptions{}); err != nil {
		return "", err
	}

	md.Logger.Info("aggregated cleaned outputs",
		"sources", len(entries), "rows", combined.Len(), "path", outPath)
	return outPath, nil
}

const aggregateFilename = "all_munged.csv"

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
