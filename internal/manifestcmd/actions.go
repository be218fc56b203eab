// Package manifestcmd implements the manifest CLI verbs.
package manifestcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/urfave/cli/v2"

	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
)

// LoadConfig reads the --config file, falling back to defaults when the
// flag was left unset and no config.yaml exists.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	config, err := models.LoadConfig(path)
	if err != nil {
		if !c.IsSet("config") {
			return models.DefaultConfig("."), nil
		}
		return nil, err
	}
	return config, nil
}

// OpenManifest returns the manifest selected by the --munged flag.
func OpenManifest(c *cli.Context, config *models.Config) *manifest.Manifest {
	if c.Bool("munged") {
		return manifest.NewMunged(config.MungedManifestFile, config.MungedDir)
	}
	return manifest.New(config.ManifestFile, config.DataDir)
}

// InitAction creates an empty ledger, or rewrites it with --overwrite.
func InitAction(c *cli.Context) error {
	config, err := LoadConfig(c)
	if err != nil {
		return err
	}
	m := OpenManifest(c, config)
	if err := m.Initialize(c.Bool("overwrite")); err != nil {
		return fmt.Errorf("failed to initialize manifest: %w", err)
	}
	fmt.Printf("Manifest ready: %s\n", m.Path())
	return nil
}

// RepopulateAction rebuilds the ledger from files already on disk.
func RepopulateAction(c *cli.Context) error {
	config, err := LoadConfig(c)
	if err != nil {
		return err
	}
	m := OpenManifest(c, config)
	if err := m.Upsert(nil, manifest.UpsertOptions{Repopulate: true}); err != nil {
		return fmt.Errorf("failed to repopulate manifest: %w", err)
	}
	entries, err := m.Entries()
	if err != nil {
		return err
	}
	fmt.Printf("Manifest repopulated: %d entries\n", len(entries))
	return nil
}

// ListAction prints ledger entries matching the filter flags.
func ListAction(c *cli.Context) error {
	config, err := LoadConfig(c)
	if err != nil {
		return err
	}
	m := OpenManifest(c, config)

	entries, err := m.Query(manifest.Filter{
		Sites:     splitFlag(c.String("site")),
		Tables:    splitFlag(c.String("table")),
		BikeTypes: splitFlag(c.String("bike-type")),
		Loaded:    splitFlag(c.String("loaded")),
	})
	if err != nil {
		return err
	}

	if c.IsSet("since") {
		since, err := dateparse.ParseAny(c.String("since"))
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		entries = entriesSince(entries, since)
	}

	if len(entries) == 0 {
		fmt.Println("No manifest entries found")
		return nil
	}

	fmt.Printf("%-15s %-14s %-12s %-40s %-15s %-7s %-20s\n",
		"Site", "Table", "Bike Type", "Filename", "Timestamp", "Loaded", "Date Loaded")
	fmt.Println(strings.Repeat("-", 130))
	for _, e := range entries {
		fmt.Printf("%-15s %-14s %-12s %-40s %-15s %-7s %-20s\n",
			e["site"], e["tablename"], e["bike_type"], e["filename"],
			e["timestamp"], e["loaded"], e["date_loaded"])
	}
	fmt.Printf("\nTotal: %d entries\n", len(entries))
	return nil
}

// entriesSince keeps entries whose batch timestamp is at or after since.
// Batch ids that do not parse are kept, never silently hidden.
func entriesSince(entries []manifest.Entry, since time.Time) []manifest.Entry {
	var kept []manifest.Entry
	for _, e := range entries {
		ts, err := time.Parse(models.TimestampFormat, e["timestamp"])
		if err != nil || !ts.Before(since) {
			kept = append(kept, e)
		}
	}
	return kept
}

// FieldsAction prints the union of spec column names across all tracked
// spec files, the superset schema the loader provisions.
func FieldsAction(c *cli.Context) error {
	config, err := LoadConfig(c)
	if err != nil {
		return err
	}
	m := manifest.New(config.ManifestFile, config.DataDir)

	names, err := m.DistinctFieldNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("\nTotal: %d distinct spec fields\n", len(names))
	return nil
}

func splitFlag(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
