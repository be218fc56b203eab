// Package loadcmd implements the database load CLI verb.
package loadcmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jkwening/bike-price-predictor-sub000/internal/manifestcmd"
	dbpkg "github.com/jkwening/bike-price-predictor-sub000/pkg/db"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
)

// LoadAction provisions the sqlite tables and bulk-loads every tracked CSV
// not yet marked loaded, then flips the manifest entries.
func LoadAction(c *cli.Context) error {
	config, err := manifestcmd.LoadConfig(c)
	if err != nil {
		return err
	}
	m := manifestcmd.OpenManifest(c, config)

	database, err := dbpkg.Open(config.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	// The unified spec table's columns are the superset the manifest's
	// tracked spec files actually contain.
	if !c.Bool("munged") {
		fields, err := m.DistinctFieldNames()
		if err != nil {
			return err
		}
		if err := database.CreateSpecsTable(fields); err != nil {
			return err
		}
	}

	filter := manifest.Filter{Loaded: []string{"false", ""}}
	if t := c.String("table"); t != "" {
		filter.Tables = []string{t}
	}
	entries, err := m.Query(filter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Nothing to load")
		return nil
	}

	totalRows := 0
	for _, e := range entries {
		rows, err := database.LoadCSV(e["tablename"], m.ResolvePath(e))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", e["filename"], err)
		}
		if err := m.MarkLoaded(e["filename"], time.Now().Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
		totalRows += rows
		fmt.Printf("Loaded %s (%d rows) into %s\n", e["filename"], rows, e["tablename"])
	}

	fmt.Printf("\nTotal: %d rows from %d files into %s\n", totalRows, len(entries), database.Path())
	return nil
}
