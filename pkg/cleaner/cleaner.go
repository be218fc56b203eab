// Package cleaner transforms one vendor's merged raw dataset into the
// canonical product schema. Vendors contribute only a field-aliasing rule
// set (vendors.go); the rest of the pipeline is shared and built on the
// canonicalization tables in pkg/normalize.
package cleaner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/normalize"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/table"
)

// ErrNoCleaner is returned when a site has no registered field-aliasing
// rule set. Batch operations catch this and skip the site.
var ErrNoCleaner = errors.New("no cleaner registered for site")

// HasCleaner reports whether a site is in the closed vendor set.
func HasCleaner(site string) bool {
	_, ok := vendors[site]
	return ok
}

// Clean normalizes a merged products+specs table for one site into the
// canonical 21-column schema. Rows whose bike type cannot be resolved are
// dropped; every other unparseable field degrades to the null marker.
// The input table is not modified.
func Clean(site string, merged *table.Table) (*table.Table, error) {
	cfg, ok := vendors[site]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCleaner, site)
	}

	working := copyTable(merged)
	for _, r := range cfg.rules {
		working.Coalesce(r.target, r.sources...)
	}
	for _, r := range defaultRules {
		working.Coalesce(r.target, r.sources...)
	}

	out := table.New(models.CanonicalColumns...)
	for _, row := range working.Rows {
		record := cleanRow(site, row, cfg)
		if record == nil {
			continue
		}
		out.AppendRow(record)
	}
	return out, nil
}

// cleanRow produces one canonical record, or nil when the row is not a
// complete bicycle listing (unresolvable bike type).
func cleanRow(site string, row map[string]string, cfg vendorConfig) map[string]string {
	description := cell(row, "description")

	bikeType := normalize.BikeType(cell(row, "bike_type"), description)
	if bikeType == "" {
		return nil
	}

	yearSource := description
	if cfg.yearFromHref {
		yearSource = cell(row, "href")
	}

	return map[string]string{
		"site":               site,
		"bike_type":          bikeType,
		"product_id":         cell(row, "product_id"),
		"href":               cell(row, "href"),
		"description":        description,
		"brand":              normalize.Brand(cell(row, "brand")),
		"price":              cell(row, "price"),
		"msrp":               cell(row, "msrp"),
		"frame_material":     normalize.Material(cell(row, "frame")),
		"model_year":         normalize.ModelYear(yearSource),
		"brake_type":         normalize.Brake(cell(row, "brakes")),
		"fork_material":      normalize.Material(cell(row, "fork")),
		"handlebar_material": normalize.Material(cell(row, "handlebar")),
		"fd_groupset":        normalize.Groupset(cell(row, "front_derailleur")),
		"rd_groupset":        normalize.Groupset(cell(row, "rear_derailleur")),
		"cassette_groupset":  normalize.Cassette(cell(row, "cassette")),
		"crankset_material":  normalize.Material(cell(row, "crankset")),
		"crankset_groupset":  normalize.Groupset(cell(row, "crankset")),
		"seatpost_material":  normalize.Material(cell(row, "seatpost")),
		"chain_groupset":     normalize.Groupset(cell(row, "chain")),
		"shifter_groupset":   normalize.Shifter(cell(row, "shifters")),
	}
}

// cell reads a column value with null forms collapsed to the empty string.
func cell(row map[string]string, column string) string {
	v := strings.TrimSpace(row[column])
	if table.IsNull(v) {
		return ""
	}
	return v
}

func copyTable(t *table.Table) *table.Table {
	out := table.New(t.Columns...)
	for _, row := range t.Rows {
		dup := make(map[string]string, len(row))
		for c, v := range row {
			dup[c] = v
		}
		out.AppendRow(dup)
	}
	return out
}
