// Package table provides a small in-memory table over CSV files.
//
// Cells are strings; the empty string is the null marker. Raw vendor files
// use a handful of other null spellings which IsNull also recognizes.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Table holds an ordered set of columns and rows keyed by column name.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string{}, columns...)}
}

// nullForms are cell values treated as missing data in raw vendor files.
var nullForms = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"none": true,
	"null": true,
	"-":    true,
}

// IsNull reports whether a cell value counts as missing.
func IsNull(v string) bool {
	return nullForms[strings.ToLower(strings.TrimSpace(v))]
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumn appends a column if it is not already present.
func (t *Table) EnsureColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// AppendRow adds a row. Missing cells read back as the null marker.
func (t *Table) AppendRow(row map[string]string) {
	if row == nil {
		row = map[string]string{}
	}
	t.Rows = append(t.Rows, row)
}

// Get returns the cell value, or "" when the column is absent.
func (t *Table) Get(row int, column string) string {
	return t.Rows[row][column]
}

// Set assigns a cell value, adding the column if needed.
func (t *Table) Set(row int, column, value string) {
	t.EnsureColumn(column)
	t.Rows[row][column] = value
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Coalesce fills the target column from the source columns in order.
// A cell that already holds a non-null value is never overwritten; later
// sources only fill cells still null after earlier sources were applied.
func (t *Table) Coalesce(target string, sources ...string) {
	t.EnsureColumn(target)
	for _, row := range t.Rows {
		if !IsNull(row[target]) {
			continue
		}
		for _, src := range sources {
			if v := row[src]; !IsNull(v) {
				row[target] = v
				break
			}
		}
	}
}

// Merge joins product rows onto spec rows, anchored on the specs table.
// Every spec row survives; a spec row with no matching product row keeps
// null product columns, and product rows with no matching specs are dropped.
// Keys are matched on exact string equality.
func Merge(products, specs *Table, keys ...string) *Table {
	merged := New(specs.Columns...)
	for _, c := range products.Columns {
		merged.EnsureColumn(c)
	}

	index := make(map[string]map[string]string, products.Len())
	for _, row := range products.Rows {
		k := joinKey(row, keys)
		if _, ok := index[k]; !ok {
			index[k] = row
		}
	}

	for _, spec := range specs.Rows {
		row := make(map[string]string, len(merged.Columns))
		for c, v := range spec {
			row[c] = v
		}
		if product, ok := index[joinKey(spec, keys)]; ok {
			for c, v := range product {
				if IsNull(row[c]) {
					row[c] = v
				}
			}
		}
		merged.AppendRow(row)
	}
	return merged
}

func joinKey(row map[string]string, keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.TrimSpace(row[k])
	}
	return strings.Join(parts, "\x1f")
}

// Append adds every row of other, unioning columns by name.
func (t *Table) Append(other *Table) {
	for _, c := range other.Columns {
		t.EnsureColumn(c)
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// ReadCSV loads a CSV file with a header row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}

	t := New(records[0]...)
	for _, record := range records[1:] {
		row := make(map[string]string, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(record) {
				row[c] = record[i]
			}
		}
		t.AppendRow(row)
	}
	return t, nil
}

// ReadHeader returns just the header row of a CSV file.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header %s: %w", path, err)
	}
	return header, nil
}

// WriteCSV writes the table, creating parent directories as needed.
func (t *Table) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			record[i] = row[c]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
