package db

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jkwening/bike-price-predictor-sub000/pkg/table"
)

// identPattern limits data-driven column names to safe identifiers.
var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// CreateSpecsTable provisions the unified product_specs table from the
// superset of spec column names the manifest reported. The join keys are
// always present; every spec column is nullable TEXT.
func (db *DB) CreateSpecsTable(fieldNames []string) error {
	columns := []string{"site TEXT NOT NULL", "product_id TEXT NOT NULL"}
	for _, name := range fieldNames {
		if name == "site" || name == "product_id" {
			continue
		}
		if !identPattern.MatchString(name) {
			return fmt.Errorf("invalid spec column name %q", name)
		}
		columns = append(columns, fmt.Sprintf("%s TEXT", name))
	}
	columns = append(columns, "PRIMARY KEY (site, product_id)")

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS product_specs (\n    %s\n)",
		strings.Join(columns, ",\n    "))
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create product_specs table: %w", err)
	}
	return nil
}

// LoadCSV bulk-loads a CSV file into the named table inside one
// transaction. Columns present in the file but absent from the table are
// ignored; absent cells load as NULL. Rows reloaded for the same primary
// key replace the prior row.
func (db *DB) LoadCSV(tablename, path string) (int, error) {
	t, err := table.ReadCSV(path)
	if err != nil {
		return 0, err
	}

	tableColumns, err := db.tableColumns(tablename)
	if err != nil {
		return 0, err
	}

	var columns []string
	for _, c := range t.Columns {
		if tableColumns[c] {
			columns = append(columns, c)
		}
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("csv %s shares no columns with table %s", path, tablename)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	stmt := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		tablename, strings.Join(columns, ", "), placeholders)

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	prepared, err := tx.Prepare(stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare load statement: %w", err)
	}
	defer prepared.Close()

	args := make([]any, len(columns))
	for _, row := range t.Rows {
		for i, c := range columns {
			if table.IsNull(row[c]) {
				args[i] = nil
			} else {
				args[i] = row[c]
			}
		}
		if _, err := prepared.Exec(args...); err != nil {
			return 0, fmt.Errorf("failed to load row into %s: %w", tablename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return t.Len(), nil
}

// tableColumns returns the set of column names of an existing table.
func (db *DB) tableColumns(tablename string) (map[string]bool, error) {
	if !identPattern.MatchString(tablename) {
		return nil, fmt.Errorf("invalid table name %q", tablename)
	}
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tablename))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", tablename, err)
	}
	defer rows.Close()

	columns := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    any
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan table info: %w", err)
		}
		columns[name] = true
	}
	return columns, rows.Err()
}
