// Package db is the loader collaborator: it provisions sqlite tables for
// the pipeline's CSV outputs and bulk-loads them. The unified spec table's
// columns come from the manifest's distinct spec field names, so the schema
// follows whatever the scrapers actually produced.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "bike-price-predictor.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the SQLite database at path, initializing the
// fixed-schema tables if needed.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBName
	}
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// InitSchema creates the fixed-schema tables. The product_specs table is
// provisioned separately because its columns are data-driven.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
