// Package manifest implements the flat-file CSV ledger that tracks every
// raw and derived data file the pipeline produces: which site it came from,
// what kind of table it holds, which batch created it, and whether the
// loader has consumed it.
//
// The ledger follows a read-entire-file, mutate, write-entire-file model.
// Writes go through a temp file renamed into place, so a crashed writer
// never truncates the ledger; concurrent writers are still unsupported and
// will lose updates to each other.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/table"
)

var (
	// ErrValidation marks entry-shape mismatches and mutually exclusive
	// update modes requested together.
	ErrValidation = errors.New("manifest validation error")

	// ErrNotFound marks a missing manifest file or entry.
	ErrNotFound = errors.New("manifest not found")
)

// Header is the column schema of the raw-data manifest.
var Header = []string{"site", "tablename", "bike_type", "filename", "timestamp", "loaded", "date_loaded"}

// MungedHeader is the narrower schema of the cleaned-data manifest, which
// has no bike_type partition column.
var MungedHeader = []string{"site", "tablename", "filename", "timestamp", "loaded", "date_loaded"}

// Entry is one ledger row, keyed by the manifest's header columns.
type Entry map[string]string

// Manifest is a CSV-backed ledger rooted at a data directory. Tracked files
// live at root/<timestamp>/<filename>.
type Manifest struct {
	path   string
	root   string
	header []string
}

// New returns a raw-data manifest backed by the CSV at path, resolving
// tracked files under root.
func New(path, root string) *Manifest {
	return &Manifest{path: path, root: root, header: Header}
}

// NewMunged returns a cleaned-data manifest with the narrower schema.
func NewMunged(path, root string) *Manifest {
	return &Manifest{path: path, root: root, header: MungedHeader}
}

// Path returns the backing CSV file path.
func (m *Manifest) Path() string {
	return m.path
}

// Columns returns the manifest's column schema.
func (m *Manifest) Columns() []string {
	return append([]string{}, m.header...)
}

// Initialize creates an empty ledger (header row only) if none exists, or
// unconditionally when overwrite is set.
func (m *Manifest) Initialize(overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(m.path); err == nil {
			return nil
		}
	}
	if err := m.write(nil); err != nil {
		return err
	}
	if _, err := os.Stat(m.path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, m.path)
	}
	return nil
}

// Entries reads every ledger row. A missing backing file is ErrNotFound.
func (m *Manifest) Entries() ([]Entry, error) {
	f, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, m.path)
		}
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", m.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	entries := make([]Entry, 0, len(records)-1)
	for _, record := range records[1:] {
		e := make(Entry, len(header))
		for i, c := range header {
			if i < len(record) {
				e[c] = record[i]
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// UpsertOptions selects between the mutually exclusive bulk update modes.
type UpsertOptions struct {
	// Repopulate rebuilds the ledger by scanning the data root for CSV
	// files whose names follow the <site>_<bike_type>_<tablename>.csv
	// convention. No explicit entries may be passed alongside it.
	Repopulate bool

	// Replace drops all existing rows and keeps only the given entries.
	Replace bool
}

// Upsert merges entries into the ledger keyed by filename; the last value
// for a filename wins. Every entry must supply exactly the manifest's
// header fields. Requesting Repopulate together with Replace (or with
// explicit entries) is a validation error.
func (m *Manifest) Upsert(entries []Entry, opts UpsertOptions) error {
	if opts.Repopulate && opts.Replace {
		return fmt.Errorf("%w: repopulate and replace are mutually exclusive", ErrValidation)
	}
	if opts.Repopulate && len(entries) > 0 {
		return fmt.Errorf("%w: repopulate does not accept explicit entries", ErrValidation)
	}

	if opts.Repopulate {
		scanned, err := m.scanRoot()
		if err != nil {
			return err
		}
		entries = scanned
	}
	for _, e := range entries {
		if err := m.validate(e); err != nil {
			return err
		}
	}

	var existing []Entry
	if !opts.Replace {
		var err error
		existing, err = m.Entries()
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	byFilename := make(map[string]int, len(existing))
	merged := make([]Entry, 0, len(existing)+len(entries))
	for _, e := range existing {
		byFilename[e["filename"]] = len(merged)
		merged = append(merged, e)
	}
	for _, e := range entries {
		if i, ok := byFilename[e["filename"]]; ok {
			merged[i] = e
			continue
		}
		byFilename[e["filename"]] = len(merged)
		merged = append(merged, e)
	}

	return m.write(merged)
}

// validate checks that an entry has exactly the header fields.
func (m *Manifest) validate(e Entry) error {
	if len(e) != len(m.header) {
		return fmt.Errorf("%w: entry has %d fields, want %d", ErrValidation, len(e), len(m.header))
	}
	for _, c := range m.header {
		if _, ok := e[c]; !ok {
			return fmt.Errorf("%w: entry missing field %q", ErrValidation, c)
		}
	}
	return nil
}

// write rewrites the whole ledger atomically.
func (m *Manifest) write(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0750); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".manifest-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp manifest: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(m.header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write manifest header: %w", err)
	}
	record := make([]string, len(m.header))
	for _, e := range entries {
		for i, c := range m.header {
			record[i] = e[c]
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write manifest row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp manifest: %w", err)
	}

	if err := os.Rename(tmp.Name(), m.path); err != nil {
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}

// Filter restricts a Query. A nil slice places no restriction on that
// dimension; values within one slice are alternatives (OR), and the
// dimensions combine with AND semantics.
type Filter struct {
	Sites     []string
	Tables    []string
	BikeTypes []string
	Loaded    []string
}

// Query returns all entries matching the filter. A zero Filter returns
// every entry.
func (m *Manifest) Query(f Filter) ([]Entry, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, e := range entries {
		if !oneOf(e["site"], f.Sites) {
			continue
		}
		if !oneOf(e["tablename"], f.Tables) {
			continue
		}
		if !oneOf(e["bike_type"], f.BikeTypes) {
			continue
		}
		if !oneOf(e["loaded"], f.Loaded) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, nil
}

func oneOf(value string, accepted []string) bool {
	if accepted == nil {
		return true
	}
	for _, a := range accepted {
		if value == a {
			return true
		}
	}
	return false
}

// ResolvePath computes the storage location of a tracked file. The layout
// root/<timestamp>/<filename> is part of the storage contract.
func (m *Manifest) ResolvePath(e Entry) string {
	return filepath.Join(m.root, e["timestamp"], e["filename"])
}

// MarkLoaded flips an entry's loaded flag and records the load date.
func (m *Manifest) MarkLoaded(filename, date string) error {
	entries, err := m.Entries()
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e["filename"] == filename {
			e["loaded"] = "true"
			e["date_loaded"] = date
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: no entry for filename %q", ErrNotFound, filename)
	}
	return m.write(entries)
}

// DistinctFieldNames scans the backing files of every spec-table entry and
// returns the sorted union of their column names, excluding the join keys.
// The loader uses this to provision a unified spec storage table.
func (m *Manifest) DistinctFieldNames() ([]string, error) {
	entries, err := m.Query(Filter{Tables: []string{models.TableProductSpecs}})
	if err != nil {
		return nil, err
	}

	union := map[string]bool{}
	for _, e := range entries {
		header, err := table.ReadHeader(m.ResolvePath(e))
		if err != nil {
			return nil, err
		}
		for _, c := range header {
			if c == "site" || c == "product_id" {
				continue
			}
			union[c] = true
		}
	}

	names := make([]string, 0, len(union))
	for c := range union {
		names = append(names, c)
	}
	sort.Strings(names)
	return names, nil
}

// GroupBySourceAndType groups tracked files as site -> bike_type ->
// tablename -> path. The batch cleaner uses it to discover which
// (site, bike_type) pairs have both a products and a specs file.
func (m *Manifest) GroupBySourceAndType() (map[string]map[string]map[string]string, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}

	grouped := map[string]map[string]map[string]string{}
	for _, e := range entries {
		site := e["site"]
		bikeType := e["bike_type"]
		if bikeType == "" {
			bikeType = models.BikeTypeAll
		}
		if grouped[site] == nil {
			grouped[site] = map[string]map[string]string{}
		}
		if grouped[site][bikeType] == nil {
			grouped[site][bikeType] = map[string]string{}
		}
		grouped[site][bikeType][e["tablename"]] = m.ResolvePath(e)
	}
	return grouped, nil
}

// scanRoot rebuilds entries from CSV files already present under the data
// root. Files that do not follow the naming convention are skipped, as is
// the manifest file itself.
func (m *Manifest) scanRoot() ([]Entry, error) {
	dirs, err := os.ReadDir(m.root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan data root: %w", err)
	}

	var entries []Entry
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		timestamp := dir.Name()
		files, err := os.ReadDir(filepath.Join(m.root, timestamp))
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch directory: %w", err)
		}
		for _, file := range files {
			if file.IsDir() || filepath.Ext(file.Name()) != ".csv" {
				continue
			}
			e, ok := m.entryFromFilename(file.Name(), timestamp)
			if !ok {
				continue
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// entryFromFilename parses <site>_<bike_type>_<tablename>.csv.
func (m *Manifest) entryFromFilename(filename, timestamp string) (Entry, bool) {
	stem := strings.TrimSuffix(filename, ".csv")

	var tablename string
	for _, t := range []string{models.TableProductSpecs, models.TableProducts, models.TableMunged} {
		if strings.HasSuffix(stem, "_"+t) {
			tablename = t
			stem = strings.TrimSuffix(stem, "_"+t)
			break
		}
	}
	if tablename == "" {
		return nil, false
	}

	i := strings.LastIndex(stem, "_")
	if i <= 0 {
		return nil, false
	}
	site, bikeType := stem[:i], stem[i+1:]

	e := Entry{
		"site":        site,
		"tablename":   tablename,
		"filename":    filename,
		"timestamp":   timestamp,
		"loaded":      "false",
		"date_loaded": "",
	}
	if len(m.header) == len(Header) {
		e["bike_type"] = bikeType
	}
	return e, true
}
