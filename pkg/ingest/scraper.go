package ingest

import (
	"fmt"

	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
)

// Scraper is the collaborator contract for site scrapers. Implementations
// write raw products and product_specs CSVs under root/<batchID>/ and
// return the manifest entries describing them. The core never fetches or
// parses vendor pages itself.
type Scraper interface {
	Site() string
	Scrape(batchID string) ([]manifest.Entry, error)
}

// scrapers holds registered scraper collaborators by site.
var scrapers = map[string]Scraper{}

// RegisterScraper makes a scraper available to Collect.
func RegisterScraper(s Scraper) {
	scrapers[s.Site()] = s
}

// Collect delegates to the registered scraper for a site and records the
// files it produced in the raw manifest.
func (md *Mediator) Collect(site, batchID string) error {
	s, ok := scrapers[site]
	if !ok {
		return fmt.Errorf("%w: no scraper registered for site %q", manifest.ErrNotFound, site)
	}
	entries, err := s.Scrape(batchID)
	if err != nil {
		return fmt.Errorf("scrape failed for %s: %w", site, err)
	}
	return md.Manifest.Upsert(entries, manifest.UpsertOptions{})
}
