// Package cleancmd implements the clean, clean-all, and aggregate CLI verbs.
package cleancmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jkwening/bike-price-predictor-sub000/internal/manifestcmd"
	"github.com/jkwening/bike-price-predictor-sub000/models"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/ingest"
	"github.com/jkwening/bike-price-predictor-sub000/pkg/manifest"
)

// newLogger builds the JSON logger all batch operations report through.
func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// newMediator wires the two manifests into a mediator.
func newMediator(c *cli.Context) (*ingest.Mediator, error) {
	config, err := manifestcmd.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	raw := manifest.New(config.ManifestFile, config.DataDir)
	munged := manifest.NewMunged(config.MungedManifestFile, config.MungedDir)
	if err := munged.Initialize(false); err != nil {
		return nil, err
	}
	return ingest.New(raw, munged, config.MungedDir, newLogger(c)), nil
}

// batchID returns the run's batch id: the --timestamp flag when given,
// otherwise the current time. Every file this run produces shares it.
func batchID(c *cli.Context) string {
	if ts := c.String("timestamp"); ts != "" {
		return ts
	}
	return time.Now().Format(models.TimestampFormat)
}

// CleanAction cleans one (source, bike-type) pair.
func CleanAction(c *cli.Context) error {
	md, err := newMediator(c)
	if err != nil {
		return err
	}

	site := c.String("source")
	bikeType := c.String("bike-type")
	outPath, err := md.CleanSource(site, bikeType, batchID(c))
	if err != nil {
		return fmt.Errorf("failed to clean %s/%s: %w", site, bikeType, err)
	}
	fmt.Printf("Cleaned %s/%s -> %s\n", site, bikeType, outPath)
	return nil
}

// CleanAllAction cleans every pair the manifest tracks, skipping sites
// without a registered cleaner.
func CleanAllAction(c *cli.Context) error {
	md, err := newMediator(c)
	if err != nil {
		return err
	}

	count, err := md.CleanAll(batchID(c))
	if err != nil {
		return err
	}
	fmt.Printf("Cleaned %d source/bike-type pairs\n", count)
	return nil
}

// AggregateAction concatenates all cleaned outputs into one table.
func AggregateAction(c *cli.Context) error {
	md, err := newMediator(c)
	if err != nil {
		return err
	}

	outPath, err := md.Aggregate(batchID(c))
	if err != nil {
		return err
	}
	fmt.Printf("Aggregated cleaned data -> %s\n", outPath)
	return nil
}
