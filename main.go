package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jkwening/bike-price-predictor-sub000/internal/cleancmd"
	"github.com/jkwening/bike-price-predictor-sub000/internal/loadcmd"
	"github.com/jkwening/bike-price-predictor-sub000/internal/manifestcmd"
)

func main() {
	app := &cli.App{
		Name:  "bpp",
		Usage: "scraped bike listing ingestion, cleaning, and loading pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "pipeline config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "manifest",
				Usage: "inspect and maintain the data-file ledgers",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "create an empty ledger if none exists",
						Action: manifestcmd.InitAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "overwrite", Usage: "rewrite even if the ledger exists"},
							&cli.BoolFlag{Name: "munged", Usage: "operate on the cleaned-data ledger"},
						},
					},
					{
						Name:   "repopulate",
						Usage:  "rebuild the ledger from files already on disk",
						Action: manifestcmd.RepopulateAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "munged", Usage: "operate on the cleaned-data ledger"},
						},
					},
					{
						Name:   "list",
						Usage:  "print ledger entries",
						Action: manifestcmd.ListAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "site", Usage: "comma-separated site filter"},
							&cli.StringFlag{Name: "table", Usage: "comma-separated table filter"},
							&cli.StringFlag{Name: "bike-type", Usage: "comma-separated bike-type filter"},
							&cli.StringFlag{Name: "loaded", Usage: "comma-separated loaded-flag filter"},
							&cli.StringFlag{Name: "since", Usage: "only batches at or after this date"},
							&cli.BoolFlag{Name: "munged", Usage: "operate on the cleaned-data ledger"},
						},
					},
					{
						Name:   "fields",
						Usage:  "print the union of spec column names across tracked spec files",
						Action: manifestcmd.FieldsAction,
					},
				},
			},
			{
				Name:   "clean",
				Usage:  "clean one source's raw files into the canonical schema",
				Action: cleancmd.CleanAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Required: true, Usage: "site to clean"},
					&cli.StringFlag{Name: "bike-type", Value: "all", Usage: "bike-type partition to clean"},
					&cli.StringFlag{Name: "timestamp", Usage: "batch id override (defaults to now)"},
				},
			},
			{
				Name:   "clean-all",
				Usage:  "clean every source/bike-type pair the manifest tracks",
				Action: cleancmd.CleanAllAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "timestamp", Usage: "batch id override (defaults to now)"},
				},
			},
			{
				Name:   "aggregate",
				Usage:  "concatenate all cleaned outputs into one combined table",
				Action: cleancmd.AggregateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "timestamp", Usage: "batch id override (defaults to now)"},
				},
			},
			{
				Name:   "load",
				Usage:  "bulk-load tracked CSV files into sqlite and mark them loaded",
				Action: loadcmd.LoadAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "table", Usage: "only load files of this table kind"},
					&cli.BoolFlag{Name: "munged", Usage: "load from the cleaned-data ledger"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
