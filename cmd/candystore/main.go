// Command candystore generates fake AFL-style datasets and writes them to
// files for use as test fixtures.
//
// Usage:
//
//	candystore fixtures --seasons 3
//	candystore betting-odds --from 2015 --to 2018 --format csv
//	candystore players --seed 42 --format sqlite --out ./testdata
//	candystore all --seasons 2 --format json
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tipresias/candystore"
	"github.com/tipresias/candystore/internal/config"
	"github.com/tipresias/candystore/internal/export"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// dataset couples a subcommand with the accessor that generates its records.
type dataset struct {
	command string
	table   string
	short   string
	build   func(store *candystore.CandyStore) (records any, table candystore.Table)
}

func datasets() []dataset {
	return []dataset{
		{
			command: "fixtures",
			table:   "fixtures",
			short:   "Generate fixture data",
			build: func(store *candystore.CandyStore) (any, candystore.Table) {
				rows := store.Fixtures()
				return rows, candystore.Tabulate(rows)
			},
		},
		{
			command: "betting-odds",
			table:   "betting_odds",
			short:   "Generate betting odds data",
			build: func(store *candystore.CandyStore) (any, candystore.Table) {
				rows := store.BettingOdds()
				return rows, candystore.Tabulate(rows)
			},
		},
		{
			command: "match-results",
			table:   "match_results",
			short:   "Generate match results data",
			build: func(store *candystore.CandyStore) (any, candystore.Table) {
				rows := store.MatchResults()
				return rows, candystore.Tabulate(rows)
			},
		},
		{
			command: "players",
			table:   "players",
			short:   "Generate player stats data",
			build: func(store *candystore.CandyStore) (any, candystore.Table) {
				rows := store.Players()
				return rows, candystore.Tabulate(rows)
			},
		},
	}
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var (
		configPath string
		seasons    int
		fromSeason int
		toSeason   int
		seed       int64
		format     string
		outDir     string
	)

	root := &cobra.Command{
		Use:   "candystore",
		Short: "Fake AFL data generator for test fixtures",
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to YAML config file")
	pf.IntVar(&seasons, "seasons", 0, "Number of consecutive seasons, starting from a random valid year")
	pf.IntVar(&fromSeason, "from", 0, "First season of an explicit range (inclusive)")
	pf.IntVar(&toSeason, "to", 0, "End season of an explicit range (exclusive)")
	pf.Int64Var(&seed, "seed", 0, "Random seed; 0 seeds from entropy")
	pf.StringVar(&format, "format", "", "Output format: json, csv or sqlite")
	pf.StringVar(&outDir, "out", "", "Output directory")

	// Flags override env vars, which override the config file.
	settings := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if flags.Changed("seasons") {
			cfg.Seasons = seasons
		}
		if flags.Changed("from") {
			cfg.FromSeason = fromSeason
		}
		if flags.Changed("to") {
			cfg.ToSeason = toSeason
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		if flags.Changed("format") {
			cfg.Format = format
		}
		if flags.Changed("out") {
			cfg.OutDir = outDir
		}
		return cfg, nil
	}

	for _, ds := range datasets() {
		root.AddCommand(datasetCmd(ds, settings))
	}
	root.AddCommand(allCmd(settings))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func datasetCmd(ds dataset, settings func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   ds.command,
		Short: ds.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			result, err := writeDataset(cfg, store, ds)
			if err != nil {
				return err
			}
			logger.Info("Dataset written", "summary", result.Summary())
			return nil
		},
	}
}

func allCmd(settings func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate all four datasets from one shared schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			logger.Info("Schedule generated",
				"seasons", store.Seasons(), "matches", store.MatchCount())
			for _, ds := range datasets() {
				result, err := writeDataset(cfg, store, ds)
				if err != nil {
					return err
				}
				logger.Info("Dataset written", "summary", result.Summary())
			}
			return nil
		},
	}
}

// newStore builds a CandyStore from resolved settings. An explicit
// from/to range wins over a season count.
func newStore(cfg *config.Config) (*candystore.CandyStore, error) {
	var spec candystore.SeasonSpec
	if cfg.FromSeason != 0 || cfg.ToSeason != 0 {
		spec = candystore.Range{Start: cfg.FromSeason, End: cfg.ToSeason}
	} else {
		spec = candystore.Count(cfg.Seasons)
	}

	var opts []candystore.Option
	if cfg.Seed != 0 {
		opts = append(opts, candystore.WithSeed(cfg.Seed))
	}
	return candystore.New(spec, opts...)
}

func writeDataset(cfg *config.Config, store *candystore.CandyStore, ds dataset) (export.Result, error) {
	start := time.Now()

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return export.Result{}, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return export.Result{}, fmt.Errorf("create output directory: %w", err)
	}

	records, table := ds.build(store)

	var path string
	switch format {
	case export.FormatSQLite:
		// All datasets share one database file, one table each.
		path = filepath.Join(cfg.OutDir, "candystore."+format.Ext())
		err = export.SQLite(path, ds.table, table)
	default:
		path = filepath.Join(cfg.OutDir, ds.table+"."+format.Ext())
		err = writeFile(path, format, records, table)
	}
	if err != nil {
		return export.Result{}, err
	}

	return export.Result{
		Dataset:  ds.table,
		Rows:     len(table.Rows),
		Path:     path,
		Duration: time.Since(start),
	}, nil
}

func writeFile(path string, format export.Format, records any, table candystore.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case export.FormatJSON:
		return export.JSON(f, records)
	case export.FormatCSV:
		return export.CSV(f, table)
	default:
		return fmt.Errorf("unsupported file format %q", format)
	}
}
