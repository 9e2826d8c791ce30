// Package config provides the CLI's configuration, merged from an optional
// YAML file and environment variables. The library itself takes no
// configuration; everything here exists to give the command-line wrapper
// sensible, overridable defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds generation defaults for the CLI. Flags override env vars,
// which override the YAML file, which overrides the built-in defaults.
type Config struct {
	// Seed for the random stream; 0 means seed from entropy.
	Seed int64 `yaml:"seed"`

	// Seasons is the number of consecutive seasons to generate, starting
	// from a random valid year. Ignored when FromSeason/ToSeason are set.
	Seasons int `yaml:"seasons"`

	// FromSeason/ToSeason select an explicit half-open year range.
	FromSeason int `yaml:"from_season"`
	ToSeason   int `yaml:"to_season"`

	// Format is the output format: json, csv or sqlite.
	Format string `yaml:"format"`

	// OutDir is the directory generated files are written to.
	OutDir string `yaml:"out_dir"`
}

// Load reads configuration from the given YAML file (if path is non-empty)
// and then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Seasons: 1,
		Format:  "json",
		OutDir:  ".",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Seed = envInt64("CANDYSTORE_SEED", cfg.Seed)
	cfg.Seasons = envInt("CANDYSTORE_SEASONS", cfg.Seasons)
	cfg.FromSeason = envInt("CANDYSTORE_FROM_SEASON", cfg.FromSeason)
	cfg.ToSeason = envInt("CANDYSTORE_TO_SEASON", cfg.ToSeason)
	cfg.Format = envOr("CANDYSTORE_FORMAT", cfg.Format)
	cfg.OutDir = envOr("CANDYSTORE_OUT_DIR", cfg.OutDir)

	return cfg, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
