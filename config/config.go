// Package config loads CLI configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ScottTolleback1/portfolio/match"
	"github.com/ScottTolleback1/portfolio/refresh"
)

// Config holds the file-configurable settings. Zero or missing fields
// fall back to package defaults when applied.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Matcher  MatcherConfig  `toml:"matcher"`
	Refresh  RefreshConfig  `toml:"refresh"`
}

// DatabaseConfig locates the storage backend.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MatcherConfig tunes the fuzzy matcher.
type MatcherConfig struct {
	NGramSize    int     `toml:"ngram_size"`
	EmbedDim     int     `toml:"embed_dim"`
	WeightCosine float64 `toml:"weight_cosine"`
	WeightLev    float64 `toml:"weight_lev"`
	Threshold    float64 `toml:"threshold"`
}

// RefreshConfig bounds how long callers wait for background data.
type RefreshConfig struct {
	MaxAttempts int           `toml:"max_attempts"`
	Interval    time.Duration `toml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Database: DatabaseConfig{Path: defaultDatabasePath()},
		Matcher: MatcherConfig{
			NGramSize:    match.DefaultNGramSize,
			EmbedDim:     match.DefaultEmbedDim,
			WeightCosine: match.DefaultWeightCosine,
			WeightLev:    match.DefaultWeightLev,
			Threshold:    match.DefaultThreshold,
		},
		Refresh: RefreshConfig{
			MaxAttempts: refresh.DefaultMaxAttempts,
			Interval:    refresh.DefaultInterval,
		},
	}
}

// Load reads a TOML config file, layering it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// MatcherOptions translates the matcher section into match.Index options.
func (c Config) MatcherOptions() []match.Option {
	return []match.Option{
		match.WithNGramSize(c.Matcher.NGramSize),
		match.WithEmbedDim(c.Matcher.EmbedDim),
		match.WithWeights(c.Matcher.WeightCosine, c.Matcher.WeightLev),
		match.WithThreshold(c.Matcher.Threshold),
	}
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "portfolio.db"
	}
	return home + "/.portfolio/db"
}
