package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ScottTolleback1/portfolio"
	"github.com/ScottTolleback1/portfolio/config"
	"github.com/ScottTolleback1/portfolio/corpus"
)

func main() {
	app := &cli.App{
		Name:  "portfolio",
		Usage: "Fuzzy ticker resolution and stock valuation over a local database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
				Value:   "portfolio.toml",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import a ticker/company-name corpus from a CSV file",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to CSV corpus file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "raw-names",
						Usage: "Store company names as-is, without cleaning",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Resolve a company name or ticker fragment to a ticker",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
			},
			{
				Name:      "value",
				Usage:     "Print the valuation summary for a ticker",
				ArgsUsage: "TICKER",
				Action:    valueCommand,
			},
			{
				Name:      "request",
				Usage:     "Queue a data refresh for a ticker",
				ArgsUsage: "TICKER",
				Action:    requestCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openDatabase loads the config file and opens the database, letting the
// --db flag override the configured path.
func openDatabase(c *cli.Context) (*portfolio.Database, config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, cfg, err
	}

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	db, err := portfolio.NewDatabase(dbPath,
		portfolio.WithRefreshPolicy(cfg.Refresh.MaxAttempts, cfg.Refresh.Interval))
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to open database: %w", err)
	}
	return db, cfg, nil
}

func importCommand(c *cli.Context) error {
	db, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []corpus.FileOption
	if c.Bool("raw-names") {
		opts = append(opts, corpus.WithRawNames())
	}
	src := corpus.NewFileSource(c.String("file"), opts...)

	count, err := db.ImportListings(context.Background(), src)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d listings\n", count)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, cfg, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	matcher, err := db.NewMatcher(context.Background(), cfg.MatcherOptions()...)
	if err != nil {
		return fmt.Errorf("failed to build matcher: %w", err)
	}

	result := matcher.FindBestMatch(query)
	if result.Ticker == "" {
		fmt.Printf("No match for %q\n", query)
		return nil
	}

	fmt.Printf("%s (score %.3f)\n", result.Ticker, result.Score)
	return nil
}

func valueCommand(c *cli.Context) error {
	ticker := strings.TrimSpace(c.Args().First())
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	db, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	stock, err := db.Valuation(context.Background(), ticker)
	if err != nil {
		return fmt.Errorf("valuation failed: %w", err)
	}

	fmt.Print(stock.Summary())
	return nil
}

func requestCommand(c *cli.Context) error {
	ticker := strings.TrimSpace(c.Args().First())
	if ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	db, _, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	enqueued, err := db.RequestUpdate(context.Background(), ticker)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if enqueued {
		fmt.Printf("Queued refresh for %s\n", strings.ToUpper(ticker))
	} else {
		fmt.Printf("Refresh for %s already pending\n", strings.ToUpper(ticker))
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
