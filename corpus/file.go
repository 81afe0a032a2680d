package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ScottTolleback1/portfolio/core"
)

// FileSource reads a CSV symbol directory (the nasdaq-listed-symbols.csv
// shape: a header row followed by symbol and company name columns).
type FileSource struct {
	path      string
	cleanName bool
	logger    *slog.Logger
}

var _ Source = (*FileSource)(nil)

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithRawNames disables company-name cleaning, keeping directory names
// verbatim. Default is to apply CleanCompanyName to every row.
func WithRawNames() FileOption {
	return func(f *FileSource) {
		f.cleanName = false
	}
}

// WithFileLogger sets a custom logger.
// Default is slog.Default().
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(f *FileSource) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// NewFileSource creates a Source reading from the CSV file at path.
// The file is read on every Listings call, not at construction.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	f := &FileSource{
		path:      path,
		cleanName: true,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Listings parses the file into listings. Rows with an empty symbol or an
// empty name after cleaning are skipped, not treated as fatal.
func (f *FileSource) Listings(ctx context.Context) ([]core.Listing, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	symbolCol, nameCol := resolveColumns(header)

	var listings []core.Listing
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
		}
		if len(row) <= symbolCol || len(row) <= nameCol {
			skipped++
			continue
		}

		ticker := strings.TrimSpace(row[symbolCol])
		name := strings.TrimSpace(row[nameCol])
		if f.cleanName {
			name = CleanCompanyName(name)
		}
		if ticker == "" || name == "" {
			skipped++
			continue
		}

		listings = append(listings, core.Listing{Ticker: ticker, Name: name})
	}

	f.logger.Info("loaded symbol directory",
		"path", f.path, "listings", len(listings), "skipped", skipped)
	return listings, nil
}

// resolveColumns locates the symbol and company name columns by header,
// falling back to the first two columns.
func resolveColumns(header []string) (symbolCol, nameCol int) {
	symbolCol, nameCol = 0, 1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "symbol", "ticker":
			symbolCol = i
		case "company name", "company", "security name", "name":
			nameCol = i
		}
	}
	return symbolCol, nameCol
}
