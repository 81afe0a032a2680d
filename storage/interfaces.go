package storage

import (
	"context"

	"github.com/ScottTolleback1/portfolio/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ListingRepository provides operations for the ticker/company-name corpus.
type ListingRepository interface {
	Repository
	// PutListings stores one or more listings, overwriting any existing
	// record with the same ticker. Tickers are keyed case-insensitively.
	PutListings(ctx context.Context, listings ...*core.Listing) error

	// GetListing retrieves a single listing by ticker.
	// Returns ErrNotFound if the listing doesn't exist.
	GetListing(ctx context.Context, ticker string) (*core.Listing, error)

	// AllListings retrieves the full corpus in key order.
	AllListings(ctx context.Context) ([]core.Listing, error)

	// CountListings returns the number of stored listings.
	CountListings(ctx context.Context) (int, error)
}

// PriceRepository provides operations for daily closing prices.
type PriceRepository interface {
	Repository
	// PutPrices stores one or more price points, overwriting any existing
	// point with the same ticker and date.
	PutPrices(ctx context.Context, points ...*core.PricePoint) error

	// GetPrices retrieves all price points for a ticker, ordered by date
	// ascending. Returns an empty slice if none exist.
	GetPrices(ctx context.Context, ticker string) ([]core.PricePoint, error)

	// LatestPrice retrieves the most recent price point for a ticker.
	// Returns ErrNotFound if no prices exist for the ticker.
	LatestPrice(ctx context.Context, ticker string) (*core.PricePoint, error)
}

// FundamentalsRepository provides operations for financial statement snapshots.
type FundamentalsRepository interface {
	Repository
	// PutFundamentals stores a fundamentals snapshot, overwriting any
	// existing snapshot for the same ticker.
	PutFundamentals(ctx context.Context, f *core.Fundamentals) error

	// GetFundamentals retrieves the fundamentals snapshot for a ticker.
	// Returns ErrNotFound if no snapshot exists.
	GetFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error)

	// HasFundamentals reports whether a snapshot exists for a ticker.
	HasFundamentals(ctx context.Context, ticker string) (bool, error)
}

// UpdateQueue provides operations for pending data-refresh requests.
type UpdateQueue interface {
	Repository
	// Enqueue records a refresh request for a ticker. Returns false if a
	// request for the ticker is already pending, true if a new request
	// was created. A processed request may be re-enqueued.
	Enqueue(ctx context.Context, ticker string) (bool, error)

	// Pending retrieves all unprocessed requests in key order.
	Pending(ctx context.Context) ([]core.UpdateRequest, error)

	// MarkProcessed marks the request for a ticker as processed.
	// The record is kept for audit. Returns ErrNotFound if no request
	// exists for the ticker.
	MarkProcessed(ctx context.Context, ticker string) error
}
