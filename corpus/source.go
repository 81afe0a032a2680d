package corpus

import (
	"context"

	"github.com/ScottTolleback1/portfolio/core"
)

// Source supplies the corpus the matcher index is built from.
// The full sequence must be materialized before index construction; the
// index never goes back to the source after it is built.
type Source interface {
	// Listings returns all (ticker, company name) pairs.
	// Implementations may return pairs with empty fields; the index skips
	// those rather than failing.
	Listings(ctx context.Context) ([]core.Listing, error)
}

// SliceSource is a Source backed by an in-memory slice.
type SliceSource []core.Listing

var _ Source = (SliceSource)(nil)

// Listings returns the slice as-is.
func (s SliceSource) Listings(_ context.Context) ([]core.Listing, error) {
	return s, nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]core.Listing, error)

var _ Source = (SourceFunc)(nil)

// Listings calls the wrapped function.
func (f SourceFunc) Listings(ctx context.Context) ([]core.Listing, error) {
	return f(ctx)
}
