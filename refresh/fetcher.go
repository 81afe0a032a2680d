package refresh

import (
	"context"

	"github.com/ScottTolleback1/portfolio/core"
)

// Fetcher supplies fresh market data for a ticker. Implementations talk
// to an external data provider; everything in this package treats the
// fetcher as a black box.
type Fetcher interface {
	// FetchPrice returns the latest closing price for a ticker.
	FetchPrice(ctx context.Context, ticker string) (*core.PricePoint, error)

	// FetchFundamentals returns a current fundamentals snapshot for a ticker.
	FetchFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error)
}
