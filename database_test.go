package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/corpus"
	"github.com/ScottTolleback1/portfolio/refresh"
)

// testFetcher serves canned data for any ticker.
type testFetcher struct{}

var _ refresh.Fetcher = (*testFetcher)(nil)

func (testFetcher) FetchPrice(ctx context.Context, ticker string) (*core.PricePoint, error) {
	return &core.PricePoint{Ticker: ticker, Date: "2026-08-21", Close: 42}, nil
}

func (testFetcher) FetchFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	return &core.Fundamentals{
		Ticker:            ticker,
		Currency:          "USD",
		Price:             42,
		SharesOutstanding: 1e6,
		GrowthRate:        0.02,
		DiscountRate:      0.1,
		Cashflow:          core.CashflowStatement{OperatingCashFlow: 1e6},
	}, nil
}

func newTestDatabase(t *testing.T, opts ...DatabaseOption) *Database {
	t.Helper()
	opts = append([]DatabaseOption{WithInMemoryStorage()}, opts...)
	db, err := NewDatabase("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// drainQueue runs a refresh pipeline in the background until it has
// processed at least one request or the test context ends.
func drainQueue(t *testing.T, db *Database) {
	t.Helper()
	pipeline, err := db.NewRefreshPipeline(testFetcher{})
	require.NoError(t, err)

	stop := make(chan struct{})
	t.Cleanup(func() { close(stop); pipeline.Release() })

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			if n, err := pipeline.ProcessPending(context.Background()); err != nil || n > 0 {
				return
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
}

func TestImportAndMatch(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	count, err := db.ImportListings(ctx, corpus.SliceSource{
		{Ticker: "AAPL", Name: "APPLE"},
		{Ticker: "MSFT", Name: "MICROSOFT"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	matcher, err := db.NewMatcher(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, matcher.Len())

	result := matcher.FindBestMatch("MICROSFT")
	assert.Equal(t, "MSFT", result.Ticker)

	result = matcher.FindBestMatch("aapl")
	assert.Equal(t, 1.0, result.Score)
}

func TestRequestUpdate(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	enqueued, err := db.RequestUpdate(ctx, "AAPL")
	require.NoError(t, err)
	assert.True(t, enqueued)

	enqueued, err = db.RequestUpdate(ctx, "AAPL")
	require.NoError(t, err)
	assert.False(t, enqueued)
}

func TestEnsurePrice_AlreadyStored(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	err := db.PriceRepository().PutPrices(ctx,
		&core.PricePoint{Ticker: "AAPL", Date: "2026-08-20", Close: 231.5})
	require.NoError(t, err)

	point, err := db.EnsurePrice(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 231.5, point.Close)
}

func TestEnsurePrice_DeliveredByPipeline(t *testing.T) {
	db := newTestDatabase(t, WithRefreshPolicy(20, 5*time.Millisecond))
	drainQueue(t, db)

	point, err := db.EnsurePrice(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 42.0, point.Close)
}

func TestEnsurePrice_BudgetExhausted(t *testing.T) {
	// No pipeline is running, so the wait must give up.
	db := newTestDatabase(t, WithRefreshPolicy(2, time.Millisecond))

	_, err := db.EnsurePrice(context.Background(), "AAPL")
	assert.ErrorIs(t, err, refresh.ErrDataUnavailable)

	// The request is still queued for a later pipeline run.
	pending, err := db.UpdateQueue().Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "AAPL", pending[0].Ticker)
}

func TestEnsureFundamentals_DeliveredByPipeline(t *testing.T) {
	db := newTestDatabase(t, WithRefreshPolicy(20, 5*time.Millisecond))
	drainQueue(t, db)

	f, err := db.EnsureFundamentals(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", f.Ticker)
	assert.Equal(t, "USD", f.Currency)
}

func TestValuation(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	err := db.FundamentalsRepository().PutFundamentals(ctx, &core.Fundamentals{
		Ticker:            "ACME",
		Currency:          "USD",
		Price:             50,
		SharesOutstanding: 10,
		DiscountRate:      0.1,
		BalanceSheet: core.BalanceSheet{
			TotalAssets:      1000,
			TotalLiabilities: 600,
		},
	})
	require.NoError(t, err)

	stock, err := db.Valuation(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, 40.0, stock.BookValuePerShare())
	assert.Contains(t, stock.Summary(), "ACME")
}
