// Package portfolio ties the storage, matching, valuation, and refresh
// layers together behind a single Database facade.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/corpus"
	"github.com/ScottTolleback1/portfolio/match"
	"github.com/ScottTolleback1/portfolio/refresh"
	"github.com/ScottTolleback1/portfolio/storage"
	"github.com/ScottTolleback1/portfolio/storage/badger"
	"github.com/ScottTolleback1/portfolio/valuation"
)

// Database is the facade over one BadgerDB instance and its repositories.
type Database struct {
	backend      *badger.Backend
	listings     storage.ListingRepository
	prices       storage.PriceRepository
	fundamentals storage.FundamentalsRepository
	queue        storage.UpdateQueue
	waiter       *refresh.Waiter
	group        singleflight.Group
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory    bool
	maxAttempts int
	interval    time.Duration
}

// WithInMemoryStorage keeps all data in memory. Intended for tests.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithRefreshPolicy bounds how long Ensure calls wait for background data.
func WithRefreshPolicy(maxAttempts int, interval time.Duration) DatabaseOption {
	return func(o *databaseOptions) {
		o.maxAttempts = maxAttempts
		o.interval = interval
	}
}

// NewDatabase opens the storage backend at filePath and wires up all
// repositories.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		maxAttempts: refresh.DefaultMaxAttempts,
		interval:    refresh.DefaultInterval,
	}
	for _, opt := range opts {
		opt(options)
	}

	waiter, err := refresh.NewWaiter(options.maxAttempts, options.interval)
	if err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	listings, err := badger.NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	prices, err := badger.NewPriceRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	fundamentals, err := badger.NewFundamentalsRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	queue, err := badger.NewUpdateQueue(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		listings:     listings,
		prices:       prices,
		fundamentals: fundamentals,
		queue:        queue,
		waiter:       waiter,
		logger:       slog.Default(),
	}, nil
}

// Close closes the backend.
func (db *Database) Close() error {
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ListingRepository exposes the corpus store.
func (db *Database) ListingRepository() storage.ListingRepository {
	return db.listings
}

// PriceRepository exposes the price store.
func (db *Database) PriceRepository() storage.PriceRepository {
	return db.prices
}

// FundamentalsRepository exposes the fundamentals store.
func (db *Database) FundamentalsRepository() storage.FundamentalsRepository {
	return db.fundamentals
}

// UpdateQueue exposes the pending-refresh queue.
func (db *Database) UpdateQueue() storage.UpdateQueue {
	return db.queue
}

// ImportListings loads a corpus source into storage and returns the number
// of listings imported.
func (db *Database) ImportListings(ctx context.Context, src corpus.Source) (int, error) {
	loaded, err := src.Listings(ctx)
	if err != nil {
		return 0, err
	}

	batch := make([]*core.Listing, len(loaded))
	for i := range loaded {
		batch[i] = &loaded[i]
	}
	if err := db.listings.PutListings(ctx, batch...); err != nil {
		return 0, err
	}

	db.logger.Info("corpus imported", "listings", len(batch))
	return len(batch), nil
}

// NewMatcher builds a fuzzy-match index over the stored corpus.
func (db *Database) NewMatcher(ctx context.Context, opts ...match.Option) (*match.Index, error) {
	src := corpus.SourceFunc(func(ctx context.Context) ([]core.Listing, error) {
		return db.listings.AllListings(ctx)
	})
	return match.New(ctx, src, opts...)
}

// RequestUpdate enqueues a data refresh for a ticker. Returns false if a
// request was already pending.
func (db *Database) RequestUpdate(ctx context.Context, ticker string) (bool, error) {
	return db.queue.Enqueue(ctx, ticker)
}

// NewRefreshPipeline creates a pipeline draining this database's queue
// through the given fetcher.
func (db *Database) NewRefreshPipeline(fetcher refresh.Fetcher, opts ...refresh.Option) (*refresh.Pipeline, error) {
	return refresh.NewPipeline(db.queue, db.prices, db.fundamentals, fetcher, opts...)
}

// EnsurePrice returns the latest stored price for a ticker. When none is
// stored it enqueues a refresh request and polls until the background
// pipeline delivers one or the wait budget runs out. Concurrent callers
// for the same ticker share a single wait.
func (db *Database) EnsurePrice(ctx context.Context, ticker string) (*core.PricePoint, error) {
	point, err := db.prices.LatestPrice(ctx, ticker)
	if err == nil {
		return point, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	v, err, _ := db.group.Do("price:"+ticker, func() (any, error) {
		return db.awaitPrice(ctx, ticker)
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.PricePoint), nil
}

// EnsureFundamentals is EnsurePrice for the fundamentals snapshot.
func (db *Database) EnsureFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	f, err := db.fundamentals.GetFundamentals(ctx, ticker)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	v, err, _ := db.group.Do("fundamentals:"+ticker, func() (any, error) {
		return db.awaitFundamentals(ctx, ticker)
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.Fundamentals), nil
}

// Valuation returns valuation arithmetic over the ticker's fundamentals,
// ensuring the snapshot is present first.
func (db *Database) Valuation(ctx context.Context, ticker string) (valuation.Stock, error) {
	f, err := db.EnsureFundamentals(ctx, ticker)
	if err != nil {
		return valuation.Stock{}, err
	}
	return valuation.FromFundamentals(f), nil
}

func (db *Database) awaitPrice(ctx context.Context, ticker string) (*core.PricePoint, error) {
	if _, err := db.queue.Enqueue(ctx, ticker); err != nil {
		return nil, err
	}

	var found *core.PricePoint
	err := db.waiter.Await(ctx, func(ctx context.Context) (bool, error) {
		point, err := db.prices.LatestPrice(ctx, ticker)
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		found = point
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("awaiting price for %s: %w", ticker, err)
	}
	return found, nil
}

func (db *Database) awaitFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	if _, err := db.queue.Enqueue(ctx, ticker); err != nil {
		return nil, err
	}

	var found *core.Fundamentals
	err := db.waiter.Await(ctx, func(ctx context.Context) (bool, error) {
		f, err := db.fundamentals.GetFundamentals(ctx, ticker)
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		found = f
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("awaiting fundamentals for %s: %w", ticker, err)
	}
	return found, nil
}
