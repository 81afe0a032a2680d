package refresh

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ScottTolleback1/portfolio/storage"
)

// Pipeline drains the update queue: for each pending request it fetches
// fresh data through the Fetcher and writes it to the repositories.
type Pipeline struct {
	queue        storage.UpdateQueue
	prices       storage.PriceRepository
	fundamentals storage.FundamentalsRepository
	fetcher      Fetcher
	pool         *ants.Pool
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent fetching.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new refresh pipeline.
func NewPipeline(
	queue storage.UpdateQueue,
	prices storage.PriceRepository,
	fundamentals storage.FundamentalsRepository,
	fetcher Fetcher,
	opts ...Option,
) (*Pipeline, error) {
	if queue == nil {
		return nil, ErrQueueRequired
	}
	if prices == nil {
		return nil, ErrPriceRepositoryRequired
	}
	if fundamentals == nil {
		return nil, ErrFundamentalsRepositoryRequired
	}
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		queue:        queue,
		prices:       prices,
		fundamentals: fundamentals,
		fetcher:      fetcher,
		pool:         pool,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ProcessPending fetches data for every pending request and marks each
// successfully refreshed request as processed. Failed tickers are logged
// and left pending so a later run retries them. Returns the number of
// requests processed, and an error only if the queue itself cannot be read.
func (p *Pipeline) ProcessPending(ctx context.Context) (int, error) {
	pending, err := p.queue.Pending(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	processed := 0

	for _, req := range pending {
		ticker := req.Ticker
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.refreshTicker(ctx, ticker); err != nil {
				p.logger.Error("refresh failed, request left pending",
					"ticker", ticker, "err", err)
				return
			}
			mu.Lock()
			processed++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("failed to submit refresh task", "ticker", ticker, "err", submitErr)
		}
	}

	wg.Wait()
	p.logger.Info("refresh pass complete", "pending", len(pending), "processed", processed)
	return processed, nil
}

// refreshTicker fetches and stores data for one ticker, then marks its
// request processed.
func (p *Pipeline) refreshTicker(ctx context.Context, ticker string) error {
	point, err := p.fetcher.FetchPrice(ctx, ticker)
	if err != nil {
		return err
	}
	if err := p.prices.PutPrices(ctx, point); err != nil {
		return err
	}

	f, err := p.fetcher.FetchFundamentals(ctx, ticker)
	if err != nil {
		return err
	}
	if err := p.fundamentals.PutFundamentals(ctx, f); err != nil {
		return err
	}

	return p.queue.MarkProcessed(ctx, ticker)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
