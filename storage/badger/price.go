package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/storage"
)

// PriceRepository implements storage.PriceRepository for BadgerDB.
type PriceRepository struct {
	backend *Backend
}

var _ storage.PriceRepository = (*PriceRepository)(nil)

// NewPriceRepository creates a new PriceRepository.
func NewPriceRepository(backend *Backend) (*PriceRepository, error) {
	return &PriceRepository{
		backend: backend,
	}, nil
}

// Close releases resources. PriceRepository has no resources to release.
func (r *PriceRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *PriceRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutPrices stores one or more price points.
func (r *PriceRepository) PutPrices(ctx context.Context, points ...*core.PricePoint) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, point := range points {
			if err := core.ValidatePricePoint(point); err != nil {
				return err
			}
			key := makePriceKey(point.Ticker, point.Date)
			if err := tx.Set(key, storage.MarshalPricePoint(point)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPrices retrieves all price points for a ticker, ordered by date ascending.
func (r *PriceRepository) GetPrices(ctx context.Context, ticker string) ([]core.PricePoint, error) {
	var results []core.PricePoint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialPriceKey(ticker)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var point *core.PricePoint
			err := iter.Item().Value(func(val []byte) error {
				var err error
				point, err = storage.UnmarshalPricePoint(val)
				return err
			})
			if err != nil {
				return err
			}
			if point != nil {
				results = append(results, *point)
			}
		}
		return nil
	}, false)
	return results, err
}

// LatestPrice retrieves the most recent price point for a ticker.
func (r *PriceRepository) LatestPrice(ctx context.Context, ticker string) (*core.PricePoint, error) {
	var result *core.PricePoint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialPriceKey(ticker)

		// Reverse iteration: seek just past the ticker's key range, the
		// first valid item is the latest date.
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		seek := append(append([]byte{}, prefix...), 0xff)
		iter.Seek(seek)
		if !iter.Valid() {
			return storage.ErrNotFound
		}

		return iter.Item().Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalPricePoint(val)
			return err
		})
	}, false)
	return result, err
}
