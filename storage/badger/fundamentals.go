package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/storage"
)

// FundamentalsRepository implements storage.FundamentalsRepository for BadgerDB.
type FundamentalsRepository struct {
	backend *Backend
}

var _ storage.FundamentalsRepository = (*FundamentalsRepository)(nil)

// NewFundamentalsRepository creates a new FundamentalsRepository.
func NewFundamentalsRepository(backend *Backend) (*FundamentalsRepository, error) {
	return &FundamentalsRepository{
		backend: backend,
	}, nil
}

// Close releases resources. FundamentalsRepository has no resources to release.
func (r *FundamentalsRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *FundamentalsRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutFundamentals stores a fundamentals snapshot.
func (r *FundamentalsRepository) PutFundamentals(ctx context.Context, f *core.Fundamentals) error {
	if err := core.ValidateFundamentals(f); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeFundamentalsKey(f.Ticker)
		if err := tx.Set(key, storage.MarshalFundamentals(f)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetFundamentals retrieves the fundamentals snapshot for a ticker.
func (r *FundamentalsRepository) GetFundamentals(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	var result *core.Fundamentals
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFundamentalsKey(ticker))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalFundamentals(val)
			return err
		})
	}, false)
	return result, err
}

// HasFundamentals reports whether a snapshot exists for a ticker.
func (r *FundamentalsRepository) HasFundamentals(ctx context.Context, ticker string) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeFundamentalsKey(ticker))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	}, false)
	return exists, err
}
