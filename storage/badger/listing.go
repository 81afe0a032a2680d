package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/storage"
)

// ListingRepository implements storage.ListingRepository for BadgerDB.
type ListingRepository struct {
	backend *Backend
}

var _ storage.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(backend *Backend) (*ListingRepository, error) {
	return &ListingRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ListingRepository has no resources to release.
func (r *ListingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ListingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutListings stores one or more listings.
func (r *ListingRepository) PutListings(ctx context.Context, listings ...*core.Listing) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, listing := range listings {
			if err := core.ValidateListing(listing); err != nil {
				return err
			}
			key := makeListingKey(listing.Ticker)
			if err := tx.Set(key, storage.MarshalListing(listing)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetListing retrieves a single listing by ticker.
func (r *ListingRepository) GetListing(ctx context.Context, ticker string) (*core.Listing, error) {
	var result *core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readListing(tx, makeListingKey(ticker))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllListings retrieves the full corpus in key order.
func (r *ListingRepository) AllListings(ctx context.Context) ([]core.Listing, error) {
	var results []core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(listingRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var listing *core.Listing
			err := iter.Item().Value(func(val []byte) error {
				var err error
				listing, err = storage.UnmarshalListing(val)
				return err
			})
			if err != nil {
				return err
			}
			if listing != nil {
				results = append(results, *listing)
			}
		}
		return nil
	}, false)
	return results, err
}

// CountListings returns the number of stored listings.
func (r *ListingRepository) CountListings(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(listingRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readListing reads a listing from the transaction.
// Returns nil without error when the key does not exist.
func readListing(tx *badger.Txn, key []byte) (*core.Listing, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var listing *core.Listing
	err = item.Value(func(val []byte) error {
		var err error
		listing, err = storage.UnmarshalListing(val)
		return err
	})
	return listing, err
}
