package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/storage"
)

// UpdateQueue implements storage.UpdateQueue for BadgerDB.
type UpdateQueue struct {
	backend *Backend
}

var _ storage.UpdateQueue = (*UpdateQueue)(nil)

// NewUpdateQueue creates a new UpdateQueue.
func NewUpdateQueue(backend *Backend) (*UpdateQueue, error) {
	return &UpdateQueue{
		backend: backend,
	}, nil
}

// Close releases resources. UpdateQueue has no resources to release.
func (q *UpdateQueue) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (q *UpdateQueue) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return q.backend.WithTransaction(ctx, fn)
}

// Enqueue records a refresh request for a ticker.
// A ticker with an unprocessed request is not enqueued twice.
func (q *UpdateQueue) Enqueue(ctx context.Context, ticker string) (bool, error) {
	if ticker == "" {
		return false, core.ErrEmptyTicker
	}

	enqueued := false
	err := q.backend.WithTx(func(tx *badger.Txn) error {
		key := makeUpdateRequestKey(ticker)

		existing, err := readUpdateRequest(tx, key)
		if err != nil {
			return err
		}
		if existing != nil && !existing.Processed {
			return nil
		}

		req := &core.UpdateRequest{
			Ticker:      tickerKey(ticker),
			RequestedAt: time.Now().UTC(),
			Processed:   false,
		}
		if err := tx.Set(key, storage.MarshalUpdateRequest(req)); err != nil {
			return err
		}
		enqueued = true
		return tx.Commit()
	}, true)
	return enqueued, err
}

// Pending retrieves all unprocessed requests in key order.
func (q *UpdateQueue) Pending(ctx context.Context) ([]core.UpdateRequest, error) {
	var results []core.UpdateRequest
	err := q.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(updateRequestPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var req *core.UpdateRequest
			err := iter.Item().Value(func(val []byte) error {
				var err error
				req, err = storage.UnmarshalUpdateRequest(val)
				return err
			})
			if err != nil {
				return err
			}
			if req != nil && !req.Processed {
				results = append(results, *req)
			}
		}
		return nil
	}, false)
	return results, err
}

// MarkProcessed marks the request for a ticker as processed.
func (q *UpdateQueue) MarkProcessed(ctx context.Context, ticker string) error {
	return q.backend.WithTx(func(tx *badger.Txn) error {
		key := makeUpdateRequestKey(ticker)

		req, err := readUpdateRequest(tx, key)
		if err != nil {
			return err
		}
		if req == nil {
			return storage.ErrNotFound
		}

		req.Processed = true
		if err := tx.Set(key, storage.MarshalUpdateRequest(req)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readUpdateRequest reads an update request from the transaction.
// Returns nil without error when the key does not exist.
func readUpdateRequest(tx *badger.Txn, key []byte) (*core.UpdateRequest, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var req *core.UpdateRequest
	err = item.Value(func(val []byte) error {
		var err error
		req, err = storage.UnmarshalUpdateRequest(val)
		return err
	})
	return req, err
}
