package badger

import "github.com/ScottTolleback1/portfolio/storage"

// NewMemoryRepositories creates in-memory repositories for testing.
// Returns listings, prices, fundamentals, queue, backend, and error.
// Caller must close the backend when done; the repositories hold no
// resources of their own.
func NewMemoryRepositories() (storage.ListingRepository, storage.PriceRepository, storage.FundamentalsRepository, storage.UpdateQueue, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	listings, err := NewListingRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, nil, err
	}

	prices, err := NewPriceRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, nil, err
	}

	fundamentals, err := NewFundamentalsRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, nil, err
	}

	queue, err := NewUpdateQueue(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, nil, nil, err
	}

	return listings, prices, fundamentals, queue, backend, nil
}
