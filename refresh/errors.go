package refresh

import "errors"

var (
	// ErrInvalidMaxAttempts indicates a non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrDataUnavailable indicates the awaited data never appeared
	// within the attempt budget.
	ErrDataUnavailable = errors.New("data unavailable after all attempts")

	// ErrFetcherRequired indicates a nil fetcher was passed.
	ErrFetcherRequired = errors.New("fetcher is required")

	// ErrQueueRequired indicates a nil update queue was passed.
	ErrQueueRequired = errors.New("update queue is required")

	// ErrPriceRepositoryRequired indicates a nil price repository was passed.
	ErrPriceRepositoryRequired = errors.New("price repository is required")

	// ErrFundamentalsRepositoryRequired indicates a nil fundamentals repository was passed.
	ErrFundamentalsRepositoryRequired = errors.New("fundamentals repository is required")
)
