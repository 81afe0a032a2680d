// Package storage provides the storage abstraction layer for portfolio data.
//
// This package defines repository interfaces that decouple storage implementation
// from business logic. It allows for different storage backends (BadgerDB, in-memory,
// etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public constructors
// to enforce abstraction and enable multiple storage backend implementations:
//
//	repo, err := badger.NewListingRepository(backend)  // use as storage.ListingRepository
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to BadgerDB specifics
//   - Swappability: Easy to add alternative backends (SQL, in-memory, etc.)
//   - Testing: Consumers can use mock implementations without modification
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - Repository: Common operations shared by all repositories
//   - ListingRepository: The ticker/company-name corpus
//   - PriceRepository: Daily closing prices per ticker
//   - FundamentalsRepository: Financial statement snapshots per ticker
//   - UpdateQueue: Pending data-refresh requests
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
