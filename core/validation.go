package core

import (
	"fmt"
	"strings"
)

// ValidateListing validates a Listing according to domain rules.
//
// Validation rules:
//   - Ticker must not be empty after trimming
//   - Name must not be empty after trimming
//
// Uniqueness of tickers is NOT validated here; the matcher index decides
// what to do with duplicates at load time.
func ValidateListing(listing *Listing) error {
	if listing == nil {
		return fmt.Errorf("%w: listing is nil", ErrInvalidListing)
	}

	if strings.TrimSpace(listing.Ticker) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyTicker)
	}

	if strings.TrimSpace(listing.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidListing, ErrEmptyName)
	}

	return nil
}

// ValidatePricePoint validates a PricePoint according to domain rules.
func ValidatePricePoint(point *PricePoint) error {
	if point == nil {
		return fmt.Errorf("%w: price point is nil", ErrInvalidPricePoint)
	}

	if strings.TrimSpace(point.Ticker) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPricePoint, ErrEmptyTicker)
	}

	return nil
}

// ValidateFundamentals validates a Fundamentals record according to domain rules.
//
// Validation rules:
//   - Ticker must not be empty after trimming
//   - SharesOutstanding must not be negative
//
// Statement values are NOT validated; zero statements are legal and simply
// produce zero-valued ratios downstream.
func ValidateFundamentals(f *Fundamentals) error {
	if f == nil {
		return fmt.Errorf("%w: fundamentals is nil", ErrInvalidFundamentals)
	}

	if strings.TrimSpace(f.Ticker) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFundamentals, ErrEmptyTicker)
	}

	if f.SharesOutstanding < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFundamentals, ErrNegativeShares)
	}

	return nil
}
