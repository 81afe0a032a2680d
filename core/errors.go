package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidListing indicates a Listing failed validation.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrInvalidPricePoint indicates a PricePoint failed validation.
	ErrInvalidPricePoint = errors.New("invalid price point")

	// ErrInvalidFundamentals indicates a Fundamentals record failed validation.
	ErrInvalidFundamentals = errors.New("invalid fundamentals")

	// ErrEmptyTicker indicates the Ticker field is empty.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrEmptyName indicates the company Name field is empty.
	ErrEmptyName = errors.New("company name cannot be empty")

	// ErrNegativeShares indicates a negative shares outstanding value.
	ErrNegativeShares = errors.New("shares outstanding cannot be negative")
)
