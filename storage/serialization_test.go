package storage

import (
	"errors"
	"testing"

	"github.com/ScottTolleback1/portfolio/core"
)

func TestListingRoundTrip(t *testing.T) {
	listing := &core.Listing{Ticker: "AAPL", Name: "APPLE"}

	data := MarshalListing(listing)
	got, err := UnmarshalListing(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal listing: %v", err)
	}
	if *got != *listing {
		t.Fatalf("Expected %+v, got %+v", listing, got)
	}
}

func TestPricePointRoundTrip(t *testing.T) {
	point := &core.PricePoint{Ticker: "AAPL", Date: "2026-08-21", Close: 233.1}

	data := MarshalPricePoint(point)
	got, err := UnmarshalPricePoint(data)
	if err != nil {
		t.Fatalf("Failed to unmarshal price point: %v", err)
	}
	if *got != *point {
		t.Fatalf("Expected %+v, got %+v", point, got)
	}
}

func TestUnmarshalTruncatedData(t *testing.T) {
	listing := &core.Listing{Ticker: "AAPL", Name: "APPLE"}
	data := MarshalListing(listing)

	_, err := UnmarshalListing(data[:2])
	if !errors.Is(err, ErrSerializationFailed) {
		t.Fatalf("Expected ErrSerializationFailed, got %v", err)
	}
}
