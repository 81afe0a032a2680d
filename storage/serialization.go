package storage

import (
	"fmt"

	"github.com/ScottTolleback1/portfolio/core"
)

// MarshalListing serializes a Listing to bytes.
func MarshalListing(listing *core.Listing) []byte {
	buf := make([]byte, core.ListingMUS.Size(*listing))
	core.ListingMUS.Marshal(*listing, buf)
	return buf
}

// UnmarshalListing deserializes a Listing from bytes.
func UnmarshalListing(data []byte) (*core.Listing, error) {
	listing, _, err := core.ListingMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &listing, nil
}

// MarshalPricePoint serializes a PricePoint to bytes.
func MarshalPricePoint(point *core.PricePoint) []byte {
	buf := make([]byte, core.PricePointMUS.Size(*point))
	core.PricePointMUS.Marshal(*point, buf)
	return buf
}

// UnmarshalPricePoint deserializes a PricePoint from bytes.
func UnmarshalPricePoint(data []byte) (*core.PricePoint, error) {
	point, _, err := core.PricePointMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &point, nil
}

// MarshalFundamentals serializes a Fundamentals snapshot to bytes.
func MarshalFundamentals(f *core.Fundamentals) []byte {
	buf := make([]byte, core.FundamentalsMUS.Size(*f))
	core.FundamentalsMUS.Marshal(*f, buf)
	return buf
}

// UnmarshalFundamentals deserializes a Fundamentals snapshot from bytes.
func UnmarshalFundamentals(data []byte) (*core.Fundamentals, error) {
	f, _, err := core.FundamentalsMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &f, nil
}

// MarshalUpdateRequest serializes an UpdateRequest to bytes.
func MarshalUpdateRequest(req *core.UpdateRequest) []byte {
	buf := make([]byte, core.UpdateRequestMUS.Size(*req))
	core.UpdateRequestMUS.Marshal(*req, buf)
	return buf
}

// UnmarshalUpdateRequest deserializes an UpdateRequest from bytes.
func UnmarshalUpdateRequest(data []byte) (*core.UpdateRequest, error) {
	req, _, err := core.UpdateRequestMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &req, nil
}
