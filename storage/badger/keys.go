package badger

import (
	"fmt"
	"strings"
)

// Key prefixes for different data types
const (
	listingRecordPrefix      = "lstrec"
	priceRecordPrefix        = "prcrec"
	fundamentalsRecordPrefix = "fndrec"
	updateRequestPrefix      = "reqrec"
)

// tickerKey normalizes a ticker for use in keys.
// Tickers are keyed case-insensitively.
func tickerKey(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// makeListingKey generates a key for a listing by ticker.
func makeListingKey(ticker string) []byte {
	return []byte(fmt.Sprintf("%s:%s", listingRecordPrefix, tickerKey(ticker)))
}

// makePriceKey generates a composite key for a price point.
// Format: prefix:ticker:date. ISO dates sort lexicographically, so
// iteration over a ticker's prefix yields points in date order.
func makePriceKey(ticker, date string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", priceRecordPrefix, tickerKey(ticker), date))
}

// makePartialPriceKey generates a prefix covering all price points of a ticker.
func makePartialPriceKey(ticker string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", priceRecordPrefix, tickerKey(ticker)))
}

// makeFundamentalsKey generates a key for a fundamentals snapshot by ticker.
func makeFundamentalsKey(ticker string) []byte {
	return []byte(fmt.Sprintf("%s:%s", fundamentalsRecordPrefix, tickerKey(ticker)))
}

// makeUpdateRequestKey generates a key for an update request by ticker.
func makeUpdateRequestKey(ticker string) []byte {
	return []byte(fmt.Sprintf("%s:%s", updateRequestPrefix, tickerKey(ticker)))
}
