package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated deterministically from content so that the same ticker
// always maps to the same record key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Listing is one corpus record: a canonical ticker symbol and the company
// name it trades under. Listings are the raw material for the matcher index.
type Listing struct {
	Ticker string
	Name   string
}

// PricePoint is the most recent closing price known for a ticker.
type PricePoint struct {
	Ticker string
	Date   string // ISO date of the close
	Close  float64
}

// BalanceSheet holds the latest balance sheet line items for a company.
type BalanceSheet struct {
	Date             string
	TotalAssets      float64
	TotalLiabilities float64
	TotalDebt        float64
	TotalCash        float64
}

// IncomeStatement holds the latest income statement line items.
type IncomeStatement struct {
	Date         string
	EBIT         float64
	EBITDA       float64
	NetIncome    float64
	TotalRevenue float64
}

// CashflowStatement holds the latest cash flow line items.
type CashflowStatement struct {
	Date                string
	OperatingCashFlow   float64
	CapitalExpenditures float64
}

// Fundamentals aggregates everything the valuation layer needs for one
// company: market data, model parameters, and the three statements.
type Fundamentals struct {
	Ticker            string
	Currency          string
	Sector            string
	Price             float64
	SharesOutstanding float64
	Beta              float64
	GrowthRate        float64
	DiscountRate      float64
	TaxRate           float64
	BalanceSheet      BalanceSheet
	Income            IncomeStatement
	Cashflow          CashflowStatement
}

// UpdateRequest queues a ticker for the background data refresher.
// Requests are deduplicated by ticker while unprocessed.
type UpdateRequest struct {
	Ticker      string
	RequestedAt time.Time
	Processed   bool
}
