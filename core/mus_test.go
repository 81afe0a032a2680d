package core

import (
	"testing"
	"time"
)

func TestFundamentalsMUS_Roundtrip(t *testing.T) {
	want := Fundamentals{
		Ticker:            "AAPL",
		Currency:          "USD",
		Sector:            "Technology",
		Price:             231.10,
		SharesOutstanding: 15.2e9,
		Beta:              1.24,
		GrowthRate:        0.05,
		DiscountRate:      0.08,
		TaxRate:           0.21,
		BalanceSheet: BalanceSheet{
			Date:             "2024-09-28",
			TotalAssets:      364.98e9,
			TotalLiabilities: 308.03e9,
			TotalDebt:        106.63e9,
			TotalCash:        65.17e9,
		},
		Income: IncomeStatement{
			Date:         "2024-09-28",
			EBIT:         123.22e9,
			EBITDA:       134.66e9,
			NetIncome:    93.74e9,
			TotalRevenue: 391.04e9,
		},
		Cashflow: CashflowStatement{
			Date:                "2024-09-28",
			OperatingCashFlow:   118.25e9,
			CapitalExpenditures: -9.45e9,
		},
	}

	bs := make([]byte, FundamentalsMUS.Size(want))
	n := FundamentalsMUS.Marshal(want, bs)
	if n != len(bs) {
		t.Fatalf("Marshal wrote %d bytes, Size predicted %d", n, len(bs))
	}

	got, n, err := FundamentalsMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if n != len(bs) {
		t.Fatalf("Unmarshal consumed %d of %d bytes", n, len(bs))
	}
	if got != want {
		t.Errorf("roundtrip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestUpdateRequestMUS_Roundtrip(t *testing.T) {
	want := UpdateRequest{
		Ticker:      "MSFT",
		RequestedAt: time.Date(2025, 8, 22, 14, 30, 0, 0, time.UTC),
		Processed:   false,
	}

	bs := make([]byte, UpdateRequestMUS.Size(want))
	UpdateRequestMUS.Marshal(want, bs)

	got, _, err := UpdateRequestMUS.Unmarshal(bs)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !got.RequestedAt.Equal(want.RequestedAt) || got.Ticker != want.Ticker || got.Processed != want.Processed {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
}

func TestUpdateRequestMUS_TruncatedData(t *testing.T) {
	req := UpdateRequest{Ticker: "AAPL", RequestedAt: time.Now().UTC()}
	bs := make([]byte, UpdateRequestMUS.Size(req))
	UpdateRequestMUS.Marshal(req, bs)

	_, _, err := UpdateRequestMUS.Unmarshal(bs[:2])
	if err == nil {
		t.Error("Unmarshal should fail on truncated data")
	}
}
