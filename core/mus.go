package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain types. The records are small
// and flat, so the serializers are maintained by hand instead of generated.
// Timestamps are stored as Unix microseconds.

// IDMUS serializes IDs.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	return ID(num), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// ListingMUS serializes Listings.
var ListingMUS = listingMUS{}

type listingMUS struct{}

func (listingMUS) Marshal(v Listing, bs []byte) (n int) {
	n = ord.String.Marshal(v.Ticker, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	return n
}

func (listingMUS) Unmarshal(bs []byte) (v Listing, n int, err error) {
	v.Ticker, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	return v, n + n1, err
}

func (listingMUS) Size(v Listing) (size int) {
	return ord.String.Size(v.Ticker) + ord.String.Size(v.Name)
}

// PricePointMUS serializes PricePoints.
var PricePointMUS = pricePointMUS{}

type pricePointMUS struct{}

func (pricePointMUS) Marshal(v PricePoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.Ticker, bs)
	n += ord.String.Marshal(v.Date, bs[n:])
	n += raw.Float64.Marshal(v.Close, bs[n:])
	return n
}

func (pricePointMUS) Unmarshal(bs []byte) (v PricePoint, n int, err error) {
	v.Ticker, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	var n1 int
	v.Date, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.Close, n1, err = raw.Float64.Unmarshal(bs[n:])
	return v, n + n1, err
}

func (pricePointMUS) Size(v PricePoint) (size int) {
	return ord.String.Size(v.Ticker) + ord.String.Size(v.Date) +
		raw.Float64.Size(v.Close)
}

// FundamentalsMUS serializes Fundamentals records, statements included.
var FundamentalsMUS = fundamentalsMUS{}

type fundamentalsMUS struct{}

func (fundamentalsMUS) Marshal(v Fundamentals, bs []byte) (n int) {
	n = ord.String.Marshal(v.Ticker, bs)
	n += ord.String.Marshal(v.Currency, bs[n:])
	n += ord.String.Marshal(v.Sector, bs[n:])
	for _, f := range v.scalars() {
		n += raw.Float64.Marshal(f, bs[n:])
	}
	n += ord.String.Marshal(v.BalanceSheet.Date, bs[n:])
	for _, f := range v.BalanceSheet.scalars() {
		n += raw.Float64.Marshal(f, bs[n:])
	}
	n += ord.String.Marshal(v.Income.Date, bs[n:])
	for _, f := range v.Income.scalars() {
		n += raw.Float64.Marshal(f, bs[n:])
	}
	n += ord.String.Marshal(v.Cashflow.Date, bs[n:])
	for _, f := range v.Cashflow.scalars() {
		n += raw.Float64.Marshal(f, bs[n:])
	}
	return n
}

func (fundamentalsMUS) Unmarshal(bs []byte) (v Fundamentals, n int, err error) {
	var n1 int
	unmarshalString := func(dst *string) {
		if err != nil {
			return
		}
		*dst, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
	}
	unmarshalFloats := func(dsts ...*float64) {
		for _, dst := range dsts {
			if err != nil {
				return
			}
			*dst, n1, err = raw.Float64.Unmarshal(bs[n:])
			n += n1
		}
	}

	unmarshalString(&v.Ticker)
	unmarshalString(&v.Currency)
	unmarshalString(&v.Sector)
	unmarshalFloats(&v.Price, &v.SharesOutstanding, &v.Beta,
		&v.GrowthRate, &v.DiscountRate, &v.TaxRate)
	unmarshalString(&v.BalanceSheet.Date)
	unmarshalFloats(&v.BalanceSheet.TotalAssets, &v.BalanceSheet.TotalLiabilities,
		&v.BalanceSheet.TotalDebt, &v.BalanceSheet.TotalCash)
	unmarshalString(&v.Income.Date)
	unmarshalFloats(&v.Income.EBIT, &v.Income.EBITDA,
		&v.Income.NetIncome, &v.Income.TotalRevenue)
	unmarshalString(&v.Cashflow.Date)
	unmarshalFloats(&v.Cashflow.OperatingCashFlow, &v.Cashflow.CapitalExpenditures)
	return v, n, err
}

func (fundamentalsMUS) Size(v Fundamentals) (size int) {
	size = ord.String.Size(v.Ticker) + ord.String.Size(v.Currency) +
		ord.String.Size(v.Sector) +
		ord.String.Size(v.BalanceSheet.Date) + ord.String.Size(v.Income.Date) +
		ord.String.Size(v.Cashflow.Date)
	for _, f := range v.scalars() {
		size += raw.Float64.Size(f)
	}
	for _, f := range v.BalanceSheet.scalars() {
		size += raw.Float64.Size(f)
	}
	for _, f := range v.Income.scalars() {
		size += raw.Float64.Size(f)
	}
	for _, f := range v.Cashflow.scalars() {
		size += raw.Float64.Size(f)
	}
	return size
}

// scalars returns the float fields in wire order.
func (v Fundamentals) scalars() [6]float64 {
	return [6]float64{v.Price, v.SharesOutstanding, v.Beta,
		v.GrowthRate, v.DiscountRate, v.TaxRate}
}

func (v BalanceSheet) scalars() [4]float64 {
	return [4]float64{v.TotalAssets, v.TotalLiabilities, v.TotalDebt, v.TotalCash}
}

func (v IncomeStatement) scalars() [4]float64 {
	return [4]float64{v.EBIT, v.EBITDA, v.NetIncome, v.TotalRevenue}
}

func (v CashflowStatement) scalars() [2]float64 {
	return [2]float64{v.OperatingCashFlow, v.CapitalExpenditures}
}

// UpdateRequestMUS serializes UpdateRequests.
var UpdateRequestMUS = updateRequestMUS{}

type updateRequestMUS struct{}

func (updateRequestMUS) Marshal(v UpdateRequest, bs []byte) (n int) {
	n = ord.String.Marshal(v.Ticker, bs)
	n += varint.Int64.Marshal(v.RequestedAt.UnixMicro(), bs[n:])
	n += ord.Bool.Marshal(v.Processed, bs[n:])
	return n
}

func (updateRequestMUS) Unmarshal(bs []byte) (v UpdateRequest, n int, err error) {
	v.Ticker, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	var n1 int
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.RequestedAt = time.UnixMicro(micros).UTC()
	v.Processed, n1, err = ord.Bool.Unmarshal(bs[n:])
	return v, n + n1, err
}

func (updateRequestMUS) Size(v UpdateRequest) (size int) {
	return ord.String.Size(v.Ticker) +
		varint.Int64.Size(v.RequestedAt.UnixMicro()) +
		ord.Bool.Size(v.Processed)
}
