package valuation

import (
	"fmt"
	"math"
	"strings"

	"github.com/ScottTolleback1/portfolio/core"
)

// DefaultDCFYears is the projection horizon used when no explicit horizon
// is given.
const DefaultDCFYears = 5

// Stock wraps a fundamentals snapshot with valuation arithmetic.
// The zero value is usable and yields zeroed metrics.
type Stock struct {
	core.Fundamentals
}

// FromFundamentals builds a Stock from a stored snapshot.
func FromFundamentals(f *core.Fundamentals) Stock {
	if f == nil {
		return Stock{}
	}
	return Stock{Fundamentals: *f}
}

// MarketCap returns price times shares outstanding.
func (s Stock) MarketCap() float64 {
	return s.Price * s.SharesOutstanding
}

// BookValuePerShare returns (assets - liabilities) / shares.
func (s Stock) BookValuePerShare() float64 {
	if s.SharesOutstanding <= 0 {
		return 0
	}
	return (s.BalanceSheet.TotalAssets - s.BalanceSheet.TotalLiabilities) / s.SharesOutstanding
}

// FreeCashFlow returns operating cash flow minus the magnitude of capital
// expenditures. Data providers report capex with inconsistent sign, so the
// absolute value is always subtracted.
func (s Stock) FreeCashFlow() float64 {
	return s.Cashflow.OperatingCashFlow - math.Abs(s.Cashflow.CapitalExpenditures)
}

// EnterpriseValue returns market cap plus total debt minus cash.
func (s Stock) EnterpriseValue() float64 {
	return s.MarketCap() + s.BalanceSheet.TotalDebt - s.BalanceSheet.TotalCash
}

// PERatio returns price over earnings per share.
func (s Stock) PERatio() float64 {
	if s.SharesOutstanding <= 0 {
		return 0
	}
	eps := s.Income.NetIncome / s.SharesOutstanding
	if eps <= 0 {
		return 0
	}
	return s.Price / eps
}

// PBRatio returns price over book value per share.
func (s Stock) PBRatio() float64 {
	bvps := s.BookValuePerShare()
	if bvps <= 0 {
		return 0
	}
	return s.Price / bvps
}

// EVToEBITDA returns enterprise value over EBITDA.
func (s Stock) EVToEBITDA() float64 {
	if s.Income.EBITDA <= 0 {
		return 0
	}
	return s.EnterpriseValue() / s.Income.EBITDA
}

// IntrinsicValueDCF estimates per-share value with a Gordon-growth DCF:
// free cash flow grown for the given number of years, discounted back,
// plus a discounted terminal value. A non-positive horizon uses
// DefaultDCFYears. The model requires discount rate above growth rate;
// otherwise the terminal value is undefined and the estimate is 0.
func (s Stock) IntrinsicValueDCF(years int) float64 {
	if years <= 0 {
		years = DefaultDCFYears
	}
	if s.SharesOutstanding <= 0 || s.DiscountRate <= s.GrowthRate {
		return 0
	}

	// Signed capex here, matching the raw statement line.
	fcf0 := s.Cashflow.OperatingCashFlow - s.Cashflow.CapitalExpenditures

	pvSum := 0.0
	for t := 1; t <= years; t++ {
		pvSum += fcf0 * math.Pow(1+s.GrowthRate, float64(t)) / math.Pow(1+s.DiscountRate, float64(t))
	}

	fcfN := fcf0 * math.Pow(1+s.GrowthRate, float64(years))
	tv := fcfN * (1 + s.GrowthRate) / (s.DiscountRate - s.GrowthRate)
	pvTV := tv / math.Pow(1+s.DiscountRate, float64(years))

	equity := pvSum + pvTV - s.BalanceSheet.TotalDebt + s.BalanceSheet.TotalCash
	return equity / s.SharesOutstanding
}

// UndervaluationPercent returns how far the DCF estimate sits above the
// market price, as a percentage of the price. Positive means the model
// thinks the stock is cheap.
func (s Stock) UndervaluationPercent() float64 {
	if s.Price <= 0 {
		return 0
	}
	intrinsic := s.IntrinsicValueDCF(DefaultDCFYears)
	return (intrinsic - s.Price) / s.Price * 100
}

// Summary renders all metrics as a fixed-width text block.
func (s Stock) Summary() string {
	var b strings.Builder
	rule := strings.Repeat("-", 60) + "\n"

	underval := s.UndervaluationPercent()
	sign := ""
	if underval >= 0 {
		sign = "+"
	}

	b.WriteString(rule)
	fmt.Fprintf(&b, " Stock Summary: %s\n", s.Ticker)
	b.WriteString(rule)
	fmt.Fprintf(&b, " Market Price:           %12.2f %s\n", s.Price, s.Currency)
	fmt.Fprintf(&b, " Shares Outstanding:     %12.2f M\n", s.SharesOutstanding/1e6)
	fmt.Fprintf(&b, " Market Cap:             %12.2f B\n", s.MarketCap()/1e9)
	b.WriteString(rule)
	fmt.Fprintf(&b, " Book Value/Share:       %12.2f\n", s.BookValuePerShare())
	fmt.Fprintf(&b, " Free Cash Flow:         %12.2f B\n", s.FreeCashFlow()/1e9)
	fmt.Fprintf(&b, " Enterprise Value:       %12.2f B\n", s.EnterpriseValue()/1e9)
	b.WriteString(rule)
	fmt.Fprintf(&b, " P/E Ratio:              %12.2f\n", s.PERatio())
	fmt.Fprintf(&b, " P/B Ratio:              %12.2f\n", s.PBRatio())
	fmt.Fprintf(&b, " EV/EBITDA:              %12.2f\n", s.EVToEBITDA())
	b.WriteString(rule)
	fmt.Fprintf(&b, " Intrinsic Value (DCF):  %12.2f %s\n", s.IntrinsicValueDCF(DefaultDCFYears), s.Currency)
	fmt.Fprintf(&b, " Undervaluation:         %s%11.2f %%\n", sign, underval)
	b.WriteString(rule)

	return b.String()
}
