// Package valuation derives standard equity metrics from a fundamentals
// snapshot: book value, free cash flow, enterprise value, the common price
// multiples, and a discounted cash flow estimate of intrinsic value.
//
// All computations are pure arithmetic over the snapshot. Ratios with a
// zero or negative denominator evaluate to 0 rather than an error, so a
// partially populated snapshot degrades to zeroed metrics instead of
// failing the whole summary.
package valuation
