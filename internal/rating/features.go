// Package rating implements the credit scoring engine: feature derivation,
// market-cap tiering, component scoring, and grade classification. Every
// function here is pure and total: missing inputs flow through as nulls and
// score as the "NA" bucket, never as an error.
package rating

import (
	"math"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// SafeDivide returns n/d, or null when either operand is null or the
// divisor is zero.
func SafeDivide(n, d null.Float) null.Float {
	if !n.Valid || !d.Valid || d.Float64 == 0 {
		return null.Float{}
	}
	return null.FloatFrom(n.Float64 / d.Float64)
}

// roundTo rounds half away from zero to the given number of decimal places.
func roundTo(f null.Float, places int) null.Float {
	if !f.Valid {
		return null.Float{}
	}
	shift := math.Pow(10, float64(places))
	return null.FloatFrom(math.Round(f.Float64*shift) / shift)
}

// DeriveFeatures converts a raw financial snapshot and a price series into
// the six scored ratios. Each feature is computed independently: a missing
// operand nulls that feature only. Rounding happens here, once; threshold
// comparisons downstream see the rounded values.
func DeriveFeatures(raw domain.RawFinancials, prices domain.PriceSeries) domain.DerivedFeatures {
	var feats domain.DerivedFeatures

	// YoY revenue growth, against the absolute prior-period revenue.
	if raw.RevenueCurrent.Valid && raw.RevenuePrior.Valid && raw.RevenuePrior.Float64 != 0 {
		growth := (raw.RevenueCurrent.Float64 - raw.RevenuePrior.Float64) / math.Abs(raw.RevenuePrior.Float64) * 100
		feats.YoYGrowthPct = null.FloatFrom(growth)
	}

	if raw.RevenueCurrent.Valid && raw.RevenueCurrent.Float64 != 0 && raw.NetIncomeCurrent.Valid {
		feats.PATMarginPct = null.FloatFrom(raw.NetIncomeCurrent.Float64 / raw.RevenueCurrent.Float64 * 100)
	}

	feats.CFOPATRatio = SafeDivide(raw.CFOCurrent, raw.NetIncomeCurrent)
	feats.CFIRevenueRatio = SafeDivide(raw.CFICurrent, raw.RevenueCurrent)

	// Borrowing growth mirrors the revenue formula. The abs() denominator
	// assumes prior debt is reported positive; a negative prior value passes
	// through the same formula with an undefined sign interpretation.
	if raw.DebtCurrent.Valid && raw.DebtPrior.Valid && raw.DebtPrior.Float64 != 0 {
		growth := (raw.DebtCurrent.Float64 - raw.DebtPrior.Float64) / math.Abs(raw.DebtPrior.Float64) * 100
		feats.BorrowingGrowthPct = null.FloatFrom(growth)
	}

	if len(prices) > 1 {
		first := prices[0].Close
		last := prices[len(prices)-1].Close
		if first != 0 {
			feats.StockReturn30DPct = null.FloatFrom((last - first) / first * 100)
		}
	}

	feats.YoYGrowthPct = roundTo(feats.YoYGrowthPct, 2)
	feats.PATMarginPct = roundTo(feats.PATMarginPct, 2)
	feats.CFOPATRatio = roundTo(feats.CFOPATRatio, 2)
	feats.CFIRevenueRatio = roundTo(feats.CFIRevenueRatio, 4)
	feats.BorrowingGrowthPct = roundTo(feats.BorrowingGrowthPct, 2)
	feats.StockReturn30DPct = roundTo(feats.StockReturn30DPct, 2)

	return feats
}
