package rating

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

func f(v float64) null.Float { return null.FloatFrom(v) }

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name string
		n, d null.Float
		want null.Float
	}{
		{"normal", f(10), f(5), f(2.0)},
		{"zero divisor", f(10), f(0), null.Float{}},
		{"null numerator", null.Float{}, f(5), null.Float{}},
		{"null divisor", f(10), null.Float{}, null.Float{}},
		{"negative", f(-50), f(1100), f(-50.0 / 1100.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDivide(tt.n, tt.d)
			if got.Valid != tt.want.Valid {
				t.Fatalf("SafeDivide validity = %v, want %v", got.Valid, tt.want.Valid)
			}
			if got.Valid && got.Float64 != tt.want.Float64 {
				t.Errorf("SafeDivide = %v, want %v", got.Float64, tt.want.Float64)
			}
		})
	}
}

func TestDeriveFeaturesComplete(t *testing.T) {
	raw := domain.RawFinancials{
		RevenueCurrent:   f(1100),
		RevenuePrior:     f(1000),
		NetIncomeCurrent: f(100),
		CFOCurrent:       f(90),
		CFICurrent:       f(-50),
		DebtCurrent:      f(200),
		DebtPrior:        f(180),
	}
	prices := domain.PriceSeries{
		{Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), Close: 104},
		{Date: time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC), Close: 108},
	}

	feats := DeriveFeatures(raw, prices)

	checks := []struct {
		name string
		got  null.Float
		want float64
	}{
		{"YoYGrowthPct", feats.YoYGrowthPct, 10.0},
		{"PATMarginPct", feats.PATMarginPct, 9.09},
		{"CFOPATRatio", feats.CFOPATRatio, 0.9},
		{"CFIRevenueRatio", feats.CFIRevenueRatio, -0.0455},
		{"BorrowingGrowthPct", feats.BorrowingGrowthPct, 11.11},
		{"StockReturn30DPct", feats.StockReturn30DPct, 8.0},
	}
	for _, c := range checks {
		if !c.got.Valid {
			t.Errorf("%s is null, want %v", c.name, c.want)
			continue
		}
		if c.got.Float64 != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got.Float64, c.want)
		}
	}
}

func TestDeriveFeaturesNullPropagation(t *testing.T) {
	// All-null input yields all-null features, not an error or zeros.
	feats := DeriveFeatures(domain.RawFinancials{}, nil)
	for name, got := range map[string]null.Float{
		"YoYGrowthPct":       feats.YoYGrowthPct,
		"PATMarginPct":       feats.PATMarginPct,
		"CFOPATRatio":        feats.CFOPATRatio,
		"CFIRevenueRatio":    feats.CFIRevenueRatio,
		"BorrowingGrowthPct": feats.BorrowingGrowthPct,
		"StockReturn30DPct":  feats.StockReturn30DPct,
	} {
		if got.Valid {
			t.Errorf("%s = %v, want null", name, got.Float64)
		}
	}
}

func TestDeriveFeaturesIndependence(t *testing.T) {
	// One missing operand nulls only the features that need it.
	raw := domain.RawFinancials{
		RevenueCurrent:   f(1000),
		NetIncomeCurrent: f(80),
		// RevenuePrior absent: no YoY growth.
		// Debt absent: no borrowing growth.
	}
	feats := DeriveFeatures(raw, nil)

	if feats.YoYGrowthPct.Valid {
		t.Error("YoYGrowthPct should be null without prior revenue")
	}
	if feats.BorrowingGrowthPct.Valid {
		t.Error("BorrowingGrowthPct should be null without debt values")
	}
	if !feats.PATMarginPct.Valid || feats.PATMarginPct.Float64 != 8.0 {
		t.Errorf("PATMarginPct = %+v, want 8.0", feats.PATMarginPct)
	}
}

func TestDeriveFeaturesZeroDenominators(t *testing.T) {
	raw := domain.RawFinancials{
		RevenueCurrent:   f(0),
		RevenuePrior:     f(0),
		NetIncomeCurrent: f(50),
		DebtCurrent:      f(100),
		DebtPrior:        f(0),
	}
	feats := DeriveFeatures(raw, nil)

	if feats.YoYGrowthPct.Valid {
		t.Error("YoYGrowthPct should be null with zero prior revenue")
	}
	if feats.PATMarginPct.Valid {
		t.Error("PATMarginPct should be null with zero current revenue")
	}
	if feats.BorrowingGrowthPct.Valid {
		t.Error("BorrowingGrowthPct should be null with zero prior debt")
	}
}

func TestDeriveFeaturesNegativePriorRevenue(t *testing.T) {
	// Growth is measured against the absolute prior value.
	raw := domain.RawFinancials{
		RevenueCurrent: f(50),
		RevenuePrior:   f(-100),
	}
	feats := DeriveFeatures(raw, nil)
	if !feats.YoYGrowthPct.Valid || feats.YoYGrowthPct.Float64 != 150.0 {
		t.Errorf("YoYGrowthPct = %+v, want 150", feats.YoYGrowthPct)
	}
}

func TestDeriveFeaturesSinglePricePoint(t *testing.T) {
	prices := domain.PriceSeries{{Date: time.Now(), Close: 100}}
	feats := DeriveFeatures(domain.RawFinancials{}, prices)
	if feats.StockReturn30DPct.Valid {
		t.Error("StockReturn30DPct should be null with fewer than two points")
	}
}

func TestDeriveFeaturesRounding(t *testing.T) {
	raw := domain.RawFinancials{
		RevenueCurrent:   f(1000),
		NetIncomeCurrent: f(333),
		CFICurrent:       f(-123.456),
	}
	feats := DeriveFeatures(raw, nil)

	// PAT margin 33.3 stays 33.3; CFI/revenue rounds to 4 places.
	if feats.PATMarginPct.Float64 != 33.3 {
		t.Errorf("PATMarginPct = %v, want 33.3", feats.PATMarginPct.Float64)
	}
	if feats.CFIRevenueRatio.Float64 != -0.1235 {
		t.Errorf("CFIRevenueRatio = %v, want -0.1235", feats.CFIRevenueRatio.Float64)
	}
}

func TestCroreFromRaw(t *testing.T) {
	if got := CroreFromRaw(f(1.5e12)); !got.Valid || got.Float64 != 150000 {
		t.Errorf("CroreFromRaw(1.5e12) = %+v, want 150000", got)
	}
	if got := CroreFromRaw(null.Float{}); got.Valid {
		t.Error("CroreFromRaw(null) should be null")
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		crore null.Float
		want  domain.Tier
	}{
		{f(100000), domain.TierLarge},
		{f(99999.99), domain.TierMid},
		{f(10000), domain.TierMid},
		{f(9999.99), domain.TierSmall},
		{f(250000), domain.TierLarge},
		{f(0), domain.TierSmall},
		{null.Float{}, domain.TierMid},
	}
	for _, tt := range tests {
		if got := TierFor(tt.crore); got != tt.want {
			t.Errorf("TierFor(%+v) = %v, want %v", tt.crore, got, tt.want)
		}
	}
}
