// Package domain defines the core data types shared across the credit
// rating pipeline: raw financial snapshots, derived features, market-cap
// tiers, component scores, and the final rating record.
package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// Tier is the market-capitalization bucket that selects which threshold
// table a scorer uses.
type Tier string

const (
	TierLarge Tier = "Large"
	TierMid   Tier = "Mid"
	TierSmall Tier = "Small"
)

// RawFinancials is a snapshot of reported figures for one ticker. Every
// field is optional: a provider that does not report a line item leaves it
// null, and downstream derivation propagates the null instead of failing.
type RawFinancials struct {
	RevenueCurrent   null.Float
	RevenuePrior     null.Float
	NetIncomeCurrent null.Float
	CFOCurrent       null.Float
	CFICurrent       null.Float
	DebtCurrent      null.Float
	DebtPrior        null.Float
}

// PricePoint is one daily closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is an ordered sequence of daily closes, oldest first. The
// 30-day return uses only the first and last entry.
type PriceSeries []PricePoint

// DerivedFeatures holds the six ratios computed from raw financials and the
// price series. Each is independently nullable; values are rounded once at
// derivation time (2 decimals, except CFIRevenueRatio at 4) and all
// downstream threshold comparisons use the rounded value.
type DerivedFeatures struct {
	YoYGrowthPct       null.Float `json:"YoY_Growth"`
	PATMarginPct       null.Float `json:"PAT_Margin"`
	CFOPATRatio        null.Float `json:"CFO_PAT_Ratio"`
	CFIRevenueRatio    null.Float `json:"CFI_Revenue"`
	BorrowingGrowthPct null.Float `json:"Borrowing_Growth_%"`
	StockReturn30DPct  null.Float `json:"Stock_Return_30D"`
}

// ComponentScore is the output of a single scorer: an integer score and the
// label of the threshold bucket that matched. A null input feature always
// yields {0, "NA"}.
type ComponentScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// RatingResult is the complete output of one analysis. JSON field names
// match the columns of the exported CSV so the API and the export stay
// interchangeable for consumers.
type RatingResult struct {
	Symbol         string     `json:"Symbol"`
	CompanyName    string     `json:"CompanyName_ForNews"`
	YahooTicker    string     `json:"Yahoo_Ticker"`
	MarketCapCrore null.Float `json:"MarketCap_Crore"`
	Tier           Tier       `json:"Tier"`

	DerivedFeatures

	EventScore           int `json:"Event_Score"`
	ScoreYoYGrowth       int `json:"Score_YoY_Growth"`
	ScorePATMargin       int `json:"Score_PAT_Margin"`
	ScoreCFOPAT          int `json:"Score_CFO_PAT"`
	ScoreCFIRevenue      int `json:"Score_CFI_Revenue"`
	ScoreBorrowingGrowth int `json:"Score_Borrowing_Growth"`
	ScoreStockReturn30D  int `json:"Score_Stock_Return_30D"`

	TotalScore int    `json:"Total_Score"`
	Rating     string `json:"Rating"`

	YoYBucket       string `json:"YoY_Bucket"`
	PATBucket       string `json:"PAT_Bucket"`
	CFOPATBucket    string `json:"CFO_PAT_Bucket"`
	CFIBucket       string `json:"CFI_Bucket"`
	BorrowingBucket string `json:"Borrowing_Bucket"`
	StockBucket     string `json:"Stock_Bucket"`
}
