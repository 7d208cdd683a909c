// Package provider defines the market-data source abstraction and its Yahoo
// Finance implementation. Providers are collaborators around the scoring
// engine: their failures are reported as errors here and absorbed into null
// features by the engine, never surfaced to analysis callers.
package provider

import (
	"context"
	"time"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// MarketData abstracts the market-data source for financial statements,
// daily closing prices, and market capitalization.
type MarketData interface {
	// Financials returns the latest reported financial snapshot for the
	// ticker. Fields the source does not report are null.
	Financials(ctx context.Context, ticker string) (domain.RawFinancials, error)

	// DailyCloses returns daily closing prices in [start, end], oldest
	// first.
	DailyCloses(ctx context.Context, ticker string, start, end time.Time) (domain.PriceSeries, error)

	// MarketCap returns the market capitalization in the source's native
	// currency unit, or null when unreported.
	MarketCap(ctx context.Context, ticker string) (null.Float, error)
}
