// Package httpapi exposes the rating pipeline over an HTTP REST API for the
// web frontend, serving the same records as the CSV export in JSON form.
package httpapi

import (
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/rating"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/store"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/symbols"
)

// AnalyzeRequest is the body of POST /api/analyze. "tickers" is the
// documented field; "symbols" is accepted for frontends built against the
// earlier backend.
type AnalyzeRequest struct {
	Tickers []string `json:"tickers"`
	Symbols []string `json:"symbols"`
}

// list returns whichever field the caller populated.
func (r AnalyzeRequest) list() []string {
	if len(r.Tickers) > 0 {
		return r.Tickers
	}
	return r.Symbols
}

// AnalyzeResponse wraps per-ticker results.
type AnalyzeResponse struct {
	AnalysisResults []rating.BatchItem `json:"analysis_results"`
}

// RatingsResponse lists stored rating history, newest first.
type RatingsResponse struct {
	Ratings []store.StoredRating `json:"ratings"`
}

// SymbolsResponse lists the symbol directory.
type SymbolsResponse struct {
	Symbols []symbols.Entry `json:"symbols"`
}
