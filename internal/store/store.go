// Package store persists analysis results. SQLite keeps the queryable
// rating history, Parquet keeps per-date snapshots for offline analysis,
// and the CSV writer reproduces the spreadsheet export consumed by
// downstream users.
package store

import (
	"context"
	"time"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// StoredRating is a RatingResult with the persistence timestamp attached.
// The timestamp lives here rather than on the result itself so that two
// analyses of identical inputs stay byte-identical.
type StoredRating struct {
	domain.RatingResult
	GeneratedAt time.Time `json:"generated_at"`
}

// RatingStore persists and retrieves rating history.
type RatingStore interface {
	// SaveRatings appends a batch of results, all stamped with the same
	// generation time.
	SaveRatings(ctx context.Context, results []domain.RatingResult, generatedAt time.Time) error

	// RecentRatings returns the most recently generated ratings, newest
	// first, up to limit.
	RecentRatings(ctx context.Context, limit int) ([]StoredRating, error)

	// LatestForSymbol returns the newest rating for one symbol, or nil when
	// the symbol has never been rated.
	LatestForSymbol(ctx context.Context, symbol string) (*StoredRating, error)
}
