package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface check.
var _ RatingStore = (*SQLiteStore)(nil)

// SQLiteStore implements RatingStore backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

const ratingsSchema = `
CREATE TABLE IF NOT EXISTS ratings (
	id                     INTEGER PRIMARY KEY AUTOINCREMENT,
	symbol                 TEXT NOT NULL,
	company_name           TEXT NOT NULL,
	yahoo_ticker           TEXT NOT NULL,
	market_cap_crore       REAL,
	tier                   TEXT NOT NULL,
	yoy_growth             REAL,
	pat_margin             REAL,
	cfo_pat_ratio          REAL,
	cfi_revenue            REAL,
	borrowing_growth       REAL,
	stock_return_30d       REAL,
	event_score            INTEGER NOT NULL,
	score_yoy_growth       INTEGER NOT NULL,
	score_pat_margin       INTEGER NOT NULL,
	score_cfo_pat          INTEGER NOT NULL,
	score_cfi_revenue      INTEGER NOT NULL,
	score_borrowing_growth INTEGER NOT NULL,
	score_stock_return_30d INTEGER NOT NULL,
	total_score            INTEGER NOT NULL,
	rating                 TEXT NOT NULL,
	yoy_bucket             TEXT NOT NULL,
	pat_bucket             TEXT NOT NULL,
	cfo_pat_bucket         TEXT NOT NULL,
	cfi_bucket             TEXT NOT NULL,
	borrowing_bucket       TEXT NOT NULL,
	stock_bucket           TEXT NOT NULL,
	generated_at           TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ratings_symbol ON ratings(symbol, generated_at DESC);
CREATE INDEX IF NOT EXISTS idx_ratings_generated ON ratings(generated_at DESC);
`

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the ratings schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ratingsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ratings schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const insertRating = `
INSERT INTO ratings (
	symbol, company_name, yahoo_ticker, market_cap_crore, tier,
	yoy_growth, pat_margin, cfo_pat_ratio, cfi_revenue, borrowing_growth, stock_return_30d,
	event_score, score_yoy_growth, score_pat_margin, score_cfo_pat,
	score_cfi_revenue, score_borrowing_growth, score_stock_return_30d,
	total_score, rating,
	yoy_bucket, pat_bucket, cfo_pat_bucket, cfi_bucket, borrowing_bucket, stock_bucket,
	generated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SaveRatings appends a batch of results in one transaction.
func (s *SQLiteStore) SaveRatings(ctx context.Context, results []domain.RatingResult, generatedAt time.Time) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertRating)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		_, err := stmt.ExecContext(ctx,
			r.Symbol, r.CompanyName, r.YahooTicker, r.MarketCapCrore, string(r.Tier),
			r.YoYGrowthPct, r.PATMarginPct, r.CFOPATRatio, r.CFIRevenueRatio, r.BorrowingGrowthPct, r.StockReturn30DPct,
			r.EventScore, r.ScoreYoYGrowth, r.ScorePATMargin, r.ScoreCFOPAT,
			r.ScoreCFIRevenue, r.ScoreBorrowingGrowth, r.ScoreStockReturn30D,
			r.TotalScore, r.Rating,
			r.YoYBucket, r.PATBucket, r.CFOPATBucket, r.CFIBucket, r.BorrowingBucket, r.StockBucket,
			generatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("inserting rating for %s: %w", r.Symbol, err)
		}
	}
	return tx.Commit()
}

const selectRating = `
SELECT symbol, company_name, yahoo_ticker, market_cap_crore, tier,
	yoy_growth, pat_margin, cfo_pat_ratio, cfi_revenue, borrowing_growth, stock_return_30d,
	event_score, score_yoy_growth, score_pat_margin, score_cfo_pat,
	score_cfi_revenue, score_borrowing_growth, score_stock_return_30d,
	total_score, rating,
	yoy_bucket, pat_bucket, cfo_pat_bucket, cfi_bucket, borrowing_bucket, stock_bucket,
	generated_at
FROM ratings`

// RecentRatings returns the most recently generated ratings, newest first.
func (s *SQLiteStore) RecentRatings(ctx context.Context, limit int) ([]StoredRating, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, selectRating+" ORDER BY generated_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredRating
	for rows.Next() {
		sr, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// LatestForSymbol returns the newest rating for one symbol.
func (s *SQLiteStore) LatestForSymbol(ctx context.Context, symbol string) (*StoredRating, error) {
	rows, err := s.db.QueryContext(ctx, selectRating+" WHERE symbol = ? ORDER BY generated_at DESC, id DESC LIMIT 1", symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	sr, err := scanRating(rows)
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

func scanRating(rows *sql.Rows) (StoredRating, error) {
	var sr StoredRating
	var tier string
	err := rows.Scan(
		&sr.Symbol, &sr.CompanyName, &sr.YahooTicker, &sr.MarketCapCrore, &tier,
		&sr.YoYGrowthPct, &sr.PATMarginPct, &sr.CFOPATRatio, &sr.CFIRevenueRatio, &sr.BorrowingGrowthPct, &sr.StockReturn30DPct,
		&sr.EventScore, &sr.ScoreYoYGrowth, &sr.ScorePATMargin, &sr.ScoreCFOPAT,
		&sr.ScoreCFIRevenue, &sr.ScoreBorrowingGrowth, &sr.ScoreStockReturn30D,
		&sr.TotalScore, &sr.Rating,
		&sr.YoYBucket, &sr.PATBucket, &sr.CFOPATBucket, &sr.CFIBucket, &sr.BorrowingBucket, &sr.StockBucket,
		&sr.GeneratedAt,
	)
	if err != nil {
		return StoredRating{}, err
	}
	sr.Tier = domain.Tier(tier)
	return sr, nil
}
