package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/guregu/null/v6"
	"github.com/parquet-go/parquet-go"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// ParquetStore writes per-date rating snapshots as Parquet files on disk.
// Layout: <DataDir>/ratings/<YYYY-MM-DD>.parquet. Re-running a batch for the
// same date merges by symbol, newest write winning.
type ParquetStore struct {
	DataDir string
}

// NewParquetStore creates a ParquetStore rooted at the given data directory.
func NewParquetStore(dataDir string) *ParquetStore {
	return &ParquetStore{DataDir: dataDir}
}

// RatingRecord is the Parquet schema for one rating row. Nullable features
// map to optional columns.
type RatingRecord struct {
	Symbol         string   `parquet:"symbol"`
	CompanyName    string   `parquet:"company_name"`
	YahooTicker    string   `parquet:"yahoo_ticker"`
	MarketCapCrore *float64 `parquet:"market_cap_crore,optional"`
	Tier           string   `parquet:"tier"`

	YoYGrowth       *float64 `parquet:"yoy_growth,optional"`
	PATMargin       *float64 `parquet:"pat_margin,optional"`
	CFOPATRatio     *float64 `parquet:"cfo_pat_ratio,optional"`
	CFIRevenue      *float64 `parquet:"cfi_revenue,optional"`
	BorrowingGrowth *float64 `parquet:"borrowing_growth,optional"`
	StockReturn30D  *float64 `parquet:"stock_return_30d,optional"`

	EventScore           int32 `parquet:"event_score"`
	ScoreYoYGrowth       int32 `parquet:"score_yoy_growth"`
	ScorePATMargin       int32 `parquet:"score_pat_margin"`
	ScoreCFOPAT          int32 `parquet:"score_cfo_pat"`
	ScoreCFIRevenue      int32 `parquet:"score_cfi_revenue"`
	ScoreBorrowingGrowth int32 `parquet:"score_borrowing_growth"`
	ScoreStockReturn30D  int32 `parquet:"score_stock_return_30d"`

	TotalScore int32  `parquet:"total_score"`
	Rating     string `parquet:"rating"`

	YoYBucket       string `parquet:"yoy_bucket"`
	PATBucket       string `parquet:"pat_bucket"`
	CFOPATBucket    string `parquet:"cfo_pat_bucket"`
	CFIBucket       string `parquet:"cfi_bucket"`
	BorrowingBucket string `parquet:"borrowing_bucket"`
	StockBucket     string `parquet:"stock_bucket"`

	GeneratedAt int64 `parquet:"generated_at,timestamp(millisecond)"` // Unix ms
}

// WriteRatings writes a batch snapshot under the file for generatedAt's date,
// merging with any rows already there.
func (s *ParquetStore) WriteRatings(results []domain.RatingResult, generatedAt time.Time) error {
	if len(results) == 0 {
		return nil
	}

	records := make([]RatingRecord, 0, len(results))
	for _, r := range results {
		records = append(records, toRecord(r, generatedAt))
	}

	path := s.ratingPath(generatedAt)
	existing, _ := readParquetFile[RatingRecord](path)
	merged := mergeRatingRecords(existing, records)

	if err := writeParquetFile(path, merged); err != nil {
		return fmt.Errorf("writing ratings for %s: %w", generatedAt.Format("2006-01-02"), err)
	}
	return nil
}

// ReadRatings reads the snapshot for one date. A missing file reads as empty.
func (s *ParquetStore) ReadRatings(date time.Time) ([]StoredRating, error) {
	records, err := readParquetFile[RatingRecord](s.ratingPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]StoredRating, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

// ListDates returns the dates that have snapshots, oldest first.
func (s *ParquetStore) ListDates() ([]string, error) {
	dir := filepath.Join(s.DataDir, "ratings")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var dates []string
	for _, e := range entries {
		name := e.Name()
		if filepath.Ext(name) == ".parquet" {
			dates = append(dates, name[:len(name)-len(".parquet")])
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// ratingPath returns the snapshot path for a date.
// Layout: <dataDir>/ratings/<YYYY-MM-DD>.parquet
func (s *ParquetStore) ratingPath(t time.Time) string {
	return filepath.Join(s.DataDir, "ratings", t.UTC().Format("2006-01-02")+".parquet")
}

func toRecord(r domain.RatingResult, generatedAt time.Time) RatingRecord {
	return RatingRecord{
		Symbol:         r.Symbol,
		CompanyName:    r.CompanyName,
		YahooTicker:    r.YahooTicker,
		MarketCapCrore: r.MarketCapCrore.Ptr(),
		Tier:           string(r.Tier),

		YoYGrowth:       r.YoYGrowthPct.Ptr(),
		PATMargin:       r.PATMarginPct.Ptr(),
		CFOPATRatio:     r.CFOPATRatio.Ptr(),
		CFIRevenue:      r.CFIRevenueRatio.Ptr(),
		BorrowingGrowth: r.BorrowingGrowthPct.Ptr(),
		StockReturn30D:  r.StockReturn30DPct.Ptr(),

		EventScore:           int32(r.EventScore),
		ScoreYoYGrowth:       int32(r.ScoreYoYGrowth),
		ScorePATMargin:       int32(r.ScorePATMargin),
		ScoreCFOPAT:          int32(r.ScoreCFOPAT),
		ScoreCFIRevenue:      int32(r.ScoreCFIRevenue),
		ScoreBorrowingGrowth: int32(r.ScoreBorrowingGrowth),
		ScoreStockReturn30D:  int32(r.ScoreStockReturn30D),

		TotalScore: int32(r.TotalScore),
		Rating:     r.Rating,

		YoYBucket:       r.YoYBucket,
		PATBucket:       r.PATBucket,
		CFOPATBucket:    r.CFOPATBucket,
		CFIBucket:       r.CFIBucket,
		BorrowingBucket: r.BorrowingBucket,
		StockBucket:     r.StockBucket,

		GeneratedAt: generatedAt.UTC().UnixMilli(),
	}
}

func fromRecord(rec RatingRecord) StoredRating {
	return StoredRating{
		RatingResult: domain.RatingResult{
			Symbol:         rec.Symbol,
			CompanyName:    rec.CompanyName,
			YahooTicker:    rec.YahooTicker,
			MarketCapCrore: null.FloatFromPtr(rec.MarketCapCrore),
			Tier:           domain.Tier(rec.Tier),

			DerivedFeatures: domain.DerivedFeatures{
				YoYGrowthPct:       null.FloatFromPtr(rec.YoYGrowth),
				PATMarginPct:       null.FloatFromPtr(rec.PATMargin),
				CFOPATRatio:        null.FloatFromPtr(rec.CFOPATRatio),
				CFIRevenueRatio:    null.FloatFromPtr(rec.CFIRevenue),
				BorrowingGrowthPct: null.FloatFromPtr(rec.BorrowingGrowth),
				StockReturn30DPct:  null.FloatFromPtr(rec.StockReturn30D),
			},

			EventScore:           int(rec.EventScore),
			ScoreYoYGrowth:       int(rec.ScoreYoYGrowth),
			ScorePATMargin:       int(rec.ScorePATMargin),
			ScoreCFOPAT:          int(rec.ScoreCFOPAT),
			ScoreCFIRevenue:      int(rec.ScoreCFIRevenue),
			ScoreBorrowingGrowth: int(rec.ScoreBorrowingGrowth),
			ScoreStockReturn30D:  int(rec.ScoreStockReturn30D),

			TotalScore: int(rec.TotalScore),
			Rating:     rec.Rating,

			YoYBucket:       rec.YoYBucket,
			PATBucket:       rec.PATBucket,
			CFOPATBucket:    rec.CFOPATBucket,
			CFIBucket:       rec.CFIBucket,
			BorrowingBucket: rec.BorrowingBucket,
			StockBucket:     rec.StockBucket,
		},
		GeneratedAt: time.UnixMilli(rec.GeneratedAt).UTC(),
	}
}

func writeParquetFile[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}

func readParquetFile[T any](path string) ([]T, error) {
	return parquet.ReadFile[T](path)
}

// mergeRatingRecords deduplicates by symbol, preferring incoming rows, and
// sorts by symbol for stable file contents.
func mergeRatingRecords(existing, incoming []RatingRecord) []RatingRecord {
	seen := make(map[string]RatingRecord, len(existing)+len(incoming))
	for _, r := range existing {
		seen[r.Symbol] = r
	}
	for _, r := range incoming {
		seen[r.Symbol] = r
	}

	merged := make([]RatingRecord, 0, len(seen))
	for _, r := range seen {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Symbol < merged[j].Symbol
	})
	return merged
}
