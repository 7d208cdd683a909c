package store

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

func sampleResult(symbol string) domain.RatingResult {
	return domain.RatingResult{
		Symbol:         symbol,
		CompanyName:    symbol + " Ltd",
		YahooTicker:    symbol + ".NS",
		MarketCapCrore: null.FloatFrom(150000),
		Tier:           domain.TierLarge,
		DerivedFeatures: domain.DerivedFeatures{
			YoYGrowthPct:    null.FloatFrom(10),
			PATMarginPct:    null.FloatFrom(9.09),
			CFOPATRatio:     null.FloatFrom(0.9),
			CFIRevenueRatio: null.FloatFrom(-0.0455),
			// Borrowing and stock return left null to exercise optional columns.
		},
		EventScore:           2,
		ScoreYoYGrowth:       2,
		ScorePATMargin:       2,
		ScoreCFOPAT:          1,
		ScoreCFIRevenue:      2,
		ScoreBorrowingGrowth: 0,
		ScoreStockReturn30D:  0,
		TotalScore:           9,
		Rating:               "AA",
		YoYBucket:            ">2%",
		PATBucket:            ">8%",
		CFOPATBucket:         "0.7–1.0x",
		CFIBucket:            ">-10%",
		BorrowingBucket:      "NA",
		StockBucket:          "NA",
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ratings.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	results := []domain.RatingResult{sampleResult("TCS"), sampleResult("INFY")}
	if err := s.SaveRatings(ctx, results, now); err != nil {
		t.Fatalf("SaveRatings: %v", err)
	}

	got, err := s.RecentRatings(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRatings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}

	// Newest-first ordering ties break by insertion order, latest row first.
	first := got[0]
	if first.Symbol != "INFY" {
		t.Errorf("first.Symbol = %q, want INFY", first.Symbol)
	}
	if first.Rating != "AA" || first.TotalScore != 9 {
		t.Errorf("rating round-trip: %q/%d", first.Rating, first.TotalScore)
	}
	if !first.MarketCapCrore.Valid || first.MarketCapCrore.Float64 != 150000 {
		t.Errorf("MarketCapCrore = %+v", first.MarketCapCrore)
	}
	if first.BorrowingGrowthPct.Valid {
		t.Error("BorrowingGrowthPct should round-trip as null")
	}
	if first.CFOPATBucket != "0.7–1.0x" {
		t.Errorf("CFOPATBucket = %q", first.CFOPATBucket)
	}
}

func TestSQLiteLatestForSymbol(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ratings.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	older := sampleResult("TCS")
	older.Rating = "A"
	if err := s.SaveRatings(ctx, []domain.RatingResult{older}, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SaveRatings: %v", err)
	}
	newer := sampleResult("TCS")
	if err := s.SaveRatings(ctx, []domain.RatingResult{newer}, time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SaveRatings: %v", err)
	}

	got, err := s.LatestForSymbol(ctx, "TCS")
	if err != nil {
		t.Fatalf("LatestForSymbol: %v", err)
	}
	if got == nil {
		t.Fatal("LatestForSymbol returned nil")
	}
	if got.Rating != "AA" {
		t.Errorf("Rating = %q, want newest (AA)", got.Rating)
	}

	missing, err := s.LatestForSymbol(ctx, "NOSUCH")
	if err != nil {
		t.Fatalf("LatestForSymbol(missing): %v", err)
	}
	if missing != nil {
		t.Errorf("LatestForSymbol(missing) = %+v, want nil", missing)
	}
}

func TestParquetRoundTrip(t *testing.T) {
	s := NewParquetStore(t.TempDir())
	day := time.Date(2025, 8, 30, 9, 30, 0, 0, time.UTC)

	if err := s.WriteRatings([]domain.RatingResult{sampleResult("TCS")}, day); err != nil {
		t.Fatalf("WriteRatings: %v", err)
	}

	got, err := s.ReadRatings(day)
	if err != nil {
		t.Fatalf("ReadRatings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	r := got[0]
	if r.Symbol != "TCS" || r.Rating != "AA" {
		t.Errorf("round-trip: %q/%q", r.Symbol, r.Rating)
	}
	if r.BorrowingGrowthPct.Valid {
		t.Error("BorrowingGrowthPct should round-trip as null")
	}
	if !r.CFIRevenueRatio.Valid || r.CFIRevenueRatio.Float64 != -0.0455 {
		t.Errorf("CFIRevenueRatio = %+v", r.CFIRevenueRatio)
	}
	if !r.GeneratedAt.Equal(day) {
		t.Errorf("GeneratedAt = %v, want %v", r.GeneratedAt, day)
	}
}

func TestParquetMergeSameDate(t *testing.T) {
	s := NewParquetStore(t.TempDir())
	day := time.Date(2025, 8, 30, 9, 0, 0, 0, time.UTC)

	if err := s.WriteRatings([]domain.RatingResult{sampleResult("TCS"), sampleResult("INFY")}, day); err != nil {
		t.Fatalf("first WriteRatings: %v", err)
	}

	// Re-rating TCS later the same day replaces its row, keeps INFY.
	updated := sampleResult("TCS")
	updated.Rating = "AAA"
	updated.TotalScore = 11
	if err := s.WriteRatings([]domain.RatingResult{updated}, day.Add(2*time.Hour)); err != nil {
		t.Fatalf("second WriteRatings: %v", err)
	}

	got, err := s.ReadRatings(day)
	if err != nil {
		t.Fatalf("ReadRatings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	bySymbol := map[string]StoredRating{}
	for _, r := range got {
		bySymbol[r.Symbol] = r
	}
	if bySymbol["TCS"].Rating != "AAA" {
		t.Errorf("TCS rating = %q, want updated AAA", bySymbol["TCS"].Rating)
	}
	if bySymbol["INFY"].Rating != "AA" {
		t.Errorf("INFY rating = %q, want original AA", bySymbol["INFY"].Rating)
	}
}

func TestParquetListDates(t *testing.T) {
	s := NewParquetStore(t.TempDir())

	dates, err := s.ListDates()
	if err != nil {
		t.Fatalf("ListDates (empty): %v", err)
	}
	if dates != nil {
		t.Errorf("ListDates (empty) = %v, want nil", dates)
	}

	for _, d := range []time.Time{
		time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
	} {
		if err := s.WriteRatings([]domain.RatingResult{sampleResult("TCS")}, d); err != nil {
			t.Fatalf("WriteRatings: %v", err)
		}
	}

	dates, err = s.ListDates()
	if err != nil {
		t.Fatalf("ListDates: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2025-08-29" || dates[1] != "2025-08-30" {
		t.Errorf("ListDates = %v, want sorted two dates", dates)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ratings.csv")
	if err := WriteCSV(path, []domain.RatingResult{sampleResult("TCS")}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "Symbol" || rows[0][9] != "Borrowing_Growth_%" || rows[0][len(rows[0])-1] != "Stock_Bucket" {
		t.Errorf("header = %v", rows[0])
	}
	row := rows[1]
	if row[0] != "TCS" || row[3] != "150000" {
		t.Errorf("row start = %v", row[:5])
	}
	// Null numeric features export as empty cells.
	if row[9] != "" || row[10] != "" {
		t.Errorf("null features = %q, %q, want empty", row[9], row[10])
	}
	if row[19] != "AA" {
		t.Errorf("rating cell = %q", row[19])
	}
}
