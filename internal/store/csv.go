package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// csvHeader fixes the export column order; consumers key on these names.
var csvHeader = []string{
	"Symbol", "CompanyName_ForNews", "Yahoo_Ticker", "MarketCap_Crore", "Tier",
	"YoY_Growth", "PAT_Margin", "CFO_PAT_Ratio", "CFI_Revenue", "Borrowing_Growth_%", "Stock_Return_30D",
	"Event_Score",
	"Score_YoY_Growth", "Score_PAT_Margin", "Score_CFO_PAT", "Score_CFI_Revenue",
	"Score_Borrowing_Growth", "Score_Stock_Return_30D",
	"Total_Score", "Rating",
	"YoY_Bucket", "PAT_Bucket", "CFO_PAT_Bucket", "CFI_Bucket", "Borrowing_Bucket", "Stock_Bucket",
}

// WriteCSV writes results to path in the export column order. Null numeric
// fields render as empty cells.
func WriteCSV(path string, results []domain.RatingResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write(csvRow(r)); err != nil {
			return fmt.Errorf("writing row for %s: %w", r.Symbol, err)
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(r domain.RatingResult) []string {
	return []string{
		r.Symbol, r.CompanyName, r.YahooTicker, csvFloat(r.MarketCapCrore), string(r.Tier),
		csvFloat(r.YoYGrowthPct), csvFloat(r.PATMarginPct), csvFloat(r.CFOPATRatio),
		csvFloat(r.CFIRevenueRatio), csvFloat(r.BorrowingGrowthPct), csvFloat(r.StockReturn30DPct),
		strconv.Itoa(r.EventScore),
		strconv.Itoa(r.ScoreYoYGrowth), strconv.Itoa(r.ScorePATMargin), strconv.Itoa(r.ScoreCFOPAT),
		strconv.Itoa(r.ScoreCFIRevenue), strconv.Itoa(r.ScoreBorrowingGrowth), strconv.Itoa(r.ScoreStockReturn30D),
		strconv.Itoa(r.TotalScore), r.Rating,
		r.YoYBucket, r.PATBucket, r.CFOPATBucket, r.CFIBucket, r.BorrowingBucket, r.StockBucket,
	}
}

func csvFloat(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
