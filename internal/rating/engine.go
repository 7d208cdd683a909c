package rating

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/news"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/provider"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/symbols"
)

// HeadlineSource retrieves recent headlines for a company. A failed or
// empty retrieval scores as event score 0.
type HeadlineSource interface {
	Headlines(ctx context.Context, symbol, companyName string, limit int) ([]string, error)
}

// priceWindowDays is the calendar span fetched for the 30-day return; a few
// extra days cover weekends and holidays at the window edges.
const priceWindowDays = 35

// Analyzer runs the full rating pipeline for a symbol by delegating data
// retrieval to its collaborators and scoring the results. Collaborator
// failures are absorbed at this boundary: a symbol with no reachable data
// still produces a complete RatingResult with null features and "NA"
// buckets.
type Analyzer struct {
	data          provider.MarketData
	headlines     HeadlineSource
	headlineLimit int
	maxWorkers    int
	log           *slog.Logger
}

// NewAnalyzer creates an Analyzer wired with the given collaborators.
func NewAnalyzer(data provider.MarketData, headlines HeadlineSource, headlineLimit, maxWorkers int, log *slog.Logger) *Analyzer {
	if headlineLimit <= 0 {
		headlineLimit = 5
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &Analyzer{
		data:          data,
		headlines:     headlines,
		headlineLimit: headlineLimit,
		maxWorkers:    maxWorkers,
		log:           log,
	}
}

// Analyze rates a single stock. companyName may be empty, in which case the
// symbol directory supplies a best-effort name. The call is deterministic
// for fixed collaborator responses and never fails: missing data degrades
// to nulls, not errors.
func (a *Analyzer) Analyze(ctx context.Context, symbol, companyName string) domain.RatingResult {
	ticker := symbols.Normalize(symbol)
	clean := symbols.Clean(symbol)

	if companyName == "" {
		_, companyName = symbols.Resolve(clean)
	}

	raw, err := a.data.Financials(ctx, ticker)
	if err != nil {
		a.log.Warn("fetching financials", "ticker", ticker, "error", err)
		raw = domain.RawFinancials{}
	}

	end := time.Now()
	start := end.AddDate(0, 0, -priceWindowDays)
	prices, err := a.data.DailyCloses(ctx, ticker, start, end)
	if err != nil {
		a.log.Warn("fetching price series", "ticker", ticker, "error", err)
		prices = nil
	}

	marketCap, err := a.data.MarketCap(ctx, ticker)
	if err != nil {
		a.log.Warn("fetching market cap", "ticker", ticker, "error", err)
	}
	crore := CroreFromRaw(marketCap)
	tier := TierFor(crore)

	heads, err := a.headlines.Headlines(ctx, clean, companyName, a.headlineLimit)
	if err != nil {
		a.log.Warn("fetching headlines", "company", companyName, "error", err)
		heads = nil
	}
	eventScore := news.ScoreHeadlines(heads)

	feats := DeriveFeatures(raw, prices)

	yoy := ScoreYoYGrowth(feats.YoYGrowthPct, tier)
	pat := ScorePATMargin(feats.PATMarginPct, tier)
	cfo := ScoreCFOPAT(feats.CFOPATRatio)
	cfi := ScoreCFIRevenue(feats.CFIRevenueRatio, tier)
	bor := ScoreBorrowingGrowth(feats.BorrowingGrowthPct, tier)
	stk := ScoreStockReturn(feats.StockReturn30DPct)

	total := yoy.Score + pat.Score + cfo.Score + cfi.Score + bor.Score + stk.Score + eventScore

	return domain.RatingResult{
		Symbol:          clean,
		CompanyName:     companyName,
		YahooTicker:     ticker,
		MarketCapCrore:  roundTo(crore, 2),
		Tier:            tier,
		DerivedFeatures: feats,

		EventScore:           eventScore,
		ScoreYoYGrowth:       yoy.Score,
		ScorePATMargin:       pat.Score,
		ScoreCFOPAT:          cfo.Score,
		ScoreCFIRevenue:      cfi.Score,
		ScoreBorrowingGrowth: bor.Score,
		ScoreStockReturn30D:  stk.Score,

		TotalScore: total,
		Rating:     Grade(total, tier),

		YoYBucket:       yoy.Label,
		PATBucket:       pat.Label,
		CFOPATBucket:    cfo.Label,
		CFIBucket:       cfi.Label,
		BorrowingBucket: bor.Label,
		StockBucket:     stk.Label,
	}
}

// BatchItem is the outcome for one symbol of a batch run.
type BatchItem struct {
	Symbol string               `json:"Symbol"`
	Result *domain.RatingResult `json:"result,omitempty"`
	Err    error                `json:"-"`
	Error  string               `json:"error,omitempty"`
}

// AnalyzeBatch rates a list of symbols with a bounded worker pool. Symbols
// are independent: one symbol's failure (context cancellation is the only
// failure mode) is reported as its own entry and never aborts the rest.
// Results come back in input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, syms []string) []BatchItem {
	items := make([]BatchItem, len(syms))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < a.maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sym := symbols.Clean(syms[i])
				if err := ctx.Err(); err != nil {
					items[i] = BatchItem{Symbol: sym, Err: err, Error: err.Error()}
					continue
				}
				res := a.Analyze(ctx, syms[i], "")
				items[i] = BatchItem{Symbol: sym, Result: &res}
			}
		}()
	}

	for i := range syms {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return items
}
