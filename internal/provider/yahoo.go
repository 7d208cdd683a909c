package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/util"
)

// Compile-time interface check.
var _ MarketData = (*YahooClient)(nil)

const (
	defaultQuoteURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
)

// YahooClient fetches financials, prices, and market cap from the public
// Yahoo Finance JSON endpoints. Requests go through a shared rate limiter
// and a short retry loop; the endpoints are unauthenticated and throttle
// aggressive clients.
type YahooClient struct {
	quoteURL string
	chartURL string
	client   *http.Client
	limiter  *util.RateLimiter
	log      *slog.Logger
}

// NewYahooClient creates a YahooClient. Empty URLs fall back to the public
// Yahoo endpoints; ratePerMin <= 0 disables rate limiting.
func NewYahooClient(quoteURL, chartURL string, ratePerMin int, log *slog.Logger) *YahooClient {
	if quoteURL == "" {
		quoteURL = defaultQuoteURL
	}
	if chartURL == "" {
		chartURL = defaultChartURL
	}
	c := &YahooClient{
		quoteURL: quoteURL,
		chartURL: chartURL,
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      log,
	}
	if ratePerMin > 0 {
		c.limiter = util.NewRateLimiter(ratePerMin)
	}
	return c
}

// ---------------------------------------------------------------------------
// Wire types (subset of the Yahoo responses we read)
// ---------------------------------------------------------------------------

// rawValue is Yahoo's {"raw": 123, "fmt": "123"} number wrapper. Only the
// raw value is read; an empty object leaves it null.
type rawValue struct {
	Raw null.Float `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			IncomeStatementHistory struct {
				IncomeStatementHistory []struct {
					TotalRevenue rawValue `json:"totalRevenue"`
					NetIncome    rawValue `json:"netIncome"`
				} `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			CashflowStatementHistory struct {
				CashflowStatements []struct {
					TotalCashFromOperatingActivities      rawValue `json:"totalCashFromOperatingActivities"`
					TotalCashflowsFromInvestingActivities rawValue `json:"totalCashflowsFromInvestingActivities"`
				} `json:"cashflowStatements"`
			} `json:"cashflowStatementHistory"`
			BalanceSheetHistory struct {
				BalanceSheetStatements []struct {
					LongTermDebt rawValue `json:"longTermDebt"`
				} `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
			Price struct {
				MarketCap rawValue `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// ---------------------------------------------------------------------------
// MarketData implementation
// ---------------------------------------------------------------------------

// Financials fetches annual income, cashflow, and balance-sheet statements
// and maps the line items the scoring engine uses. Missing statements or
// line items produce null fields, not errors.
func (c *YahooClient) Financials(ctx context.Context, ticker string) (domain.RawFinancials, error) {
	resp, err := c.quoteSummary(ctx, ticker,
		"incomeStatementHistory,cashflowStatementHistory,balanceSheetHistory")
	if err != nil {
		return domain.RawFinancials{}, err
	}

	var raw domain.RawFinancials
	r := resp.QuoteSummary.Result[0]

	if stmts := r.IncomeStatementHistory.IncomeStatementHistory; len(stmts) > 0 {
		raw.RevenueCurrent = stmts[0].TotalRevenue.Raw
		raw.NetIncomeCurrent = stmts[0].NetIncome.Raw
		if len(stmts) > 1 {
			raw.RevenuePrior = stmts[1].TotalRevenue.Raw
		}
	}

	if stmts := r.CashflowStatementHistory.CashflowStatements; len(stmts) > 0 {
		raw.CFOCurrent = stmts[0].TotalCashFromOperatingActivities.Raw
		raw.CFICurrent = stmts[0].TotalCashflowsFromInvestingActivities.Raw
	}

	if stmts := r.BalanceSheetHistory.BalanceSheetStatements; len(stmts) > 0 {
		raw.DebtCurrent = stmts[0].LongTermDebt.Raw
		if len(stmts) > 1 {
			raw.DebtPrior = stmts[1].LongTermDebt.Raw
		}
	}

	return raw, nil
}

// DailyCloses fetches the daily close series from the chart endpoint. Null
// closes (market holidays, partial sessions) are skipped.
func (c *YahooClient) DailyCloses(ctx context.Context, ticker string, start, end time.Time) (domain.PriceSeries, error) {
	u := fmt.Sprintf("%s/%s?period1=%d&period2=%d&interval=1d",
		c.chartURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	var parsed chartResponse
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s", ticker, parsed.Chart.Error.Description)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart %s: empty result", ticker)
	}

	r := parsed.Chart.Result[0]
	closes := r.Indicators.Quote[0].Close

	var series domain.PriceSeries
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series = append(series, domain.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return series, nil
}

// MarketCap fetches the market capitalization from the price module.
func (c *YahooClient) MarketCap(ctx context.Context, ticker string) (null.Float, error) {
	resp, err := c.quoteSummary(ctx, ticker, "price")
	if err != nil {
		return null.Float{}, err
	}
	return resp.QuoteSummary.Result[0].Price.MarketCap.Raw, nil
}

// ---------------------------------------------------------------------------
// HTTP plumbing
// ---------------------------------------------------------------------------

func (c *YahooClient) quoteSummary(ctx context.Context, ticker, modules string) (*quoteSummaryResponse, error) {
	u := fmt.Sprintf("%s/%s?modules=%s", c.quoteURL, url.PathEscape(ticker), modules)

	var parsed quoteSummaryResponse
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return nil, err
	}
	if parsed.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary %s: %s", ticker, parsed.QuoteSummary.Error.Description)
	}
	if len(parsed.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary %s: empty result", ticker)
	}
	return &parsed, nil
}

// getJSON performs a rate-limited GET with retries and decodes the JSON
// body into v.
func (c *YahooClient) getJSON(ctx context.Context, u string, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	return util.Retry(ctx, 3, 500*time.Millisecond, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(v)
	})
}
