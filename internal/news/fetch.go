package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// adrTickers maps NSE symbols to their US-listed ADR tickers. Used only for
// the Alpaca fallback; most NSE companies have no ADR and always use Google
// News.
var adrTickers = map[string]string{
	"INFY":       "INFY",
	"WIPRO":      "WIT",
	"HDFCBANK":   "HDB",
	"ICICIBANK":  "IBN",
	"DRREDDY":    "RDY",
	"TATAMOTORS": "TTM",
}

// Fetcher retrieves recent headlines for a company. Google News RSS is the
// primary source; when it fails or returns nothing and the symbol has a
// known ADR, an optional Alpaca marketdata client is tried instead.
type Fetcher struct {
	mdc *marketdata.Client // nil when Alpaca is not configured
}

// NewFetcher creates a Fetcher. apiKey/apiSecret may be empty, which
// disables the Alpaca fallback.
func NewFetcher(apiKey, apiSecret string) *Fetcher {
	f := &Fetcher{}
	if apiKey != "" && apiSecret != "" {
		f.mdc = marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		})
	}
	return f
}

// Headlines returns up to limit recent headline strings for the company.
// Retrieval failure is absorbed: the caller receives an empty slice and a
// nil error, which scores as event score 0.
func (f *Fetcher) Headlines(ctx context.Context, symbol, companyName string, limit int) ([]string, error) {
	headlines, err := fetchGoogleNews(ctx, companyName, limit)
	if err == nil && len(headlines) > 0 {
		return headlines, nil
	}

	if f.mdc != nil {
		if adr, ok := adrTickers[symbol]; ok {
			if alt, altErr := f.fetchAlpacaNews(adr, limit); altErr == nil {
				return alt, nil
			}
		}
	}

	if err != nil {
		return nil, err
	}
	return headlines, nil
}

// --- Google News RSS ---

type rssResponse struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	PubDate string `xml:"pubDate"`
}

// fetchGoogleNews queries the Google News RSS search feed for the company
// name (India edition, matching the NSE universe) and returns up to limit
// entry titles.
func fetchGoogleNews(ctx context.Context, companyName string, limit int) ([]string, error) {
	q := url.QueryEscape(companyName)
	u := "https://news.google.com/rss/search?q=" + q + "&hl=en-IN&gl=IN&ceid=IN:en"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google news rss: status %d", resp.StatusCode)
	}

	var rss rssResponse
	if err := xml.NewDecoder(resp.Body).Decode(&rss); err != nil {
		return nil, err
	}

	var headlines []string
	for _, item := range rss.Channel.Items {
		if len(headlines) >= limit {
			break
		}
		title := strings.TrimSpace(html.UnescapeString(item.Title))
		if title == "" {
			continue
		}
		headlines = append(headlines, title)
	}
	return headlines, nil
}

// --- Alpaca fallback ---

// fetchAlpacaNews fetches recent news headlines for an ADR ticker from the
// Alpaca marketdata API, covering roughly the same trailing window as the
// price series.
func (f *Fetcher) fetchAlpacaNews(adrSymbol string, limit int) ([]string, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -35)

	articles, err := f.mdc.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{adrSymbol},
		Start:      start,
		End:        end,
		TotalLimit: limit,
		Sort:       marketdata.SortDesc,
	})
	if err != nil {
		return nil, err
	}

	headlines := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Headline != "" {
			headlines = append(headlines, a.Headline)
		}
	}
	return headlines, nil
}
