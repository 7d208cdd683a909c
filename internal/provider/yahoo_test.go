package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/util"
)

const quoteSummaryFixture = `{
  "quoteSummary": {
    "result": [{
      "incomeStatementHistory": {
        "incomeStatementHistory": [
          {"totalRevenue": {"raw": 1100, "fmt": "1.1k"}, "netIncome": {"raw": 100}},
          {"totalRevenue": {"raw": 1000}, "netIncome": {"raw": 90}}
        ]
      },
      "cashflowStatementHistory": {
        "cashflowStatements": [
          {"totalCashFromOperatingActivities": {"raw": 90}, "totalCashflowsFromInvestingActivities": {"raw": -50}}
        ]
      },
      "balanceSheetHistory": {
        "balanceSheetStatements": [
          {"longTermDebt": {"raw": 200}},
          {"longTermDebt": {"raw": 180}}
        ]
      },
      "price": {"marketCap": {"raw": 1500000000000}}
    }],
    "error": null
  }
}`

const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1700000000, 1700086400, 1700172800],
      "indicators": {"quote": [{"close": [100.0, null, 108.0]}]}
    }],
    "error": null
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *YahooClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewYahooClient(srv.URL+"/quote", srv.URL+"/chart", 0, util.NewLogger("error", "json"))
}

func TestFinancials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "TCS.NS") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(quoteSummaryFixture))
	})

	raw, err := c.Financials(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("Financials returned error: %v", err)
	}

	if !raw.RevenueCurrent.Valid || raw.RevenueCurrent.Float64 != 1100 {
		t.Errorf("RevenueCurrent = %+v, want 1100", raw.RevenueCurrent)
	}
	if !raw.RevenuePrior.Valid || raw.RevenuePrior.Float64 != 1000 {
		t.Errorf("RevenuePrior = %+v, want 1000", raw.RevenuePrior)
	}
	if !raw.NetIncomeCurrent.Valid || raw.NetIncomeCurrent.Float64 != 100 {
		t.Errorf("NetIncomeCurrent = %+v, want 100", raw.NetIncomeCurrent)
	}
	if !raw.CFOCurrent.Valid || raw.CFOCurrent.Float64 != 90 {
		t.Errorf("CFOCurrent = %+v, want 90", raw.CFOCurrent)
	}
	if !raw.CFICurrent.Valid || raw.CFICurrent.Float64 != -50 {
		t.Errorf("CFICurrent = %+v, want -50", raw.CFICurrent)
	}
	if !raw.DebtCurrent.Valid || raw.DebtCurrent.Float64 != 200 {
		t.Errorf("DebtCurrent = %+v, want 200", raw.DebtCurrent)
	}
	if !raw.DebtPrior.Valid || raw.DebtPrior.Float64 != 180 {
		t.Errorf("DebtPrior = %+v, want 180", raw.DebtPrior)
	}
}

func TestFinancialsMissingLineItems(t *testing.T) {
	// Statements present but line items absent: fields stay null, no error.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary":{"result":[{
			"incomeStatementHistory":{"incomeStatementHistory":[{}]},
			"cashflowStatementHistory":{"cashflowStatements":[]},
			"balanceSheetHistory":{"balanceSheetStatements":[{"longTermDebt":{}}]}
		}],"error":null}}`))
	})

	raw, err := c.Financials(context.Background(), "XYZ.NS")
	if err != nil {
		t.Fatalf("Financials returned error: %v", err)
	}
	if raw.RevenueCurrent.Valid || raw.CFOCurrent.Valid || raw.DebtCurrent.Valid {
		t.Errorf("expected null fields, got %+v", raw)
	}
}

func TestDailyClosesSkipsNulls(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartFixture))
	})

	series, err := c.DailyCloses(context.Background(), "TCS.NS",
		time.Now().AddDate(0, 0, -35), time.Now())
	if err != nil {
		t.Fatalf("DailyCloses returned error: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2 (null close skipped)", len(series))
	}
	if series[0].Close != 100.0 || series[1].Close != 108.0 {
		t.Errorf("closes = %v, %v; want 100, 108", series[0].Close, series[1].Close)
	}
}

func TestMarketCap(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteSummaryFixture))
	})

	mc, err := c.MarketCap(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("MarketCap returned error: %v", err)
	}
	if !mc.Valid || mc.Float64 != 1.5e12 {
		t.Errorf("MarketCap = %+v, want 1.5e12", mc)
	}
}

func TestProviderErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	if _, err := c.Financials(context.Background(), "NOPE.NS"); err == nil {
		t.Error("expected error for 404 response")
	}
	if _, err := c.MarketCap(context.Background(), "NOPE.NS"); err == nil {
		t.Error("expected error for 404 response")
	}
}
