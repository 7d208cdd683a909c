package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/config"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/news"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/provider"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/rating"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/store"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/symbols"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/util"
)

const version = "1.0.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: credtech-cli <command> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  analyze <symbols...>   Rate one or more NSE symbols\n")
		fmt.Fprintf(os.Stderr, "  menu                   Interactive analyzer menu\n")
		fmt.Fprintf(os.Stderr, "  symbols                List the known symbol directory\n")
		fmt.Fprintf(os.Stderr, "  version                Print the CLI version\n")
		fmt.Fprintf(os.Stderr, "\n")
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("credtech-cli %s\n", version)

	case "symbols":
		for _, e := range symbols.All() {
			fmt.Printf("%-12s %s\n", e.Symbol, e.Name)
		}

	case "analyze":
		runAnalyze(os.Args[2:])

	case "menu":
		runMenu()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		flag.Usage()
		os.Exit(1)
	}
}

// app bundles the analyzer with the stores the CLI writes to.
type app struct {
	cfg      *config.Config
	analyzer *rating.Analyzer
	archive  *store.ParquetStore
}

func newApp() *app {
	_ = godotenv.Load()

	cfgPath := "config/credtech.yaml"
	if p := os.Getenv("CREDTECH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	yahoo := provider.NewYahooClient(cfg.Yahoo.QuoteURL, cfg.Yahoo.ChartURL, cfg.Analysis.RateLimitPerMin, logger)
	headlines := news.NewFetcher(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret)

	return &app{
		cfg:      cfg,
		analyzer: rating.NewAnalyzer(yahoo, headlines, cfg.News.HeadlineLimit, cfg.Analysis.MaxWorkers, logger),
		archive:  store.NewParquetStore(cfg.Storage.DataDir),
	}
}

func runAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	csvPath := fs.String("csv", "", "write results to a CSV file at this path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: credtech-cli analyze [options] <symbols...>\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	syms := splitSymbols(strings.Join(fs.Args(), ","))
	if len(syms) == 0 {
		fs.Usage()
		os.Exit(1)
	}

	a := newApp()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	results := analyzeAndReport(ctx, a, syms)
	if len(results) == 0 {
		fmt.Println("No stocks were successfully analyzed.")
		os.Exit(1)
	}

	if *csvPath != "" {
		if err := store.WriteCSV(*csvPath, results); err != nil {
			log.Fatalf("writing CSV: %v", err)
		}
		fmt.Printf("Results saved to: %s\n", *csvPath)
	}
}

// analyzeAndReport runs the batch, archives a parquet snapshot, and prints
// the summary table. Returns successfully rated results sorted for display.
func analyzeAndReport(ctx context.Context, a *app, syms []string) []domain.RatingResult {
	fmt.Printf("Analyzing %d stock(s)...\n", len(syms))
	items := a.analyzer.AnalyzeBatch(ctx, syms)

	var results []domain.RatingResult
	for _, item := range items {
		if item.Result != nil {
			results = append(results, *item.Result)
		} else {
			fmt.Printf("  %s: %s\n", item.Symbol, item.Error)
		}
	}
	if len(results) == 0 {
		return nil
	}

	if err := a.archive.WriteRatings(results, time.Now()); err != nil {
		log.Printf("archiving snapshot: %v", err)
	}

	sortByRating(results)
	printSummary(results)
	return results
}

// ratingOrder maps grades to display rank, best first.
var ratingOrder = map[string]int{
	"AAA": 0, "AA": 1, "A": 2, "BBB": 3, "BB": 4, "B": 5, "C": 6, "D": 7,
}

func sortByRating(results []domain.RatingResult) {
	sort.SliceStable(results, func(i, j int) bool {
		ri, ok := ratingOrder[results[i].Rating]
		if !ok {
			ri = 8
		}
		rj, ok := ratingOrder[results[j].Rating]
		if !ok {
			rj = 8
		}
		if ri != rj {
			return ri < rj
		}
		return results[i].TotalScore > results[j].TotalScore
	})
}

func printSummary(results []domain.RatingResult) {
	fmt.Printf("\n%-12s %-8s %-6s %-8s %s\n", "SYMBOL", "RATING", "SCORE", "TIER", "COMPANY")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range results {
		company := r.CompanyName
		if len(company) > 28 {
			company = company[:25] + "..."
		}
		fmt.Printf("%-12s %-8s %-6d %-8s %s\n", r.Symbol, r.Rating, r.TotalScore, r.Tier, company)
	}
}

// splitSymbols parses comma or whitespace separated user input.
func splitSymbols(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var syms []string
	for _, f := range fields {
		if s := strings.ToUpper(strings.TrimSpace(f)); s != "" {
			syms = append(syms, s)
		}
	}
	return syms
}
