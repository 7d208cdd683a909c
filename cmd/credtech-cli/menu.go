package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/store"
	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/symbols"
)

// runMenu drives the interactive analyzer loop.
func runMenu() {
	a := newApp()
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("STOCK CREDIT RATING ANALYZER")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Analyze NSE stocks with comprehensive credit scoring")
	fmt.Println("Features: Financial metrics + Market cap tiers + News sentiment")

	for {
		fmt.Println("\nMAIN MENU:")
		fmt.Println("1. Analyze single stock")
		fmt.Println("2. Analyze multiple stocks (batch)")
		fmt.Println("3. Show popular NSE stocks")
		fmt.Println("4. Help & scoring methodology")
		fmt.Println("5. Exit")

		switch prompt(in, "\nEnter your choice (1-5): ") {
		case "1":
			menuSingle(ctx, a, in)
		case "2":
			menuBatch(ctx, a, in)
		case "3":
			showPopular()
			prompt(in, "\nPress Enter to continue...")
		case "4":
			showHelp()
		case "5":
			fmt.Println("\nThank you for using Stock Credit Rating Analyzer!")
			return
		default:
			fmt.Println("Invalid choice. Please select 1-5.")
		}
	}
}

func prompt(in *bufio.Scanner, msg string) string {
	fmt.Print(msg)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func menuSingle(ctx context.Context, a *app, in *bufio.Scanner) {
	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("SINGLE STOCK ANALYSIS")
	fmt.Println(strings.Repeat("-", 50))

	symbol := prompt(in, "\nEnter NSE stock symbol (e.g., RELIANCE, TCS): ")
	if symbol == "" {
		fmt.Println("Please enter a valid symbol.")
		return
	}

	known, companyName := symbols.Resolve(symbol)
	if !known {
		if strings.ToLower(prompt(in, fmt.Sprintf("Symbol %q not found in the directory. Continue anyway? (y/n): ", symbol))) != "y" {
			return
		}
	}

	result := a.analyzer.Analyze(ctx, symbol, companyName)
	displayResult(result)

	if strings.ToLower(prompt(in, "\nSave results to CSV? (y/n): ")) == "y" {
		saveCSV(a, []domain.RatingResult{result})
	}
}

func menuBatch(ctx context.Context, a *app, in *bufio.Scanner) {
	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("BATCH STOCK ANALYSIS")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("\nEnter stock symbols separated by commas")
	fmt.Println("Example: RELIANCE, TCS, HDFCBANK, INFY")

	syms := splitSymbols(prompt(in, "\nStock symbols: "))
	if len(syms) == 0 {
		fmt.Println("No symbols entered.")
		return
	}

	results := analyzeAndReport(ctx, a, syms)
	if len(results) == 0 {
		fmt.Println("No stocks were successfully analyzed.")
		return
	}

	if strings.ToLower(prompt(in, fmt.Sprintf("\nSave all %d results to CSV? (y/n): ", len(results)))) == "y" {
		saveCSV(a, results)
	}
}

func saveCSV(a *app, results []domain.RatingResult) {
	if err := store.WriteCSV(a.cfg.Storage.CSVPath, results); err != nil {
		fmt.Printf("Error saving CSV: %v\n", err)
		return
	}
	fmt.Printf("Results saved to: %s\n", a.cfg.Storage.CSVPath)
}

func displayResult(r domain.RatingResult) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("CREDIT RATING ANALYSIS FOR %s\n", r.Symbol)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Company: %s\n", r.CompanyName)
	fmt.Printf("Yahoo Ticker: %s\n", r.YahooTicker)
	if r.MarketCapCrore.Valid {
		fmt.Printf("Market Cap: ₹%.2f Crores\n", r.MarketCapCrore.Float64)
	} else {
		fmt.Println("Market Cap: N/A")
	}
	fmt.Printf("Tier: %s\n", r.Tier)

	fmt.Printf("\nFINAL RATING: %s (Score: %d)\n", r.Rating, r.TotalScore)

	fmt.Println("\nKEY METRICS:")
	fmt.Printf("  YoY Growth: %s%% [%s] -> Score: %d\n", fmtFeature(r.YoYGrowthPct), r.YoYBucket, r.ScoreYoYGrowth)
	fmt.Printf("  PAT Margin: %s%% [%s] -> Score: %d\n", fmtFeature(r.PATMarginPct), r.PATBucket, r.ScorePATMargin)
	fmt.Printf("  CFO/PAT Ratio: %sx [%s] -> Score: %d\n", fmtFeature(r.CFOPATRatio), r.CFOPATBucket, r.ScoreCFOPAT)
	fmt.Printf("  CFI/Revenue: %s [%s] -> Score: %d\n", fmtFeature(r.CFIRevenueRatio), r.CFIBucket, r.ScoreCFIRevenue)
	fmt.Printf("  Borrowing Growth: %s%% [%s] -> Score: %d\n", fmtFeature(r.BorrowingGrowthPct), r.BorrowingBucket, r.ScoreBorrowingGrowth)
	fmt.Printf("  Stock Return (30D): %s%% [%s] -> Score: %d\n", fmtFeature(r.StockReturn30DPct), r.StockBucket, r.ScoreStockReturn30D)
	fmt.Printf("  News Sentiment: %d\n", r.EventScore)

	fmt.Println("\nRATING SCALE:")
	fmt.Println("  AAA (Excellent) > AA (Very Good) > A (Good) > BBB (Satisfactory)")
	fmt.Println("  BB (Adequate) > B (Below Average) > C (Poor) > D (Very Poor)")
}

func fmtFeature(v null.Float) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%g", v.Float64)
}

func showPopular() {
	fmt.Println("\nPOPULAR NSE STOCKS BY CATEGORY:")
	fmt.Println(strings.Repeat("=", 60))

	for _, cat := range symbols.Popular() {
		fmt.Printf("\n%s:\n", cat.Title)
		for i, sym := range cat.Symbols {
			fmt.Printf("  %d. %s - %s\n", i+1, sym, symbols.Name(sym))
		}
	}
}

func showHelp() {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("HELP & SCORING METHODOLOGY")
	fmt.Println(strings.Repeat("=", 80))

	fmt.Println("\nSCORING COMPONENTS:")
	fmt.Println("1. YoY Growth (Revenue year-over-year growth)")
	fmt.Println("2. PAT Margin (Profit After Tax margin)")
	fmt.Println("3. CFO/PAT Ratio (Cash Flow from Operations to PAT)")
	fmt.Println("4. CFI/Revenue (Capital Investment to Revenue ratio)")
	fmt.Println("5. Borrowing Growth (Debt growth rate)")
	fmt.Println("6. Stock Return (30-day stock performance)")
	fmt.Println("7. News Sentiment (Based on recent news headlines)")

	fmt.Println("\nMARKET CAP TIERS:")
	fmt.Println("  Large Cap: >= ₹1,00,000 Crores")
	fmt.Println("  Mid Cap: ₹10,000 - ₹1,00,000 Crores")
	fmt.Println("  Small Cap: < ₹10,000 Crores")

	fmt.Println("\nRATING SCALE:")
	fmt.Println("  AAA: Excellent (Score >= 11/12)")
	fmt.Println("  AA:  Very Good (Score >= 9/10)")
	fmt.Println("  A:   Good (Score >= 7/8)")
	fmt.Println("  BBB: Satisfactory (Score >= 5/6)")
	fmt.Println("  BB:  Adequate (Score >= 3/4)")
	fmt.Println("  B:   Below Average (Score >= 1/2)")
	fmt.Println("  C:   Poor (Score >= -1/0)")
	fmt.Println("  D:   Very Poor (Score < -1/0)")

	fmt.Println("\nUSAGE TIPS:")
	fmt.Println("  Enter symbols without .NS (automatically added)")
	fmt.Println("  Use comma-separated list for batch analysis")
	fmt.Println("  Higher scores indicate better creditworthiness")
	fmt.Println("  News sentiment adds -5 to +3 points based on headlines")
}
