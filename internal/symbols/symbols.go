// Package symbols holds the static NSE symbol directory used to enrich
// analysis results with company names, plus the ticker normalization rules
// for the Yahoo Finance provider.
package symbols

import (
	"sort"
	"strings"
)

// nseCompanies maps NSE symbols to company names. The directory is
// best-effort enrichment only: symbols missing from it are still analyzed.
var nseCompanies = map[string]string{
	// Large cap
	"RELIANCE":   "Reliance Industries Ltd",
	"TCS":        "Tata Consultancy Services Ltd",
	"HDFCBANK":   "HDFC Bank Ltd",
	"INFY":       "Infosys Ltd",
	"HINDUNILVR": "Hindustan Unilever Ltd",
	"ITC":        "ITC Ltd",
	"ICICIBANK":  "ICICI Bank Ltd",
	"SBIN":       "State Bank of India",
	"BHARTIARTL": "Bharti Airtel Ltd",
	"KOTAKBANK":  "Kotak Mahindra Bank Ltd",

	// Technology
	"WIPRO":   "Wipro Ltd",
	"HCLTECH": "HCL Technologies Ltd",
	"TECHM":   "Tech Mahindra Ltd",
	"LTI":     "Larsen & Toubro Infotech Ltd",
	"LTIM":    "LTI Mindtree Ltd",
	"MPHASIS": "Mphasis Ltd",

	// Banking & financial services
	"AXISBANK":   "Axis Bank Ltd",
	"BAJFINANCE": "Bajaj Finance Ltd",
	"BAJAJFINSV": "Bajaj Finserv Ltd",
	"INDUSINDBK": "IndusInd Bank Ltd",
	"HDFCLIFE":   "HDFC Life Insurance Company Ltd",
	"SBILIFE":    "SBI Life Insurance Company Ltd",
	"ICICIGI":    "ICICI General Insurance Company Ltd",

	// Automobiles
	"MARUTI":     "Maruti Suzuki India Ltd",
	"TATAMOTORS": "Tata Motors Ltd",
	"M&M":        "Mahindra & Mahindra Ltd",
	"BAJAJ-AUTO": "Bajaj Auto Ltd",
	"HEROMOTOCO": "Hero MotoCorp Ltd",
	"EICHERMOT":  "Eicher Motors Ltd",
	"ASHOKLEY":   "Ashok Leyland Ltd",
	"TVSMOTORS":  "TVS Motor Company Ltd",

	// Pharmaceuticals
	"SUNPHARMA":  "Sun Pharmaceutical Industries Ltd",
	"DRREDDY":    "Dr. Reddy's Laboratories Ltd",
	"CIPLA":      "Cipla Ltd",
	"DIVISLAB":   "Divi's Laboratories Ltd",
	"BIOCON":     "Biocon Ltd",
	"LUPIN":      "Lupin Ltd",
	"AUROPHARMA": "Aurobindo Pharma Ltd",
	"TORNTPHARM": "Torrent Pharmaceuticals Ltd",

	// Oil & gas
	"ONGC":      "Oil and Natural Gas Corporation Ltd",
	"IOC":       "Indian Oil Corporation Ltd",
	"BPCL":      "Bharat Petroleum Corporation Ltd",
	"HPCL":      "Hindustan Petroleum Corporation Ltd",
	"GAIL":      "GAIL (India) Ltd",
	"COALINDIA": "Coal India Ltd",

	// Metals & mining
	"TATASTEEL": "Tata Steel Ltd",
	"JSWSTEEL":  "JSW Steel Ltd",
	"HINDALCO":  "Hindalco Industries Ltd",
	"VEDL":      "Vedanta Ltd",
	"SAIL":      "Steel Authority of India Ltd",
	"NMDC":      "NMDC Ltd",
	"MOIL":      "MOIL Ltd",

	// Infrastructure & construction
	"LT":          "Larsen & Toubro Ltd",
	"ULTRACEMCO":  "UltraTech Cement Ltd",
	"SHREECEM":    "Shree Cement Ltd",
	"ACC":         "ACC Ltd",
	"AMBUJCEMENT": "Ambuja Cements Ltd",
	"JKCEMENT":    "JK Cement Ltd",

	// Telecom
	"JIOFINANCE": "Jio Financial Services Ltd",
	"IDEA":       "Vodafone Idea Ltd",

	// Consumer goods
	"NESTLEIND": "Nestle India Ltd",
	"BRITANNIA": "Britannia Industries Ltd",
	"DABUR":     "Dabur India Ltd",
	"MARICO":    "Marico Ltd",
	"GODREJCP":  "Godrej Consumer Products Ltd",
	"COLPAL":    "Colgate Palmolive (India) Ltd",
	"PGHH":      "Procter & Gamble Hygiene and Health Care Ltd",
	"EMAMILTD":  "Emami Ltd",

	// Retail & e-commerce
	"AVENUE":   "Avenue Supermarts Ltd (DMart)",
	"TRENTLTD": "Trent Ltd",

	// Power & utilities
	"NTPC":       "NTPC Ltd",
	"POWERGRID":  "Power Grid Corporation of India Ltd",
	"TATAPOWER":  "Tata Power Company Ltd",
	"ADANIPOWER": "Adani Power Ltd",
	"ADANIGREEN": "Adani Green Energy Ltd",

	// Airlines & travel
	"INDIGO":   "InterGlobe Aviation Ltd",
	"SPICEJET": "SpiceJet Ltd",

	// Textiles
	"WELCORP": "Welspun Corp Ltd",
	"ARVIND":  "Arvind Ltd",

	// Chemicals
	"UPL":        "UPL Ltd",
	"PIDILITIND": "Pidilite Industries Ltd",
	"AAVAS":      "Aavas Financiers Ltd",
	"TATACHEM":   "Tata Chemicals Ltd",

	// Real estate
	"DLF":        "DLF Ltd",
	"GODREJPROP": "Godrej Properties Ltd",
	"OBEROIRLTY": "Oberoi Realty Ltd",
	"PRESTIGE":   "Prestige Estates Projects Ltd",

	// Adani group
	"ADANIPORTS": "Adani Ports and Special Economic Zone Ltd",
	"ADANIENT":   "Adani Enterprises Ltd",
	"ADANIGAS":   "Adani Total Gas Ltd",
	"ADANITRANS": "Adani Transmission Ltd",

	// Tata group
	"TATACONSUM": "Tata Consumer Products Ltd",
	"TATACOFFEE": "Tata Coffee Ltd",
	"TATAELXSI":  "Tata Elxsi Ltd",
	"TATACOMM":   "Tata Communications Ltd",

	// Others
	"ZOMATO":     "Zomato Ltd",
	"PAYTM":      "One 97 Communications Ltd",
	"NYKAA":      "FSN E-Commerce Ventures Ltd",
	"POLICYBZR":  "PB Fintech Ltd",
	"IRCTC":      "Indian Railway Catering and Tourism Corporation Ltd",
	"IRFC":       "Indian Railway Finance Corporation Ltd",
	"HAL":        "Hindustan Aeronautics Ltd",
	"BEL":        "Bharat Electronics Ltd",
	"SJVN":       "SJVN Ltd",
	"NHPC":       "NHPC Ltd",
	"RECLTD":     "REC Ltd",
	"PFC":        "Power Finance Corporation Ltd",
	"HUDCO":      "Housing and Urban Development Corporation Ltd",
	"NBCC":       "NBCC (India) Ltd",
	"RITES":      "RITES Ltd",
	"CONCOR":     "Container Corporation of India Ltd",
	"SCI":        "Shipping Corporation of India Ltd",
	"GMRINFRA":   "GMR Infrastructure Ltd",
	"L&TFH":      "L&T Finance Holdings Ltd",
	"MOTHERSON":  "Motherson Sumi Systems Ltd",
	"APOLLOHOSP": "Apollo Hospitals Enterprise Ltd",
	"FORTIS":     "Fortis Healthcare Ltd",
	"MAXHEALTH":  "Max Healthcare Institute Ltd",
	"JUBLFOOD":   "Jubilant FoodWorks Ltd",
	"PAGEIND":    "Page Industries Ltd",
	"RELAXO":     "Relaxo Footwears Ltd",
	"VBL":        "Varun Beverages Ltd",
	"MCDOWELL-N": "United Spirits Ltd",
	"UBL":        "United Breweries Ltd",
	"RADICO":     "Radico Khaitan Ltd",
}

// sortedSymbols is the directory key set in sorted order. The fuzzy scan in
// Resolve iterates this slice so repeated lookups always return the same
// match.
var sortedSymbols = func() []string {
	syms := make([]string, 0, len(nseCompanies))
	for s := range nseCompanies {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}()

const exchangeSuffix = ".NS"

// Normalize converts user input to the Yahoo Finance ticker format: trimmed,
// uppercased, with the NSE exchange suffix appended when missing.
func Normalize(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if strings.HasSuffix(symbol, exchangeSuffix) {
		return symbol
	}
	return symbol + exchangeSuffix
}

// Clean strips the exchange suffix and normalizes case, producing the bare
// symbol reported back in results.
func Clean(symbol string) string {
	return strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(symbol)), exchangeSuffix)
}

// Resolve looks up a company name for the symbol. It tries an exact
// directory match, then a substring scan in both directions. The lookup
// never rejects a symbol: unknown symbols come back with the cleaned symbol
// echoed as the name, and the bool reports only whether the directory
// matched. Short symbols can fuzzy-match the wrong entry; that is accepted
// as best-effort enrichment since the name only feeds the news query.
func Resolve(symbol string) (bool, string) {
	symbol = Clean(symbol)

	if name, ok := nseCompanies[symbol]; ok {
		return true, name
	}

	for _, nseSymbol := range sortedSymbols {
		if strings.Contains(nseSymbol, symbol) || strings.Contains(symbol, nseSymbol) {
			return true, nseCompanies[nseSymbol]
		}
	}

	return false, symbol
}

// All returns the directory as symbol/name pairs in sorted symbol order.
func All() []Entry {
	entries := make([]Entry, 0, len(sortedSymbols))
	for _, s := range sortedSymbols {
		entries = append(entries, Entry{Symbol: s, Name: nseCompanies[s]})
	}
	return entries
}

// Entry is one directory row.
type Entry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Category groups popular symbols for the interactive menu.
type Category struct {
	Title   string
	Symbols []string
}

// Popular returns curated symbol groups shown by the CLI menu.
func Popular() []Category {
	return []Category{
		{"BANKING & FINANCE", []string{"HDFCBANK", "ICICIBANK", "SBIN", "AXISBANK", "KOTAKBANK", "BAJFINANCE", "INDUSINDBK"}},
		{"TECHNOLOGY", []string{"TCS", "INFY", "WIPRO", "HCLTECH", "TECHM", "LTIM", "MPHASIS"}},
		{"AUTOMOBILES", []string{"MARUTI", "TATAMOTORS", "M&M", "BAJAJ-AUTO", "HEROMOTOCO", "EICHERMOT"}},
		{"PHARMACEUTICALS", []string{"SUNPHARMA", "DRREDDY", "CIPLA", "DIVISLAB", "BIOCON", "LUPIN"}},
		{"OIL & GAS", []string{"RELIANCE", "ONGC", "IOC", "BPCL", "HPCL", "GAIL"}},
		{"INDUSTRIAL", []string{"LT", "TATASTEEL", "JSWSTEEL", "HINDALCO", "ULTRACEMCO", "NTPC"}},
		{"CONSUMER GOODS", []string{"HINDUNILVR", "ITC", "NESTLEIND", "BRITANNIA", "DABUR", "MARICO"}},
		{"NEW AGE", []string{"ZOMATO", "PAYTM", "NYKAA", "POLICYBZR", "IRCTC"}},
	}
}

// Name returns the directory name for a symbol, or the symbol itself when
// the directory has no entry.
func Name(symbol string) string {
	if name, ok := nseCompanies[Clean(symbol)]; ok {
		return name
	}
	return Clean(symbol)
}
