// Package news computes the keyword-based event score from company
// headlines and fetches those headlines from Google News RSS, with an
// optional Alpaca fallback for NSE companies that have US-listed ADRs.
package news

import (
	"math"
	"strings"
)

// Event score bounds. Keyword sums beyond these are clamped, so a run of
// very good or very bad headlines cannot dominate the seven-component total.
const (
	minEventScore = -5
	maxEventScore = 3
)

// Keyword lists are fixed domain constants matched case-insensitively as
// substrings. Each distinct keyword found in a headline counts once.
var positiveKeywords = []string{
	"profit", "growth", "expansion", "order win", "funding", "merger",
	"record high", "revenue up", "earnings beat", "strong performance",
	"dividend", "acquisition",
}

var negativeKeywords = []string{
	"fraud", "default", "loss", "scam", "investigation", "penalty",
	"layoff", "lawsuit", "decline", "fall", "crash", "warning", "debt",
	"trouble", "crisis",
}

// ScoreHeadlines computes the event score for a set of headlines: +1 per
// positive keyword match, -1 per negative, summed across headlines, rounded
// and clamped to the event score range. An empty set scores 0.
func ScoreHeadlines(headlines []string) int {
	score := 0.0
	for _, h := range headlines {
		text := strings.ToLower(h)
		for _, w := range positiveKeywords {
			if strings.Contains(text, w) {
				score++
			}
		}
		for _, w := range negativeKeywords {
			if strings.Contains(text, w) {
				score--
			}
		}
	}
	return ClampEventScore(score)
}

// ClampEventScore rounds a raw keyword sum to the nearest integer and clamps
// it to [minEventScore, maxEventScore].
func ClampEventScore(raw float64) int {
	n := int(math.Round(raw))
	if n < minEventScore {
		return minEventScore
	}
	if n > maxEventScore {
		return maxEventScore
	}
	return n
}
