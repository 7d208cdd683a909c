package rating

import "github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"

// gradeCutoff pairs a minimum total score with the grade it earns.
type gradeCutoff struct {
	min   int
	grade string
}

// Cutoff tables in descending order. Evaluation is first match wins, so
// the ordering here is part of the contract.
var (
	largeMidCutoffs = []gradeCutoff{
		{11, "AAA"}, {9, "AA"}, {7, "A"}, {5, "BBB"},
		{3, "BB"}, {1, "B"}, {-1, "C"},
	}
	smallCutoffs = []gradeCutoff{
		{12, "AAA"}, {10, "AA"}, {8, "A"}, {6, "BBB"},
		{4, "BB"}, {2, "B"}, {0, "C"},
	}
)

// Grade maps a total score to its letter grade using the tier-specific
// cutoff table. Small caps face stricter cutoffs across the whole band.
func Grade(totalScore int, tier domain.Tier) string {
	cutoffs := smallCutoffs
	if tier == domain.TierLarge || tier == domain.TierMid {
		cutoffs = largeMidCutoffs
	}
	for _, c := range cutoffs {
		if totalScore >= c.min {
			return c.grade
		}
	}
	return "D"
}
