package rating

import (
	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// The seven component scorers below map one derived feature (plus the tier
// where the table is tier-conditional) to an integer score and the label of
// the matched threshold bucket. The thresholds and labels are
// domain-specified constants; Large and Mid share one table, Small uses a
// stricter one. A null feature is always {0, "NA"} so missing data never
// penalizes the total.

const labelNA = "NA"

func na() domain.ComponentScore {
	return domain.ComponentScore{Score: 0, Label: labelNA}
}

// ScoreYoYGrowth scores year-over-year revenue growth (percent).
func ScoreYoYGrowth(y null.Float, tier domain.Tier) domain.ComponentScore {
	if !y.Valid {
		return na()
	}
	v := y.Float64
	if tier == domain.TierLarge || tier == domain.TierMid {
		switch {
		case v > 2:
			return domain.ComponentScore{Score: 2, Label: ">2%"}
		case v >= 0:
			return domain.ComponentScore{Score: 0, Label: "0–2%"}
		default:
			return domain.ComponentScore{Score: -1, Label: "<0%"}
		}
	}
	switch {
	case v > 5:
		return domain.ComponentScore{Score: 2, Label: ">5%"}
	case v >= 2:
		return domain.ComponentScore{Score: 0, Label: "2–5%"}
	default:
		return domain.ComponentScore{Score: -1, Label: "<2%"}
	}
}

// ScorePATMargin scores profit-after-tax margin (percent).
func ScorePATMargin(p null.Float, tier domain.Tier) domain.ComponentScore {
	if !p.Valid {
		return na()
	}
	v := p.Float64
	if tier == domain.TierLarge || tier == domain.TierMid {
		switch {
		case v > 8:
			return domain.ComponentScore{Score: 2, Label: ">8%"}
		case v >= 2.5:
			return domain.ComponentScore{Score: 1, Label: "2.5–8%"}
		default:
			return domain.ComponentScore{Score: -2, Label: "<2.5%"}
		}
	}
	switch {
	case v > 9:
		return domain.ComponentScore{Score: 2, Label: ">9%"}
	case v >= 2.5:
		return domain.ComponentScore{Score: 1, Label: "2.5–9%"}
	default:
		return domain.ComponentScore{Score: -2, Label: "<2.5%"}
	}
}

// ScoreCFOPAT scores the operating-cashflow-to-profit ratio. Not
// tier-conditional.
func ScoreCFOPAT(r null.Float) domain.ComponentScore {
	if !r.Valid {
		return na()
	}
	switch {
	case r.Float64 > 1.0:
		return domain.ComponentScore{Score: 2, Label: ">1.0x"}
	case r.Float64 >= 0.7:
		return domain.ComponentScore{Score: 1, Label: "0.7–1.0x"}
	default:
		return domain.ComponentScore{Score: -1, Label: "<0.7x"}
	}
}

// ScoreCFIRevenue scores the investing-cashflow-to-revenue ratio. The ratio
// is compared as a percentage (ratio * 100); investing outflows are
// negative, so "better" is closer to zero.
func ScoreCFIRevenue(r null.Float, tier domain.Tier) domain.ComponentScore {
	if !r.Valid {
		return na()
	}
	pct := r.Float64 * 100
	if tier == domain.TierLarge || tier == domain.TierMid {
		switch {
		case pct > -10:
			return domain.ComponentScore{Score: 2, Label: ">-10%"}
		case pct >= -20:
			return domain.ComponentScore{Score: 1, Label: "-20% to -10%"}
		default:
			return domain.ComponentScore{Score: -1, Label: "<-20%"}
		}
	}
	switch {
	case pct > -10:
		return domain.ComponentScore{Score: 2, Label: ">-10%"}
	case pct >= -15:
		return domain.ComponentScore{Score: 1, Label: "-15% to -10%"}
	default:
		return domain.ComponentScore{Score: -1, Label: "<-15%"}
	}
}

// ScoreBorrowingGrowth scores long-term debt growth (percent); lower is
// better.
func ScoreBorrowingGrowth(b null.Float, tier domain.Tier) domain.ComponentScore {
	if !b.Valid {
		return na()
	}
	v := b.Float64
	if tier == domain.TierLarge || tier == domain.TierMid {
		switch {
		case v < 10:
			return domain.ComponentScore{Score: 2, Label: "<10%"}
		case v <= 25:
			return domain.ComponentScore{Score: 1, Label: "10–25%"}
		default:
			return domain.ComponentScore{Score: -2, Label: ">25%"}
		}
	}
	switch {
	case v < 8:
		return domain.ComponentScore{Score: 2, Label: "<8%"}
	case v <= 25:
		return domain.ComponentScore{Score: 1, Label: "8–25%"}
	default:
		return domain.ComponentScore{Score: -2, Label: ">25%"}
	}
}

// ScoreStockReturn scores the trailing 30-day stock return (percent). Not
// tier-conditional.
func ScoreStockReturn(sr null.Float) domain.ComponentScore {
	if !sr.Valid {
		return na()
	}
	switch {
	case sr.Float64 > 0:
		return domain.ComponentScore{Score: 1, Label: ">0%"}
	case sr.Float64 >= -5:
		return domain.ComponentScore{Score: 0, Label: "-5%–0%"}
	default:
		return domain.ComponentScore{Score: -1, Label: "<-5%"}
	}
}
