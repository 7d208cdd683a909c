package rating

import (
	"github.com/guregu/null/v6"

	"github.com/Kartik-Garg-13/CredTech-Hackathon-Project/internal/domain"
)

// Market-cap tier cutoffs in INR crores.
const (
	largeCapCrore  = 100_000
	midCapCroreLow = 10_000
)

// CroreFromRaw converts a provider-native market cap (INR) to crores.
func CroreFromRaw(marketCap null.Float) null.Float {
	if !marketCap.Valid {
		return null.Float{}
	}
	return null.FloatFrom(marketCap.Float64 / 1e7)
}

// TierFor maps a market cap in crores to its tier. A missing market cap
// defaults to Mid rather than failing the analysis.
func TierFor(marketCapCrore null.Float) domain.Tier {
	if !marketCapCrore.Valid {
		return domain.TierMid
	}
	switch {
	case marketCapCrore.Float64 >= largeCapCrore:
		return domain.TierLarge
	case marketCapCrore.Float64 >= midCapCroreLow:
		return domain.TierMid
	default:
		return domain.TierSmall
	}
}
