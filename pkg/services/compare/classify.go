package compare

import (
	"math"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// PercentageDiff returns the relative delta from budget to cart in percent.
// A zero baseline yields 0 when both are zero, else 100: any value appearing
// where none was expected counts as a full jump.
func PercentageDiff(budget, cart float64) float64 {
	if budget == 0 {
		if cart == 0 {
			return 0
		}
		return 100
	}
	return (cart - budget) / budget * 100
}

// ClassifyImpact maps a relative/absolute delta pair onto a severity level.
// Both deltas are evaluated on their absolute values; first match wins.
func ClassifyImpact(diffPct, diffAbs float64, settings Settings) domain.Severity {
	absPct := math.Abs(diffPct)
	absAbs := math.Abs(diffAbs)

	switch {
	case absPct > settings.PercentageThreshold*10 || absAbs > settings.AbsoluteThreshold*2:
		return domain.SeverityCritical
	case absPct > 5 || absAbs > settings.AbsoluteThreshold:
		return domain.SeverityHigh
	case absPct > 1 || absAbs > settings.AbsoluteThreshold/2:
		return domain.SeverityMedium
	case absPct > 0.1 || absAbs > 0.01:
		return domain.SeverityLow
	default:
		return domain.SeverityNone
	}
}
