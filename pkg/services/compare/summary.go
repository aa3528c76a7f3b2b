package compare

import "github.com/amaranz/budget-atlas/pkg/models/domain"

// BuildSummary flattens every per-category severity into counts and one
// top-line severity for a budget-vs-cart run. A nil shipping diff
// contributes a none entry.
func BuildSummary(
	itemDiffs []domain.ItemDiff,
	totalsDiff domain.TotalsDiff,
	shippingDiff *domain.ShippingDiff,
	promoDiffs []domain.PromoDiff,
	tagDiffs []domain.MarketingTagDiff,
) domain.ComparisonSummary {
	impacts := make([]domain.Severity, 0, len(itemDiffs)+len(promoDiffs)+len(tagDiffs)+2)
	for _, d := range itemDiffs {
		impacts = append(impacts, d.Impact)
	}
	impacts = append(impacts, totalsDiff.Impact)
	if shippingDiff != nil {
		impacts = append(impacts, shippingDiff.Impact)
	} else {
		impacts = append(impacts, domain.SeverityNone)
	}
	for _, d := range promoDiffs {
		impacts = append(impacts, d.Impact)
	}
	for _, d := range tagDiffs {
		impacts = append(impacts, d.Impact)
	}

	critical, high, medium, total := countImpacts(impacts)

	return domain.ComparisonSummary{
		TotalDiffs:      total,
		CriticalDiffs:   critical,
		HighDiffs:       high,
		MediumDiffs:     medium,
		FinancialImpact: totalsDiff.FinancialImpact,
		OverallImpact:   overallImpact(critical, high, medium, total),
	}
}

func countImpacts(impacts []domain.Severity) (critical, high, medium, total int) {
	for _, impact := range impacts {
		switch impact {
		case domain.SeverityCritical:
			critical++
		case domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		}
		if impact != domain.SeverityNone {
			total++
		}
	}
	return critical, high, medium, total
}

func overallImpact(critical, high, medium, total int) domain.Severity {
	switch {
	case critical > 0:
		return domain.SeverityCritical
	case high > 0:
		return domain.SeverityHigh
	case medium > 0:
		return domain.SeverityMedium
	case total > 0:
		return domain.SeverityLow
	default:
		return domain.SeverityNone
	}
}
