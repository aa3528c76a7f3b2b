package compare

import (
	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// Compare runs the full budget-vs-cart comparison over two normalized
// documents.
func Compare(
	budget, cart *domain.NormalizedDocument,
	metadata domain.ComparisonMetadata,
	settings Settings,
) *domain.ComparisonResult {
	itemDiffs := CompareItems(budget.Items, cart.Items, settings)
	totalsDiff := CompareTotals(budget.Totals, cart.Totals, settings)
	shippingDiff := CompareShipping(budget.Shipping, cart.Shipping, settings)
	promoDiffs := ComparePromotions(budget.Promotions, cart.Promotions)
	tagDiffs := CompareMarketingTags(budget.MarketingTags, cart.MarketingTags, settings.WatchTags)

	summary := BuildSummary(itemDiffs, totalsDiff, shippingDiff, promoDiffs, tagDiffs)

	return &domain.ComparisonResult{
		Summary:           summary,
		ItemDiffs:         itemDiffs,
		TotalsDiff:        totalsDiff,
		ShippingDiff:      shippingDiff,
		PromoDiffs:        promoDiffs,
		MarketingTagDiffs: tagDiffs,
		Metadata:          metadata,
	}
}
