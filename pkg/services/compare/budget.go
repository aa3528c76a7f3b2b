package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
	"github.com/amaranz/budget-atlas/pkg/services/shipping"
)

// CalculateWeightInfo resolves per-item weights through the SKU weight map
// (unknown SKUs weigh 0) and aggregates them.
func CalculateWeightInfo(items []domain.NormalizedItem, skuWeights map[string]float64) domain.WeightInfo {
	itemWeights := make([]domain.ItemWeight, 0, len(items))
	var totalWeight float64

	for _, item := range items {
		unitWeight := skuWeights[item.SkuID]
		itemTotal := unitWeight * float64(item.Quantity)
		itemWeights = append(itemWeights, domain.ItemWeight{
			SkuID:       item.SkuID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitWeight:  unitWeight,
			TotalWeight: itemTotal,
		})
		totalWeight += itemTotal
	}

	return domain.WeightInfo{TotalWeight: totalWeight, ItemWeights: itemWeights}
}

// CompareWeights compares the aggregated weights of two budgets, with a
// 0.01 kg tolerance on the heavier call, and resolves whether both totals
// land in the same freight weight band.
func CompareWeights(budget1Weight, budget2Weight domain.WeightInfo) domain.WeightComparison {
	difference := budget2Weight.TotalWeight - budget1Weight.TotalWeight

	heavier := "equal"
	if math.Abs(difference) > 0.01 {
		if difference > 0 {
			heavier = "budget2"
		} else {
			heavier = "budget1"
		}
	}

	return domain.WeightComparison{
		Budget1:         budget1Weight,
		Budget2:         budget2Weight,
		Difference:      difference,
		Heavier:         heavier,
		SameWeightRange: shipping.IsSameWeightRange(budget1Weight.TotalWeight, budget2Weight.TotalWeight),
		RangeDifference: shipping.WeightRangeDifference(budget1Weight.TotalWeight, budget2Weight.TotalWeight),
	}
}

// CompareBudgetItems reconciles the line items of two peer budgets by SKU.
// Absence on either side is high, not critical: neither budget is the
// authoritative one.
func CompareBudgetItems(
	budget1Items, budget2Items []domain.NormalizedItem,
	skuWeights map[string]float64,
	settings Settings,
) []domain.BudgetItemDiff {
	diffs := make([]domain.BudgetItemDiff, 0, len(budget1Items)+len(budget2Items))
	processed := make(map[string]struct{}, len(budget2Items))

	for _, item1 := range budget1Items {
		unitWeight := skuWeights[item1.SkuID]
		item2, ok := findItem(budget2Items, item1.SkuID)
		if !ok {
			diffs = append(diffs, domain.BudgetItemDiff{
				SkuID:        item1.SkuID,
				Name:         item1.Name,
				Status:       domain.BudgetItemOnlyInBudget1,
				Budget1Qty:   item1.Quantity,
				Budget1Price: item1.UnitPrice,
				UnitWeight:   unitWeight,
				Impact:       domain.SeverityHigh,
				Explanation: fmt.Sprintf("Item %q is only in budget 1. Value: %s, weight: %.2fkg",
					item1.Name, formatCurrency(item1.TotalPrice), unitWeight*float64(item1.Quantity)),
			})
			continue
		}
		processed[item2.SkuID] = struct{}{}
		diffs = append(diffs, compareBudgetItemPair(item1, item2, unitWeight, settings))
	}

	for _, item2 := range budget2Items {
		if _, ok := processed[item2.SkuID]; ok {
			continue
		}
		unitWeight := skuWeights[item2.SkuID]
		diffs = append(diffs, domain.BudgetItemDiff{
			SkuID:        item2.SkuID,
			Name:         item2.Name,
			Status:       domain.BudgetItemOnlyInBudget2,
			Budget2Qty:   item2.Quantity,
			Budget2Price: item2.UnitPrice,
			UnitWeight:   unitWeight,
			Impact:       domain.SeverityHigh,
			Explanation: fmt.Sprintf("Item %q is only in budget 2. Value: %s, weight: %.2fkg",
				item2.Name, formatCurrency(item2.TotalPrice), unitWeight*float64(item2.Quantity)),
		})
	}

	return diffs
}

func compareBudgetItemPair(item1, item2 domain.NormalizedItem, unitWeight float64, settings Settings) domain.BudgetItemDiff {
	qtyDiff := item2.Quantity - item1.Quantity
	priceDiff := item2.UnitPrice - item1.UnitPrice
	priceDiffPct := PercentageDiff(item1.UnitPrice, item2.UnitPrice)

	hasQtyDiff := qtyDiff != 0
	hasPriceDiff := math.Abs(priceDiffPct) > 0.01

	status := domain.BudgetItemMatch
	switch {
	case hasQtyDiff && hasPriceDiff:
		status = domain.BudgetItemQuantityPriceDiff
	case hasQtyDiff:
		status = domain.BudgetItemQuantityDiff
	case hasPriceDiff:
		status = domain.BudgetItemPriceDiff
	}

	impact := domain.SeverityNone
	if status != domain.BudgetItemMatch {
		impact = ClassifyImpact(priceDiffPct, priceDiff, settings)
	}

	diff := domain.BudgetItemDiff{
		SkuID:        item1.SkuID,
		Name:         item1.Name,
		Status:       status,
		Budget1Qty:   item1.Quantity,
		Budget2Qty:   item2.Quantity,
		Budget1Price: item1.UnitPrice,
		Budget2Price: item2.UnitPrice,
		UnitWeight:   unitWeight,
		Impact:       impact,
	}
	if hasPriceDiff {
		diff.PriceDiffAbs = priceDiff
		diff.PriceDiffPct = priceDiffPct
	}
	if hasQtyDiff {
		diff.QtyDiff = qtyDiff
	}

	if status != domain.BudgetItemMatch {
		var parts []string
		if hasQtyDiff {
			parts = append(parts, fmt.Sprintf("Quantity: budget 1 %d, budget 2 %d (%s)",
				item1.Quantity, item2.Quantity, formatSignedInt(qtyDiff)))
		}
		if hasPriceDiff {
			parts = append(parts, fmt.Sprintf("Price: budget 1 %s, budget 2 %s (%s)",
				formatCurrency(item1.UnitPrice), formatCurrency(item2.UnitPrice), formatPct(priceDiffPct)))
		}
		diff.Explanation = strings.Join(parts, ". ")
	}

	return diff
}

// CompareBudgetTotals compares the monetary aggregates of two peer budgets.
func CompareBudgetTotals(budget1Totals, budget2Totals domain.NormalizedTotals, settings Settings) domain.BudgetTotalsDiff {
	subtotal := compareBudgetTotalField(budget1Totals.Subtotal, budget2Totals.Subtotal)
	discounts := compareBudgetTotalField(budget1Totals.Discounts, budget2Totals.Discounts)
	shippingField := compareBudgetTotalField(budget1Totals.Shipping, budget2Totals.Shipping)
	taxes := compareBudgetTotalField(budget1Totals.Taxes, budget2Totals.Taxes)
	total := compareBudgetTotalField(budget1Totals.Total, budget2Totals.Total)

	impact := ClassifyImpact(total.DiffPct, total.Diff, settings)

	diff := domain.BudgetTotalsDiff{
		Subtotal:  subtotal,
		Discounts: discounts,
		Shipping:  shippingField,
		Taxes:     taxes,
		Total:     total,
		Impact:    impact,
	}

	if impact != domain.SeverityNone {
		var parts []string
		if math.Abs(subtotal.DiffPct) > 0.1 {
			parts = append(parts, fmt.Sprintf("Subtotal %s in budget 2: %s",
				higherLower(subtotal.Diff), formatCurrency(math.Abs(subtotal.Diff))))
		}
		if math.Abs(discounts.Diff) > 0.01 {
			parts = append(parts, fmt.Sprintf("Discounts %s in budget 2: %s",
				higherLower(discounts.Diff), formatCurrency(math.Abs(discounts.Diff))))
		}
		if math.Abs(shippingField.Diff) > 0.01 {
			parts = append(parts, fmt.Sprintf("Shipping %s in budget 2: %s",
				higherLower(shippingField.Diff), formatCurrency(math.Abs(shippingField.Diff))))
		}
		diff.Explanation = fmt.Sprintf("Total difference: %s. %s",
			formatCurrency(total.Diff), strings.Join(parts, ". "))
	}

	return diff
}

func compareBudgetTotalField(v1, v2 float64) domain.BudgetFieldDiff {
	return domain.BudgetFieldDiff{
		Budget1: v1,
		Budget2: v2,
		Diff:    v2 - v1,
		DiffPct: PercentageDiff(v1, v2),
	}
}

// AnalyzePrice explains the total-price delta between two budgets as ranked
// category deltas. Discounts have inverted polarity: more discount on budget
// 2 makes it cheaper, not more expensive.
func AnalyzePrice(budget1, budget2 *domain.NormalizedDocument) domain.PriceAnalysis {
	var breakdown []domain.PriceBreakdownItem

	subtotalDiff := budget2.Totals.Subtotal - budget1.Totals.Subtotal
	if math.Abs(subtotalDiff) > 0.01 {
		description := "Cheaper items or lower quantities in budget 2"
		if subtotalDiff > 0 {
			description = "More expensive items or higher quantities in budget 2"
		}
		breakdown = append(breakdown, domain.PriceBreakdownItem{
			Category:     "items",
			Description:  description,
			Budget1Value: budget1.Totals.Subtotal,
			Budget2Value: budget2.Totals.Subtotal,
			Difference:   subtotalDiff,
			Impact:       expensiveCheaper(subtotalDiff > 0),
		})
	}

	shippingDiff := budget2.Totals.Shipping - budget1.Totals.Shipping
	if math.Abs(shippingDiff) > 0.01 {
		description := "Cheaper shipping in budget 2"
		if shippingDiff > 0 {
			description = "More expensive shipping in budget 2"
		}
		breakdown = append(breakdown, domain.PriceBreakdownItem{
			Category:     "shipping",
			Description:  description,
			Budget1Value: budget1.Totals.Shipping,
			Budget2Value: budget2.Totals.Shipping,
			Difference:   shippingDiff,
			Impact:       expensiveCheaper(shippingDiff > 0),
		})
	}

	discountsDiff := budget2.Totals.Discounts - budget1.Totals.Discounts
	if math.Abs(discountsDiff) > 0.01 {
		description := "Fewer discounts applied in budget 2"
		if discountsDiff > 0 {
			description = "More discounts applied in budget 2"
		}
		breakdown = append(breakdown, domain.PriceBreakdownItem{
			Category:     "discounts",
			Description:  description,
			Budget1Value: budget1.Totals.Discounts,
			Budget2Value: budget2.Totals.Discounts,
			Difference:   discountsDiff,
			// More discount means cheaper.
			Impact: expensiveCheaper(discountsDiff < 0),
		})
	}

	taxesDiff := budget2.Totals.Taxes - budget1.Totals.Taxes
	if math.Abs(taxesDiff) > 0.01 {
		description := "Lower taxes in budget 2"
		if taxesDiff > 0 {
			description = "Higher taxes in budget 2"
		}
		breakdown = append(breakdown, domain.PriceBreakdownItem{
			Category:     "taxes",
			Description:  description,
			Budget1Value: budget1.Totals.Taxes,
			Budget2Value: budget2.Totals.Taxes,
			Difference:   taxesDiff,
			Impact:       expensiveCheaper(taxesDiff > 0),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return math.Abs(breakdown[i].Difference) > math.Abs(breakdown[j].Difference)
	})

	priceDifference := budget2.Totals.Total - budget1.Totals.Total
	cheaperBudget := "equal"
	if math.Abs(priceDifference) > 0.01 {
		if priceDifference > 0 {
			cheaperBudget = "budget1"
		} else {
			cheaperBudget = "budget2"
		}
	}

	return domain.PriceAnalysis{
		CheaperBudget:   cheaperBudget,
		PriceDifference: priceDifference,
		Breakdown:       breakdown,
	}
}

func expensiveCheaper(expensive bool) string {
	if expensive {
		return "expensive"
	}
	return "cheaper"
}

// BuildBudgetSummary merges the per-category severities of a budget-vs-budget
// run. The financial difference is taken from the totals diff, not recomputed.
func BuildBudgetSummary(
	itemDiffs []domain.BudgetItemDiff,
	totalsDiff domain.BudgetTotalsDiff,
	shippingDiff *domain.ShippingDiff,
	promoDiffs []domain.PromoDiff,
	tagDiffs []domain.MarketingTagDiff,
) domain.BudgetComparisonSummary {
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

	return domain.BudgetComparisonSummary{
		TotalDiffs:          total,
		CriticalDiffs:       critical,
		HighDiffs:           high,
		MediumDiffs:         medium,
		FinancialDifference: totalsDiff.Total.Diff,
		OverallImpact:       overallImpact(critical, high, medium, total),
	}
}

// CompareBudgets runs the full budget-vs-budget comparison over two
// normalized documents and an externally supplied SKU weight map.
func CompareBudgets(
	budget1, budget2 *domain.NormalizedDocument,
	skuWeights map[string]float64,
	metadata domain.BudgetComparisonMetadata,
	settings Settings,
) *domain.BudgetComparisonResult {
	budget1Weight := CalculateWeightInfo(budget1.Items, skuWeights)
	budget2Weight := CalculateWeightInfo(budget2.Items, skuWeights)
	weightInfo := CompareWeights(budget1Weight, budget2Weight)

	itemDiffs := CompareBudgetItems(budget1.Items, budget2.Items, skuWeights, settings)
	totalsDiff := CompareBudgetTotals(budget1.Totals, budget2.Totals, settings)
	shippingDiff := CompareShipping(budget1.Shipping, budget2.Shipping, settings)
	promoDiffs := ComparePromotions(budget1.Promotions, budget2.Promotions)
	tagDiffs := CompareMarketingTags(budget1.MarketingTags, budget2.MarketingTags, settings.WatchTags)
	priceAnalysis := AnalyzePrice(budget1, budget2)

	summary := BuildBudgetSummary(itemDiffs, totalsDiff, shippingDiff, promoDiffs, tagDiffs)

	return &domain.BudgetComparisonResult{
		Summary:           summary,
		ItemDiffs:         itemDiffs,
		TotalsDiff:        totalsDiff,
		ShippingDiff:      shippingDiff,
		PromoDiffs:        promoDiffs,
		PriceAnalysis:     priceAnalysis,
		WeightInfo:        weightInfo,
		MarketingTagDiffs: tagDiffs,
		Metadata:          metadata,
	}
}
