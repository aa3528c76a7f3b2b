package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// CompareTotals compares the five monetary aggregates field by field. The
// overall severity derives from the total field alone; subtotal, discount and
// shipping deltas only contribute explanation clauses once material.
func CompareTotals(budgetTotals, cartTotals domain.NormalizedTotals, settings Settings) domain.TotalsDiff {
	subtotal := compareTotalField(budgetTotals.Subtotal, cartTotals.Subtotal)
	discounts := compareTotalField(budgetTotals.Discounts, cartTotals.Discounts)
	shipping := compareTotalField(budgetTotals.Shipping, cartTotals.Shipping)
	taxes := compareTotalField(budgetTotals.Taxes, cartTotals.Taxes)
	total := compareTotalField(budgetTotals.Total, cartTotals.Total)

	impact := ClassifyImpact(total.DiffPct, total.Diff, settings)

	diff := domain.TotalsDiff{
		Subtotal:        subtotal,
		Discounts:       discounts,
		Shipping:        shipping,
		Taxes:           taxes,
		Total:           total,
		FinancialImpact: total.Diff,
		Impact:          impact,
	}

	if impact != domain.SeverityNone {
		var parts []string
		if math.Abs(subtotal.DiffPct) > 0.1 {
			parts = append(parts, fmt.Sprintf("Subtotal %s: %s",
				higherLower(subtotal.Diff), formatCurrency(math.Abs(subtotal.Diff))))
		}
		if math.Abs(discounts.Diff) > 0.01 {
			parts = append(parts, fmt.Sprintf("Discounts %s: %s",
				higherLower(discounts.Diff), formatCurrency(math.Abs(discounts.Diff))))
		}
		if math.Abs(shipping.Diff) > 0.01 {
			parts = append(parts, fmt.Sprintf("Shipping %s: %s",
				higherLower(shipping.Diff), formatCurrency(math.Abs(shipping.Diff))))
		}
		diff.Explanation = fmt.Sprintf("Total difference: %s. %s",
			formatCurrency(total.Diff), strings.Join(parts, ". "))
	}

	return diff
}

func compareTotalField(budget, cart float64) domain.FieldDiff {
	return domain.FieldDiff{
		Budget:  budget,
		Cart:    cart,
		Diff:    cart - budget,
		DiffPct: PercentageDiff(budget, cart),
	}
}

func higherLower(diff float64) string {
	if diff > 0 {
		return "higher"
	}
	return "lower"
}
