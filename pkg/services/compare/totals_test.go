package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func TestCompareTotals_NoDifference(t *testing.T) {
	totals := domain.NormalizedTotals{Subtotal: 500, Discounts: 10, Shipping: 45, Total: 535}

	diff := CompareTotals(totals, totals, DefaultSettings())

	assert.Equal(t, domain.SeverityNone, diff.Impact)
	assert.Zero(t, diff.FinancialImpact)
	assert.Empty(t, diff.Explanation)
}

func TestCompareTotals_TotalDrivesSeverity(t *testing.T) {
	budgetTotals := domain.NormalizedTotals{Subtotal: 349.70, Shipping: 45, Total: 394.70}
	cartTotals := domain.NormalizedTotals{Subtotal: 359.70, Shipping: 45, Total: 404.70}

	diff := CompareTotals(budgetTotals, cartTotals, DefaultSettings())

	assert.InDelta(t, 10.0, diff.Total.Diff, 0.001)
	assert.InDelta(t, 10.0, diff.FinancialImpact, 0.001)
	// 10 / 394.70 is ~2.5%, above the medium threshold.
	assert.Equal(t, domain.SeverityMedium, diff.Impact)
	assert.Contains(t, diff.Explanation, "Total difference")
	assert.Contains(t, diff.Explanation, "Subtotal higher")
}

func TestCompareTotals_ShippingClauseOnlyWhenMaterial(t *testing.T) {
	budgetTotals := domain.NormalizedTotals{Subtotal: 100, Shipping: 45, Total: 145}
	cartTotals := domain.NormalizedTotals{Subtotal: 100, Shipping: 65, Total: 165}

	diff := CompareTotals(budgetTotals, cartTotals, DefaultSettings())

	assert.NotEqual(t, domain.SeverityNone, diff.Impact)
	assert.Contains(t, diff.Explanation, "Shipping higher")
	assert.NotContains(t, diff.Explanation, "Subtotal")
}

func TestCompareTotals_FieldDiffShape(t *testing.T) {
	budgetTotals := domain.NormalizedTotals{Total: 100}
	cartTotals := domain.NormalizedTotals{Total: 110}

	diff := CompareTotals(budgetTotals, cartTotals, DefaultSettings())

	assert.Equal(t, 100.0, diff.Total.Budget)
	assert.Equal(t, 110.0, diff.Total.Cart)
	assert.InDelta(t, 10.0, diff.Total.Diff, 0.0001)
	assert.InDelta(t, 10.0, diff.Total.DiffPct, 0.0001)
}
