package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func item(skuID string, qty int, unitPrice float64) domain.NormalizedItem {
	return domain.NormalizedItem{
		SkuID:      skuID,
		Name:       "Item " + skuID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice * float64(qty),
	}
}

func TestCompareItems_Match(t *testing.T) {
	budgetItems := []domain.NormalizedItem{item("SKU001", 10, 35.00)}
	cartItems := []domain.NormalizedItem{item("SKU001", 10, 35.00)}

	diffs := CompareItems(budgetItems, cartItems, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemMatch, diffs[0].Status)
	assert.Equal(t, domain.SeverityNone, diffs[0].Impact)
	assert.Empty(t, diffs[0].Explanation)
}

func TestCompareItems_MissingInCart(t *testing.T) {
	budgetItems := []domain.NormalizedItem{item("SKU001", 2, 35.00)}

	diffs := CompareItems(budgetItems, nil, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemMissingInCart, diffs[0].Status)
	assert.Equal(t, domain.SeverityCritical, diffs[0].Impact)
	assert.Equal(t, 2, diffs[0].BudgetQty)
	assert.Contains(t, diffs[0].Explanation, "not added to the cart")
}

func TestCompareItems_UnexpectedInCart(t *testing.T) {
	cartItems := []domain.NormalizedItem{item("SKU009", 1, 9.90)}

	diffs := CompareItems(nil, cartItems, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemUnexpectedInCart, diffs[0].Status)
	assert.Equal(t, domain.SeverityHigh, diffs[0].Impact)
	assert.Equal(t, 1, diffs[0].CartQty)
}

func TestCompareItems_QuantityOnly(t *testing.T) {
	budgetItems := []domain.NormalizedItem{item("SKU001", 10, 35.00)}
	cartItems := []domain.NormalizedItem{item("SKU001", 12, 35.00)}

	diffs := CompareItems(budgetItems, cartItems, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemQuantityDiff, diffs[0].Status)
	assert.Equal(t, 2, diffs[0].QtyDiff)
	assert.Zero(t, diffs[0].PriceDiffAbs)
	// Severity tracks the price delta only.
	assert.Equal(t, domain.SeverityNone, diffs[0].Impact)
}

func TestCompareItems_PriceDiff(t *testing.T) {
	budgetItems := []domain.NormalizedItem{item("SKU001", 10, 100.00)}
	cartItems := []domain.NormalizedItem{item("SKU001", 10, 110.00)}

	diffs := CompareItems(budgetItems, cartItems, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemPriceDiff, diffs[0].Status)
	assert.InDelta(t, 10.0, diffs[0].PriceDiffAbs, 0.0001)
	assert.InDelta(t, 10.0, diffs[0].PriceDiffPct, 0.0001)
	assert.Equal(t, domain.SeverityCritical, diffs[0].Impact)
}

func TestCompareItems_QuantityAndPriceDiff(t *testing.T) {
	budgetItems := []domain.NormalizedItem{item("SKU001", 10, 100.00)}
	cartItems := []domain.NormalizedItem{item("SKU001", 8, 102.00)}

	diffs := CompareItems(budgetItems, cartItems, DefaultSettings())

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.ItemQuantityPriceDiff, diffs[0].Status)
	assert.Equal(t, -2, diffs[0].QtyDiff)
	assert.Equal(t, domain.SeverityMedium, diffs[0].Impact)
}

func TestCompareItems_CoversEverySku(t *testing.T) {
	budgetItems := []domain.NormalizedItem{
		item("SKU001", 1, 10),
		item("SKU002", 1, 20),
	}
	cartItems := []domain.NormalizedItem{
		item("SKU002", 1, 20),
		item("SKU003", 1, 30),
	}

	diffs := CompareItems(budgetItems, cartItems, DefaultSettings())

	require.Len(t, diffs, 3)
	statuses := map[string]domain.ItemDiffStatus{}
	for _, d := range diffs {
		statuses[d.SkuID] = d.Status
	}
	assert.Equal(t, domain.ItemMissingInCart, statuses["SKU001"])
	assert.Equal(t, domain.ItemMatch, statuses["SKU002"])
	assert.Equal(t, domain.ItemUnexpectedInCart, statuses["SKU003"])
}
