package normalize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

func floatPtr(v float64) *float64 { return &v }

func TestBudget_NilDocument(t *testing.T) {
	doc, err := Budget(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBudget_MissingItems(t *testing.T) {
	_, err := Budget(context.Background(), &vtex.Budget{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBudget_MajorUnitsPassThrough(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Name: "Cimento", Quantity: 10, Price: 35.00},
		},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.InDelta(t, 35.00, doc.Items[0].UnitPrice, 0.0001)
	assert.InDelta(t, 350.00, doc.Items[0].TotalPrice, 0.0001)
}

func TestBudget_MinorUnitHeuristic(t *testing.T) {
	// Mean list price above 1000 flags the document as stored in cents.
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Quantity: 10, Price: 3500},
			{SkuID: "SKU002", Quantity: 5, Price: 2890},
		},
		Totals: &vtex.BudgetTotals{Subtotal: 49450, Total: 49450},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	assert.InDelta(t, 35.00, doc.Items[0].UnitPrice, 0.0001)
	assert.InDelta(t, 28.90, doc.Items[1].UnitPrice, 0.0001)
	assert.InDelta(t, 494.50, doc.Totals.Subtotal, 0.0001)
	assert.InDelta(t, 494.50, doc.Totals.Total, 0.0001)
}

func TestBudget_PrefersSellingPrice(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Quantity: 1, Price: 28.90, SellingPrice: floatPtr(27.90)},
		},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	assert.InDelta(t, 27.90, doc.Items[0].UnitPrice, 0.0001)
}

func TestBudget_DuplicateSkuKeepsFirst(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Quantity: 1, Price: 10},
			{SkuID: "SKU001", Quantity: 5, Price: 20},
		},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, 1, doc.Items[0].Quantity)
}

func TestBudget_DiscountsFromPriceTags(t *testing.T) {
	// Negative price tags outrank the explicit top-level field.
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Quantity: 1, Price: 100, PriceTags: []vtex.PriceTag{
				{Name: "discount@price", Value: -5.00},
				{Name: "surcharge", Value: 2.00},
			}},
			{SkuID: "SKU002", Quantity: 1, Price: 50, PriceTags: []vtex.PriceTag{
				{Name: "discount@price", Value: -3.00},
			}},
		},
		Discounts: floatPtr(99),
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	assert.InDelta(t, 8.00, doc.Totals.Discounts, 0.0001)
}

func TestBudget_DiscountsFallbackChain(t *testing.T) {
	b := &vtex.Budget{
		Items:     []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		Discounts: floatPtr(7),
		Totals:    &vtex.BudgetTotals{Subtotal: 100, Discount: 12, Total: 93},
	}

	doc, err := Budget(context.Background(), b)
	require.NoError(t, err)
	assert.InDelta(t, 7.00, doc.Totals.Discounts, 0.0001)

	b.Discounts = nil
	doc, err = Budget(context.Background(), b)
	require.NoError(t, err)
	assert.InDelta(t, 12.00, doc.Totals.Discounts, 0.0001)
}

func TestBudget_ExpressSurcharge(t *testing.T) {
	b := &vtex.Budget{
		Items:                 []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		Shipping:              floatPtr(45),
		ShippingDeliveryValue: 20,
		DeliveryType:          "EXP",
		ShippingType:          "CIF",
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.NotNil(t, doc.Shipping)
	assert.InDelta(t, 65.00, doc.Shipping.ShippingValue, 0.0001)
	assert.Equal(t, "EXP/CIF", doc.Shipping.DeliveryType)
}

func TestBudget_NoSurchargeForStandardDelivery(t *testing.T) {
	b := &vtex.Budget{
		Items:                 []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		Shipping:              floatPtr(45),
		ShippingDeliveryValue: 20,
		DeliveryType:          "PDO",
		ShippingType:          "CIF",
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.NotNil(t, doc.Shipping)
	assert.InDelta(t, 45.00, doc.Shipping.ShippingValue, 0.0001)
	assert.Equal(t, "PDO/CIF", doc.Shipping.DeliveryType)
}

func TestBudget_PostalCodeDigitsOnly(t *testing.T) {
	b := &vtex.Budget{
		Items:   []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		Address: &vtex.Address{PostalCode: "01310-100"},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.NotNil(t, doc.Shipping)
	assert.Equal(t, "01310100", doc.Shipping.PostalCode)
}

func TestBudget_NoShippingInfo(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	assert.Nil(t, doc.Shipping)
}

func TestBudget_LegacyShippingData(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		ShippingData: &vtex.BudgetShippingData{
			PostalCode:    "04538132",
			DeliveryType:  "PDO/CIF",
			ShippingValue: 30,
		},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.NotNil(t, doc.Shipping)
	assert.Equal(t, "04538132", doc.Shipping.PostalCode)
	assert.Equal(t, "PDO/CIF", doc.Shipping.DeliveryType)
	assert.InDelta(t, 30.00, doc.Shipping.ShippingValue, 0.0001)
}

func TestBudget_DerivedTotalsWithoutTotalsBlock(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Quantity: 2, Price: 100},
			{SkuID: "SKU002", Quantity: 1, Price: 50, TotalPrice: 50},
		},
		Shipping: floatPtr(45),
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	assert.InDelta(t, 250.00, doc.Totals.Subtotal, 0.0001)
	assert.InDelta(t, 45.00, doc.Totals.Shipping, 0.0001)
	assert.InDelta(t, 295.00, doc.Totals.Total, 0.0001)
}

func TestBudget_PromotionsAndTags(t *testing.T) {
	b := &vtex.Budget{
		Items: []vtex.BudgetItem{{SkuID: "SKU001", Quantity: 1, Price: 100}},
		Promotions: []vtex.BudgetPromotion{
			{ID: "promo-1", Name: "Cupom", Value: 10},
		},
		MarketingTags: []string{" Usar-Pontos-Agora ", ""},
	}

	doc, err := Budget(context.Background(), b)

	require.NoError(t, err)
	require.Len(t, doc.Promotions, 1)
	assert.InDelta(t, 10.00, doc.Promotions[0].Value, 0.0001)
	assert.Equal(t, []string{"usar-pontos-agora"}, doc.MarketingTags)
}
