package vtex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
)

func TestExtractOrderFormID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "raw id",
			url:      "abc123def456789",
			expected: "abc123def456789",
		},
		{
			name:     "query parameter",
			url:      "https://shop.myvtex.com/checkout?orderFormId=abc123def456",
			expected: "abc123def456",
		},
		{
			name:     "path segment",
			url:      "https://shop.myvtex.com/api/checkout/pub/orderForm/9f2a4c6e8b01",
			expected: "9f2a4c6e8b01",
		},
		{
			name:     "embedded hex id",
			url:      "https://shop.myvtex.com/cart#df41270d21954d15b9a9ba55ea9ecf6b",
			expected: "df41270d21954d15b9a9ba55ea9ecf6b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractOrderFormID(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestExtractOrderFormID_Invalid(t *testing.T) {
	for _, url := range []string{"", "???", "https://shop.myvtex.com/", "short"} {
		_, err := ExtractOrderFormID(url)
		require.Error(t, err, "url %q", url)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestMockStores(t *testing.T) {
	ctx := context.Background()

	orderForm, err := MockCheckoutStore{}.GetOrderForm(ctx, "of-123")
	require.NoError(t, err)
	assert.Equal(t, "of-123", orderForm.OrderFormID)
	assert.NotEmpty(t, orderForm.Items)

	budget1, err := MockBudgetStore{}.GetBudget(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", budget1.ID)
	assert.Equal(t, "ORC-0001", budget1.IDBudget)

	budget2, err := MockBudgetStore{}.GetBudget(ctx, "b-2")
	require.NoError(t, err)
	assert.Equal(t, "ORC-0002", budget2.IDBudget)

	weights, err := MockCatalogStore{}.GetSkuWeights(ctx, []string{"SKU001", "SKU999"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"SKU001": 2.5}, weights)

	_, err = MockCheckoutStore{}.GetOrderForm(ctx, "")
	assert.True(t, apperrors.IsNotFound(err))
	_, err = MockBudgetStore{}.GetBudget(ctx, "")
	assert.True(t, apperrors.IsNotFound(err))
}
