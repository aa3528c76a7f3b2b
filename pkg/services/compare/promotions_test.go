package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func TestComparePromotions_OnlyInBudget(t *testing.T) {
	budgetPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Frete Gratis", Value: 45}}

	diffs := ComparePromotions(budgetPromos, nil)

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.PromoOnlyInBudget, diffs[0].Status)
	assert.Equal(t, domain.SeverityMedium, diffs[0].Impact)
	assert.Contains(t, diffs[0].Explanation, "not applied to the cart")
}

func TestComparePromotions_OnlyInCart(t *testing.T) {
	cartPromos := []domain.NormalizedPromotion{
		{ID: "promo-1", Name: "Cupom 10", Value: 10},
		{ID: "promo-2", Name: "Badge"},
	}

	diffs := ComparePromotions(nil, cartPromos)

	require.Len(t, diffs, 2)
	assert.Equal(t, domain.PromoOnlyInCart, diffs[0].Status)
	assert.Equal(t, domain.SeverityMedium, diffs[0].Impact)
	assert.Equal(t, domain.PromoOnlyInCart, diffs[1].Status)
	assert.Equal(t, domain.SeverityLow, diffs[1].Impact)
}

func TestComparePromotions_ValueDiff(t *testing.T) {
	budgetPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom", Value: 10}}
	cartPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom", Value: 15}}

	diffs := ComparePromotions(budgetPromos, cartPromos)

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.PromoValueDiff, diffs[0].Status)
	assert.Equal(t, domain.SeverityLow, diffs[0].Impact)
	assert.InDelta(t, 5.0, diffs[0].ValueDiff, 0.0001)
}

func TestComparePromotions_Match(t *testing.T) {
	budgetPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom", Value: 10}}
	cartPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom", Value: 10}}

	diffs := ComparePromotions(budgetPromos, cartPromos)

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.PromoMatch, diffs[0].Status)
	assert.Equal(t, domain.SeverityNone, diffs[0].Impact)
}

func TestComparePromotions_IdOnlyMatchSkipsValueCheck(t *testing.T) {
	// Cart promotions carry no value, so an id match suffices.
	budgetPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom", Value: 10}}
	cartPromos := []domain.NormalizedPromotion{{ID: "promo-1", Name: "Cupom"}}

	diffs := ComparePromotions(budgetPromos, cartPromos)

	require.Len(t, diffs, 1)
	assert.Equal(t, domain.PromoMatch, diffs[0].Status)
	assert.Equal(t, domain.SeverityNone, diffs[0].Impact)
}
