package compare

import (
	"fmt"
	"math"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// ComparePromotions reconciles the two promotion sets by id. A promotion
// planned but not applied is medium; an extra applied one is medium when it
// carries a value and low otherwise; value mismatches beyond a cent are low.
func ComparePromotions(budgetPromos, cartPromos []domain.NormalizedPromotion) []domain.PromoDiff {
	diffs := make([]domain.PromoDiff, 0, len(budgetPromos)+len(cartPromos))
	processed := make(map[string]struct{}, len(cartPromos))

	for _, budgetPromo := range budgetPromos {
		cartPromo, ok := findPromo(cartPromos, budgetPromo.ID)
		if !ok {
			diffs = append(diffs, domain.PromoDiff{
				ID:          budgetPromo.ID,
				Name:        budgetPromo.Name,
				Status:      domain.PromoOnlyInBudget,
				BudgetValue: budgetPromo.Value,
				Impact:      domain.SeverityMedium,
				Explanation: fmt.Sprintf(
					"Promotion %q was planned in the budget (%s) but was not applied to the cart.",
					budgetPromo.Name, formatCurrency(budgetPromo.Value)),
			})
			continue
		}
		processed[cartPromo.ID] = struct{}{}

		if budgetPromo.Value > 0 && cartPromo.Value > 0 {
			valueDiff := cartPromo.Value - budgetPromo.Value
			if math.Abs(valueDiff) > 0.01 {
				diffs = append(diffs, domain.PromoDiff{
					ID:          budgetPromo.ID,
					Name:        budgetPromo.Name,
					Status:      domain.PromoValueDiff,
					BudgetValue: budgetPromo.Value,
					CartValue:   cartPromo.Value,
					ValueDiff:   valueDiff,
					Impact:      domain.SeverityLow,
					Explanation: fmt.Sprintf("Promotion %q has a different value: budget %s, cart %s.",
						budgetPromo.Name, formatCurrency(budgetPromo.Value), formatCurrency(cartPromo.Value)),
				})
				continue
			}
			diffs = append(diffs, domain.PromoDiff{
				ID:          budgetPromo.ID,
				Name:        budgetPromo.Name,
				Status:      domain.PromoMatch,
				BudgetValue: budgetPromo.Value,
				CartValue:   cartPromo.Value,
				Impact:      domain.SeverityNone,
			})
			continue
		}

		// Id-only promotions match without a value comparison.
		diffs = append(diffs, domain.PromoDiff{
			ID:     budgetPromo.ID,
			Name:   budgetPromo.Name,
			Status: domain.PromoMatch,
			Impact: domain.SeverityNone,
		})
	}

	for _, cartPromo := range cartPromos {
		if _, ok := processed[cartPromo.ID]; ok {
			continue
		}
		impact := domain.SeverityLow
		explanation := fmt.Sprintf(
			"Promotion %q applied to the cart was not planned in the budget. Check that it is valid.",
			cartPromo.Name)
		if cartPromo.Value > 0 {
			impact = domain.SeverityMedium
			explanation = fmt.Sprintf(
				"Promotion %q applied to the cart was not planned in the budget. Additional discount of %s.",
				cartPromo.Name, formatCurrency(cartPromo.Value))
		}
		diffs = append(diffs, domain.PromoDiff{
			ID:          cartPromo.ID,
			Name:        cartPromo.Name,
			Status:      domain.PromoOnlyInCart,
			CartValue:   cartPromo.Value,
			Impact:      impact,
			Explanation: explanation,
		})
	}

	return diffs
}

func findPromo(promos []domain.NormalizedPromotion, id string) (domain.NormalizedPromotion, bool) {
	for _, p := range promos {
		if p.ID == id {
			return p, true
		}
	}
	return domain.NormalizedPromotion{}, false
}
