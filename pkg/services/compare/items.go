package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// CompareItems reconciles budget line items against cart line items by SKU.
// An item missing from the cart is always critical and an unexpected cart
// item always high; matched pairs are classified by their price delta.
func CompareItems(budgetItems, cartItems []domain.NormalizedItem, settings Settings) []domain.ItemDiff {
	diffs := make([]domain.ItemDiff, 0, len(budgetItems)+len(cartItems))
	processed := make(map[string]struct{}, len(cartItems))

	for _, budgetItem := range budgetItems {
		cartItem, ok := findItem(cartItems, budgetItem.SkuID)
		if !ok {
			diffs = append(diffs, domain.ItemDiff{
				SkuID:       budgetItem.SkuID,
				Name:        budgetItem.Name,
				Status:      domain.ItemMissingInCart,
				BudgetQty:   budgetItem.Quantity,
				BudgetPrice: budgetItem.UnitPrice,
				Impact:      domain.SeverityCritical,
				Explanation: fmt.Sprintf(
					"Item %q is in the budget but was not added to the cart. Expected value: %s.",
					budgetItem.Name, formatCurrency(budgetItem.TotalPrice)),
			})
			continue
		}
		processed[cartItem.SkuID] = struct{}{}
		diffs = append(diffs, compareItemPair(budgetItem, cartItem, settings))
	}

	for _, cartItem := range cartItems {
		if _, ok := processed[cartItem.SkuID]; ok {
			continue
		}
		diffs = append(diffs, domain.ItemDiff{
			SkuID:     cartItem.SkuID,
			Name:      cartItem.Name,
			Status:    domain.ItemUnexpectedInCart,
			CartQty:   cartItem.Quantity,
			CartPrice: cartItem.UnitPrice,
			Impact:    domain.SeverityHigh,
			Explanation: fmt.Sprintf(
				"Item %q was added to the cart but is not in the budget. Additional value: %s.",
				cartItem.Name, formatCurrency(cartItem.TotalPrice)),
		})
	}

	return diffs
}

func findItem(items []domain.NormalizedItem, skuID string) (domain.NormalizedItem, bool) {
	for _, item := range items {
		if item.SkuID == skuID {
			return item, true
		}
	}
	return domain.NormalizedItem{}, false
}

func compareItemPair(budgetItem, cartItem domain.NormalizedItem, settings Settings) domain.ItemDiff {
	qtyDiff := cartItem.Quantity - budgetItem.Quantity
	priceDiff := cartItem.UnitPrice - budgetItem.UnitPrice
	priceDiffPct := PercentageDiff(budgetItem.UnitPrice, cartItem.UnitPrice)

	hasQtyDiff := qtyDiff != 0
	hasPriceDiff := math.Abs(priceDiffPct) > 0.01

	status := domain.ItemMatch
	switch {
	case hasQtyDiff && hasPriceDiff:
		status = domain.ItemQuantityPriceDiff
	case hasQtyDiff:
		status = domain.ItemQuantityDiff
	case hasPriceDiff:
		status = domain.ItemPriceDiff
	}

	impact := domain.SeverityNone
	if status != domain.ItemMatch {
		// Quantity deltas shape the status only; severity tracks price.
		impact = ClassifyImpact(priceDiffPct, priceDiff, settings)
	}

	diff := domain.ItemDiff{
		SkuID:       budgetItem.SkuID,
		Name:        budgetItem.Name,
		Status:      status,
		BudgetQty:   budgetItem.Quantity,
		CartQty:     cartItem.Quantity,
		BudgetPrice: budgetItem.UnitPrice,
		CartPrice:   cartItem.UnitPrice,
		Impact:      impact,
	}
	if hasPriceDiff {
		diff.PriceDiffAbs = priceDiff
		diff.PriceDiffPct = priceDiffPct
	}
	if hasQtyDiff {
		diff.QtyDiff = qtyDiff
	}

	if status != domain.ItemMatch {
		var parts []string
		if hasQtyDiff {
			parts = append(parts, fmt.Sprintf("Quantity: budget %d, cart %d (%s)",
				budgetItem.Quantity, cartItem.Quantity, formatSignedInt(qtyDiff)))
		}
		if hasPriceDiff {
			parts = append(parts, fmt.Sprintf("Unit price: budget %s, cart %s (%s)",
				formatCurrency(budgetItem.UnitPrice), formatCurrency(cartItem.UnitPrice), formatPct(priceDiffPct)))
		}
		diff.Explanation = strings.Join(parts, ". ")
	}

	return diff
}
