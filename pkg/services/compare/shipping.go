package compare

import (
	"fmt"
	"math"
	"strings"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

// deliveryMapping is the budget-side canonical pair a cart carrier label
// translates to.
type deliveryMapping struct {
	DeliveryType string // PDO (standard) or EXP (express)
	ShippingType string // CIF (freight included) or FOB (customer pays)
}

// cartToBudgetDeliveryMap translates the known cart carrier labels
// (selectedSla) into the budget delivery vocabulary.
var cartToBudgetDeliveryMap = map[string]deliveryMapping{
	"AMARANZ LOGISTICA CAJ": {DeliveryType: "PDO", ShippingType: "CIF"},
	"AMARANZ LOGISTICA FSA": {DeliveryType: "PDO", ShippingType: "CIF"},
	"EXP LOGISTICA CAJ":     {DeliveryType: "EXP", ShippingType: "CIF"},
	"EXP LOGISTICA FSA":     {DeliveryType: "EXP", ShippingType: "CIF"},
	"FOB LOGISTICA CAJ":     {DeliveryType: "PDO", ShippingType: "FOB"},
	"FOB LOGISTICA FSA":     {DeliveryType: "PDO", ShippingType: "FOB"},
}

func mapCartDeliveryType(cartDeliveryType string) (deliveryMapping, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(cartDeliveryType))
	m, ok := cartToBudgetDeliveryMap[normalized]
	return m, ok
}

// deliveryTypesEquivalent reports whether the cart delivery label, translated
// through the carrier map, matches the budget delivery label. Unrecognized
// cart labels fall back to direct case-insensitive equality.
func deliveryTypesEquivalent(cartDeliveryType, budgetDeliveryType string) bool {
	mapped, ok := mapCartDeliveryType(cartDeliveryType)
	if !ok {
		return strings.EqualFold(cartDeliveryType, budgetDeliveryType)
	}

	budgetNormalized := strings.ToUpper(budgetDeliveryType)

	if strings.Contains(budgetNormalized, mapped.DeliveryType) &&
		strings.Contains(budgetNormalized, mapped.ShippingType) {
		return true
	}
	if budgetNormalized == mapped.DeliveryType {
		return true
	}
	return budgetNormalized == mapped.DeliveryType+"/"+mapped.ShippingType
}

func formatCartDeliveryType(cartDeliveryType string) string {
	if mapped, ok := mapCartDeliveryType(cartDeliveryType); ok {
		return fmt.Sprintf("%s (%s/%s)", cartDeliveryType, mapped.DeliveryType, mapped.ShippingType)
	}
	return cartDeliveryType
}

func normalizePostalCode(postalCode string) string {
	var b strings.Builder
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CompareShipping compares the delivery blocks of the two documents. Both
// absent yields nil; exactly one absent is itself a high-severity divergence.
// For present pairs the severity precedence is postal code, then delivery
// type, then shipping value, except a critical value delta always wins.
func CompareShipping(budgetShipping, cartShipping *domain.NormalizedShipping, settings Settings) *domain.ShippingDiff {
	if budgetShipping == nil && cartShipping == nil {
		return nil
	}

	if budgetShipping == nil || cartShipping == nil {
		diff := &domain.ShippingDiff{
			PostalCodeDiff:   true,
			DeliveryTypeDiff: true,
			Impact:           domain.SeverityHigh,
		}
		var budgetValue, cartValue float64
		if budgetShipping != nil {
			budgetValue = budgetShipping.ShippingValue
			diff.BudgetPostalCode = budgetShipping.PostalCode
			diff.BudgetDeliveryType = budgetShipping.DeliveryType
			diff.Explanation = "Cart has no delivery data to compare."
		}
		if cartShipping != nil {
			cartValue = cartShipping.ShippingValue
			diff.CartPostalCode = cartShipping.PostalCode
			diff.CartDeliveryType = cartShipping.DeliveryType
			diff.Explanation = "Budget has no delivery data to compare."
		}
		diff.ShippingValueDiff = domain.FieldDiff{
			Budget:  budgetValue,
			Cart:    cartValue,
			Diff:    cartValue - budgetValue,
			DiffPct: 100,
		}
		return diff
	}

	postalCodeDiff := normalizePostalCode(budgetShipping.PostalCode) !=
		normalizePostalCode(cartShipping.PostalCode)
	deliveryTypeDiff := !deliveryTypesEquivalent(cartShipping.DeliveryType, budgetShipping.DeliveryType)

	valueDiff := domain.FieldDiff{
		Budget:  budgetShipping.ShippingValue,
		Cart:    cartShipping.ShippingValue,
		Diff:    cartShipping.ShippingValue - budgetShipping.ShippingValue,
		DiffPct: PercentageDiff(budgetShipping.ShippingValue, cartShipping.ShippingValue),
	}

	impact := domain.SeverityNone
	var parts []string

	if postalCodeDiff {
		impact = domain.SeverityHigh
		parts = append(parts, fmt.Sprintf(
			"Postal code differs: budget %s, cart %s. This can affect freight value and delivery time.",
			orMissing(budgetShipping.PostalCode), orMissing(cartShipping.PostalCode)))
	}

	if deliveryTypeDiff {
		if impact == domain.SeverityNone {
			impact = domain.SeverityMedium
		}
		parts = append(parts, fmt.Sprintf("Delivery type differs: budget %q, cart %q.",
			budgetShipping.DeliveryType, formatCartDeliveryType(cartShipping.DeliveryType)))
	}

	if math.Abs(valueDiff.Diff) > 0.01 {
		valueImpact := ClassifyImpact(valueDiff.DiffPct, valueDiff.Diff, settings)
		if valueImpact != domain.SeverityNone &&
			(impact == domain.SeverityNone || valueImpact == domain.SeverityCritical) {
			impact = valueImpact
		}
		parts = append(parts, fmt.Sprintf("Shipping %s in the cart: %s (%s).",
			higherLower(valueDiff.Diff), formatCurrency(math.Abs(valueDiff.Diff)), formatPct(valueDiff.DiffPct)))
	}

	return &domain.ShippingDiff{
		PostalCodeDiff:     postalCodeDiff,
		BudgetPostalCode:   budgetShipping.PostalCode,
		CartPostalCode:     cartShipping.PostalCode,
		DeliveryTypeDiff:   deliveryTypeDiff,
		BudgetDeliveryType: budgetShipping.DeliveryType,
		CartDeliveryType:   cartShipping.DeliveryType,
		ShippingValueDiff:  valueDiff,
		Impact:             impact,
		Explanation:        strings.Join(parts, " "),
	}
}

func orMissing(s string) string {
	if s == "" {
		return "(not provided)"
	}
	return s
}
