package normalize

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/domain"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

// MeanPriceMinorUnitThreshold is the mean unit price above which a budget is
// assumed to be stored in minor units. Known limitation: a low-priced bulk
// catalog stored in minor units can fall under this and be misread as major
// units; changing that behavior needs product sign-off.
const MeanPriceMinorUnitThreshold = 1000.0

// ExpressDeliveryType is the budget delivery-type marker that activates the
// express freight surcharge.
const ExpressDeliveryType = "EXP"

// Budget normalizes a saved quotation document. Budgets may store money in
// major or minor units; detectPriceMultiplier decides which and every
// monetary figure in the document is scaled accordingly.
func Budget(ctx context.Context, b *vtex.Budget) (*domain.NormalizedDocument, error) {
	if b == nil {
		return nil, apperrors.NewValidation("budget", "budget is required")
	}
	if b.Items == nil {
		return nil, apperrors.NewValidation("budget.items", "budget has no items collection")
	}

	multiplier := detectPriceMultiplier(ctx, b)

	items := make([]domain.NormalizedItem, 0, len(b.Items))
	seen := make(map[string]struct{}, len(b.Items))
	for _, item := range b.Items {
		if _, dup := seen[item.SkuID]; dup {
			zerolog.Ctx(ctx).Warn().
				Str("sku_id", item.SkuID).
				Msg("duplicate sku in budget, keeping first occurrence")
			continue
		}
		seen[item.SkuID] = struct{}{}

		unitPrice := item.Price
		if item.SellingPrice != nil {
			unitPrice = *item.SellingPrice
		}
		unitPrice *= multiplier

		totalPrice := unitPrice * float64(item.Quantity)
		if item.TotalPrice != 0 {
			totalPrice = item.TotalPrice * multiplier
		}

		items = append(items, domain.NormalizedItem{
			SkuID:      item.SkuID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
			SellerID:   item.SellerID,
			RefID:      item.RefID,
		})
	}

	return &domain.NormalizedDocument{
		Items:         items,
		Totals:        budgetTotals(b, multiplier),
		Shipping:      budgetShipping(b, multiplier),
		Promotions:    budgetPromotions(b, multiplier),
		MarketingTags: budgetMarketingTags(b),
	}, nil
}

// detectPriceMultiplier decides whether budget prices are stored in minor
// units: a mean list price above MeanPriceMinorUnitThreshold means cents.
func detectPriceMultiplier(ctx context.Context, b *vtex.Budget) float64 {
	if len(b.Items) == 0 {
		return 1
	}

	var sum float64
	for _, item := range b.Items {
		sum += item.Price
	}
	mean := sum / float64(len(b.Items))

	if mean > MeanPriceMinorUnitThreshold {
		zerolog.Ctx(ctx).Info().
			Float64("mean_price", mean).
			Msg("budget prices detected as minor units")
		return 0.01
	}
	return 1
}

// discountsFromPriceTags sums the absolute values of negative per-line
// adjustments; negative price tags are the budget's discount representation.
func discountsFromPriceTags(items []vtex.BudgetItem) float64 {
	var total float64
	for _, item := range items {
		for _, tag := range item.PriceTags {
			if tag.Value < 0 {
				total += -tag.Value
			}
		}
	}
	return total
}

// budgetDiscounts resolves the discount total by priority: negative price
// tags on items, then the explicit top-level field, then the legacy nested
// totals field.
func budgetDiscounts(b *vtex.Budget) float64 {
	if d := discountsFromPriceTags(b.Items); d > 0 {
		return d
	}
	if b.Discounts != nil {
		return *b.Discounts
	}
	if b.Totals != nil {
		return b.Totals.Discount
	}
	return 0
}

// budgetShippingValue resolves the freight total: the flat base field plus
// the express surcharge when the budget is express, falling back to the
// totals block and then the legacy nested block.
func budgetShippingValue(b *vtex.Budget) float64 {
	if b.Shipping != nil {
		value := *b.Shipping
		if b.DeliveryType == ExpressDeliveryType && b.ShippingDeliveryValue != 0 {
			value += b.ShippingDeliveryValue
		}
		return value
	}
	if b.Totals != nil && b.Totals.Shipping != 0 {
		return b.Totals.Shipping
	}
	if b.ShippingData != nil {
		return b.ShippingData.ShippingValue
	}
	return 0
}

func budgetTotals(b *vtex.Budget, multiplier float64) domain.NormalizedTotals {
	discounts := budgetDiscounts(b)
	shippingValue := budgetShippingValue(b)

	if b.Totals != nil {
		return domain.NormalizedTotals{
			Subtotal:  b.Totals.Subtotal * multiplier,
			Discounts: discounts * multiplier,
			Shipping:  shippingValue * multiplier,
			Taxes:     b.Totals.Tax * multiplier,
			Total:     b.Totals.Total * multiplier,
		}
	}

	// No totals block: derive the subtotal from the items themselves.
	var subtotal float64
	for _, item := range b.Items {
		if item.TotalPrice != 0 {
			subtotal += item.TotalPrice
		} else {
			subtotal += item.Price * float64(item.Quantity)
		}
	}
	subtotal *= multiplier

	return domain.NormalizedTotals{
		Subtotal:  subtotal,
		Discounts: discounts * multiplier,
		Shipping:  shippingValue * multiplier,
		Taxes:     0,
		Total:     subtotal - discounts*multiplier + shippingValue*multiplier,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// budgetDeliveryType concatenates the delivery-speed and shipping-liability
// fields ("PDO/CIF") when both are present.
func budgetDeliveryType(b *vtex.Budget) string {
	var parts []string
	if b.DeliveryType != "" {
		parts = append(parts, b.DeliveryType)
	}
	if b.ShippingType != "" {
		parts = append(parts, b.ShippingType)
	}
	return strings.Join(parts, "/")
}

// budgetShipping builds the delivery block, or nil when the budget carries
// no shipping information at all so absence stays observable downstream.
func budgetShipping(b *vtex.Budget, multiplier float64) *domain.NormalizedShipping {
	postalCode := ""
	if b.Address != nil {
		postalCode = digitsOnly(b.Address.PostalCode)
	}
	if postalCode == "" && b.ShippingData != nil {
		postalCode = b.ShippingData.PostalCode
	}

	hasShippingData := b.Shipping != nil ||
		b.ShippingType != "" ||
		b.DeliveryType != "" ||
		b.Address != nil ||
		postalCode != ""
	if !hasShippingData && b.ShippingData == nil {
		return nil
	}

	var shippingValue float64
	if b.Shipping != nil {
		shippingValue = *b.Shipping
		if b.DeliveryType == ExpressDeliveryType && b.ShippingDeliveryValue != 0 {
			shippingValue += b.ShippingDeliveryValue
		}
	} else if b.ShippingData != nil {
		shippingValue = b.ShippingData.ShippingValue
	}

	deliveryType := budgetDeliveryType(b)
	if deliveryType == "" && b.ShippingData != nil {
		deliveryType = b.ShippingData.DeliveryType
	}
	if deliveryType == "" {
		deliveryType = "unknown"
	}

	return &domain.NormalizedShipping{
		PostalCode:    postalCode,
		DeliveryType:  deliveryType,
		ShippingValue: shippingValue * multiplier,
	}
}

func budgetPromotions(b *vtex.Budget, multiplier float64) []domain.NormalizedPromotion {
	if len(b.Promotions) == 0 {
		return nil
	}
	promos := make([]domain.NormalizedPromotion, 0, len(b.Promotions))
	for _, p := range b.Promotions {
		promos = append(promos, domain.NormalizedPromotion{
			ID:    p.ID,
			Name:  p.Name,
			Value: p.Value * multiplier,
		})
	}
	return promos
}

func budgetMarketingTags(b *vtex.Budget) []string {
	var tags []string
	for _, tag := range b.MarketingTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
