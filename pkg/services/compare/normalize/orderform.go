// Package normalize reduces the two raw VTEX document shapes to the
// canonical structure the differs operate on. Each source has its own unit
// conventions and field layout; everything downstream sees major currency
// units, non-negative discounts and lowercase deduplicated tags.
package normalize

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/domain"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

// centsToUnits converts the Checkout API's integer minor units to major
// currency units.
func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

// OrderForm normalizes a live-cart document. All monetary fields arrive in
// cents. Per-item unit price prefers the selling price over the list price.
func OrderForm(ctx context.Context, of *vtex.OrderForm) (*domain.NormalizedDocument, error) {
	if of == nil {
		return nil, apperrors.NewValidation("orderForm", "order form is required")
	}
	if of.Items == nil {
		return nil, apperrors.NewValidation("orderForm.items", "order form has no items collection")
	}

	items := make([]domain.NormalizedItem, 0, len(of.Items))
	seen := make(map[string]struct{}, len(of.Items))
	for _, item := range of.Items {
		if _, dup := seen[item.ID]; dup {
			zerolog.Ctx(ctx).Warn().
				Str("sku_id", item.ID).
				Msg("duplicate sku in order form, keeping first occurrence")
			continue
		}
		seen[item.ID] = struct{}{}

		unitPrice := item.SellingPrice
		if unitPrice == 0 {
			unitPrice = item.Price
		}
		items = append(items, domain.NormalizedItem{
			SkuID:      item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  centsToUnits(unitPrice),
			TotalPrice: centsToUnits(unitPrice * int64(item.Quantity)),
			SellerID:   item.Seller,
			RefID:      item.RefID,
		})
	}

	return &domain.NormalizedDocument{
		Items:         items,
		Totals:        orderFormTotals(of),
		Shipping:      orderFormShipping(of),
		Promotions:    orderFormPromotions(of),
		MarketingTags: orderFormMarketingTags(of),
	}, nil
}

// orderFormTotals maps the totalizer records onto the canonical aggregates.
// Discount totalizers are negative at the source and sign-flipped here.
func orderFormTotals(of *vtex.OrderForm) domain.NormalizedTotals {
	findTotalizer := func(id string) float64 {
		for _, t := range of.Totalizers {
			if t.ID == id {
				return centsToUnits(t.Value)
			}
		}
		return 0
	}

	discounts := findTotalizer("Discounts")
	if discounts < 0 {
		discounts = -discounts
	}

	return domain.NormalizedTotals{
		Subtotal:  findTotalizer("Items"),
		Discounts: discounts,
		Shipping:  findTotalizer("Shipping"),
		Taxes:     findTotalizer("Tax"),
		Total:     centsToUnits(of.Value),
	}
}

// orderFormShipping reads the delivery block. The shipping value comes from
// the Shipping totalizer rather than nested logistics entries, which only
// carry per-item freight.
func orderFormShipping(of *vtex.OrderForm) *domain.NormalizedShipping {
	sd := of.ShippingData
	if sd == nil {
		return nil
	}

	address := sd.Address
	if address == nil && len(sd.SelectedAddresses) > 0 {
		address = &sd.SelectedAddresses[0]
	}

	deliveryType := "unknown"
	if len(sd.LogisticsInfo) > 0 {
		logistics := sd.LogisticsInfo[0]
		if logistics.SelectedSLA != "" {
			deliveryType = logistics.SelectedSLA
		} else if logistics.SelectedDeliveryChannel != "" {
			deliveryType = logistics.SelectedDeliveryChannel
		}
	}

	var shippingValue float64
	for _, t := range of.Totalizers {
		if t.ID == "Shipping" {
			shippingValue = centsToUnits(t.Value)
			break
		}
	}

	postalCode := ""
	if address != nil {
		postalCode = address.PostalCode
	}

	return &domain.NormalizedShipping{
		PostalCode:    postalCode,
		DeliveryType:  deliveryType,
		ShippingValue: shippingValue,
	}
}

// orderFormPromotions lists applied rates and benefits. Their monetary value
// is not exposed by the source, so promotions normalize with value 0.
func orderFormPromotions(of *vtex.OrderForm) []domain.NormalizedPromotion {
	if of.RatesAndBenefitsData == nil {
		return nil
	}
	identifiers := of.RatesAndBenefitsData.RateAndBenefitsIdentifiers
	promos := make([]domain.NormalizedPromotion, 0, len(identifiers))
	for _, p := range identifiers {
		promos = append(promos, domain.NormalizedPromotion{ID: p.ID, Name: p.Name})
	}
	return promos
}

// orderFormMarketingTags unions the direct tag list with tags embedded in
// matched-promotion parameters (comma or semicolon delimited), lowercased
// and deduplicated.
func orderFormMarketingTags(of *vtex.OrderForm) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	if of.MarketingData != nil {
		for _, tag := range of.MarketingData.MarketingTags {
			add(tag)
		}
	}

	if of.RatesAndBenefitsData != nil {
		for _, benefit := range of.RatesAndBenefitsData.RateAndBenefitsIdentifiers {
			raw := benefit.MatchedParameters["marketingTags"]
			if raw == "" {
				continue
			}
			for _, tag := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
				add(tag)
			}
		}
	}

	return tags
}
