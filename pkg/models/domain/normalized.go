package domain

// NormalizedItem is the common line-item shape both source documents reduce to.
// Monetary amounts are in major currency units.
type NormalizedItem struct {
	SkuID      string  `json:"skuId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	SellerID   string  `json:"sellerId,omitempty"`
	RefID      string  `json:"refId,omitempty"`
}

// NormalizedTotals holds the five monetary aggregates of a document.
// Discounts is always non-negative; the sign is normalized away.
type NormalizedTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Discounts float64 `json:"discounts"`
	Shipping  float64 `json:"shipping"`
	Taxes     float64 `json:"taxes"`
	Total     float64 `json:"total"`
}

// NormalizedShipping holds delivery data. A document without any shipping
// information yields a nil *NormalizedShipping rather than a zero-filled one,
// so "absent" stays distinguishable from "zero-value".
type NormalizedShipping struct {
	PostalCode    string  `json:"postalCode"`
	DeliveryType  string  `json:"deliveryType"`
	ShippingValue float64 `json:"shippingValue"`
}

// NormalizedPromotion is a promotion keyed by id. Value may be 0 for
// id-only promotions with no tracked amount.
type NormalizedPromotion struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// NormalizedDocument is the canonical shape produced by the normalizers and
// consumed by every differ. MarketingTags are lowercase and deduplicated.
type NormalizedDocument struct {
	Items         []NormalizedItem      `json:"items"`
	Totals        NormalizedTotals      `json:"totals"`
	Shipping      *NormalizedShipping   `json:"shipping"`
	Promotions    []NormalizedPromotion `json:"promotions"`
	MarketingTags []string              `json:"marketingTags"`
}
