package vtex

// Budget is the saved quotation document from the Master Data entity.
// Monetary fields may come in major or minor units depending on how the
// entity was populated; the normalizer detects which.
type Budget struct {
	ID       string        `json:"id"`
	IDBudget string        `json:"idBudget,omitempty"`
	Items    []BudgetItem  `json:"items"`
	Totals   *BudgetTotals `json:"totals,omitempty"`
	Address  *Address      `json:"address,omitempty"`

	// Discounts is the explicit top-level discount total, used only when no
	// item carries negative price tags.
	Discounts *float64 `json:"discounts,omitempty"`

	// Shipping is the base freight value (PDO). ShippingDeliveryValue is the
	// express surcharge, added only when DeliveryType is the express marker.
	Shipping              *float64 `json:"shipping,omitempty"`
	ShippingDeliveryValue float64  `json:"shippingDeliveryValue,omitempty"`

	// DeliveryType is PDO (standard) or EXP (express); ShippingType is CIF
	// (freight included) or FOB (customer pays freight).
	DeliveryType string `json:"deliveryType,omitempty"`
	ShippingType string `json:"shippingType,omitempty"`

	// ShippingData is the legacy nested delivery block, read only when the
	// flat fields above are absent.
	ShippingData *BudgetShippingData `json:"shippingData,omitempty"`

	Promotions    []BudgetPromotion `json:"promotions,omitempty"`
	MarketingTags []string          `json:"marketingTags,omitempty"`
	CreatedAt     string            `json:"createdAt,omitempty"`
	UpdatedAt     string            `json:"updatedAt,omitempty"`
}

type BudgetItem struct {
	SkuID     string  `json:"skuId"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	// Price is the list price; SellingPrice is the final price with per-line
	// adjustments applied and wins when present.
	Price        float64    `json:"price"`
	SellingPrice *float64   `json:"sellingPrice,omitempty"`
	TotalPrice   float64    `json:"totalPrice,omitempty"`
	SellerID     string     `json:"sellerId,omitempty"`
	RefID        string     `json:"refId,omitempty"`
	PriceTags    []PriceTag `json:"priceTags,omitempty"`
}

// PriceTag is a per-line adjustment record; negative values are discounts.
type PriceTag struct {
	Identifier   string  `json:"identifier,omitempty"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	IsPercentual bool    `json:"isPercentual,omitempty"`
	RawValue     float64 `json:"rawValue,omitempty"`
}

type BudgetTotals struct {
	Subtotal float64 `json:"subtotal,omitempty"`
	Discount float64 `json:"discount,omitempty"`
	Shipping float64 `json:"shipping,omitempty"`
	Tax      float64 `json:"tax,omitempty"`
	Total    float64 `json:"total"`
}

type BudgetShippingData struct {
	PostalCode    string   `json:"postalCode,omitempty"`
	DeliveryType  string   `json:"deliveryType,omitempty"`
	ShippingValue float64  `json:"shippingValue,omitempty"`
	Address       *Address `json:"address,omitempty"`
}

type BudgetPromotion struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
