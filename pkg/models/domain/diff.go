package domain

import "time"

// ItemDiffStatus classifies the outcome of reconciling one SKU between a
// budget and a cart.
type ItemDiffStatus string

const (
	ItemMatch             ItemDiffStatus = "match"
	ItemQuantityDiff      ItemDiffStatus = "quantity_diff"
	ItemPriceDiff         ItemDiffStatus = "price_diff"
	ItemQuantityPriceDiff ItemDiffStatus = "quantity_price_diff"
	ItemMissingInCart     ItemDiffStatus = "missing_in_cart"
	ItemUnexpectedInCart  ItemDiffStatus = "unexpected_in_cart"
)

// ItemDiff is the per-SKU comparison result for a budget-vs-cart run.
type ItemDiff struct {
	SkuID        string         `json:"skuId"`
	Name         string         `json:"name"`
	Status       ItemDiffStatus `json:"status"`
	BudgetQty    int            `json:"budgetQty,omitempty"`
	CartQty      int            `json:"cartQty,omitempty"`
	BudgetPrice  float64        `json:"budgetPrice,omitempty"`
	CartPrice    float64        `json:"cartPrice,omitempty"`
	PriceDiffAbs float64        `json:"priceDiffAbs,omitempty"`
	PriceDiffPct float64        `json:"priceDiffPct,omitempty"`
	QtyDiff      int            `json:"qtyDiff,omitempty"`
	Impact       Severity       `json:"impact"`
	Explanation  string         `json:"explanation,omitempty"`
}

// FieldDiff compares one monetary aggregate between the two sides. In a
// budget-vs-cart run "budget" is the quotation and "cart" the live cart; in a
// budget-vs-budget run they are budget 1 and budget 2 respectively.
type FieldDiff struct {
	Budget  float64 `json:"budget"`
	Cart    float64 `json:"cart"`
	Diff    float64 `json:"diff"`
	DiffPct float64 `json:"diffPct"`
}

// TotalsDiff is the field-wise comparison of the five monetary aggregates.
// Overall severity derives from the total field only; the sub-fields feed the
// explanation text.
type TotalsDiff struct {
	Subtotal        FieldDiff `json:"subtotal"`
	Discounts       FieldDiff `json:"discounts"`
	Shipping        FieldDiff `json:"shipping"`
	Taxes           FieldDiff `json:"taxes"`
	Total           FieldDiff `json:"total"`
	FinancialImpact float64   `json:"financialImpact"`
	Impact          Severity  `json:"impact"`
	Explanation     string    `json:"explanation,omitempty"`
}

// ShippingDiff compares postal code, delivery type and shipping value.
type ShippingDiff struct {
	PostalCodeDiff     bool      `json:"postalCodeDiff"`
	BudgetPostalCode   string    `json:"budgetPostalCode,omitempty"`
	CartPostalCode     string    `json:"cartPostalCode,omitempty"`
	DeliveryTypeDiff   bool      `json:"deliveryTypeDiff"`
	BudgetDeliveryType string    `json:"budgetDeliveryType,omitempty"`
	CartDeliveryType   string    `json:"cartDeliveryType,omitempty"`
	ShippingValueDiff  FieldDiff `json:"shippingValueDiff"`
	Impact             Severity  `json:"impact"`
	Explanation        string    `json:"explanation,omitempty"`
}

// PromoDiffStatus classifies the reconciliation of one promotion id.
type PromoDiffStatus string

const (
	PromoMatch        PromoDiffStatus = "match"
	PromoOnlyInBudget PromoDiffStatus = "only_in_budget"
	PromoOnlyInCart   PromoDiffStatus = "only_in_cart"
	PromoValueDiff    PromoDiffStatus = "value_diff"
)

// PromoDiff is the per-promotion comparison result.
type PromoDiff struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      PromoDiffStatus `json:"status"`
	BudgetValue float64         `json:"budgetValue,omitempty"`
	CartValue   float64         `json:"cartValue,omitempty"`
	ValueDiff   float64         `json:"valueDiff,omitempty"`
	Impact      Severity        `json:"impact"`
	Explanation string          `json:"explanation,omitempty"`
}

// MarketingTagDiff records presence of one marketing tag on each side.
type MarketingTagDiff struct {
	Tag         string   `json:"tag"`
	InBudget    bool     `json:"inBudget"`
	InCart      bool     `json:"inCart"`
	Match       bool     `json:"match"`
	Impact      Severity `json:"impact"`
	Explanation string   `json:"explanation,omitempty"`
}

// ComparisonSummary merges every per-category severity into overall counts
// and one top-line severity.
type ComparisonSummary struct {
	TotalDiffs      int      `json:"totalDiffs"`
	CriticalDiffs   int      `json:"criticalDiffs"`
	HighDiffs       int      `json:"highDiffs"`
	MediumDiffs     int      `json:"mediumDiffs"`
	FinancialImpact float64  `json:"financialImpact"`
	OverallImpact   Severity `json:"overallImpact"`
}

// ComparisonMetadata is passed through unmodified into the result.
type ComparisonMetadata struct {
	OrderFormID string    `json:"orderFormId"`
	BudgetID    string    `json:"budgetId"`
	ComparedAt  time.Time `json:"comparedAt"`
	RequestID   string    `json:"requestId"`
}

// ComparisonResult is the complete output of one budget-vs-cart comparison.
type ComparisonResult struct {
	Summary           ComparisonSummary  `json:"summary"`
	ItemDiffs         []ItemDiff         `json:"itemDiffs"`
	TotalsDiff        TotalsDiff         `json:"totalsDiff"`
	ShippingDiff      *ShippingDiff      `json:"shippingDiff"`
	PromoDiffs        []PromoDiff        `json:"promoDiffs"`
	MarketingTagDiffs []MarketingTagDiff `json:"marketingTagDiffs"`
	Metadata          ComparisonMetadata `json:"metadata"`
}
