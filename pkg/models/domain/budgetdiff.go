package domain

import "time"

// BudgetItemDiffStatus classifies the reconciliation of one SKU between two
// peer budgets.
type BudgetItemDiffStatus string

const (
	BudgetItemMatch             BudgetItemDiffStatus = "match"
	BudgetItemQuantityDiff      BudgetItemDiffStatus = "quantity_diff"
	BudgetItemPriceDiff         BudgetItemDiffStatus = "price_diff"
	BudgetItemQuantityPriceDiff BudgetItemDiffStatus = "quantity_price_diff"
	BudgetItemOnlyInBudget1     BudgetItemDiffStatus = "only_in_budget1"
	BudgetItemOnlyInBudget2     BudgetItemDiffStatus = "only_in_budget2"
)

// BudgetItemDiff is the per-SKU comparison result for a budget-vs-budget run.
// Unlike the budget-vs-cart variant it carries the resolved unit weight, and
// absence on either side is high (not critical) since the documents are peers.
type BudgetItemDiff struct {
	SkuID        string               `json:"skuId"`
	Name         string               `json:"name"`
	Status       BudgetItemDiffStatus `json:"status"`
	Budget1Qty   int                  `json:"budget1Qty,omitempty"`
	Budget2Qty   int                  `json:"budget2Qty,omitempty"`
	Budget1Price float64              `json:"budget1Price,omitempty"`
	Budget2Price float64              `json:"budget2Price,omitempty"`
	UnitWeight   float64              `json:"unitWeight"`
	PriceDiffAbs float64              `json:"priceDiffAbs,omitempty"`
	PriceDiffPct float64              `json:"priceDiffPct,omitempty"`
	QtyDiff      int                  `json:"qtyDiff,omitempty"`
	Impact       Severity             `json:"impact"`
	Explanation  string               `json:"explanation,omitempty"`
}

// BudgetFieldDiff compares one monetary aggregate between two budgets.
type BudgetFieldDiff struct {
	Budget1 float64 `json:"budget1"`
	Budget2 float64 `json:"budget2"`
	Diff    float64 `json:"diff"`
	DiffPct float64 `json:"diffPct"`
}

// BudgetTotalsDiff is the totals comparison of two peer budgets.
type BudgetTotalsDiff struct {
	Subtotal    BudgetFieldDiff `json:"subtotal"`
	Discounts   BudgetFieldDiff `json:"discounts"`
	Shipping    BudgetFieldDiff `json:"shipping"`
	Taxes       BudgetFieldDiff `json:"taxes"`
	Total       BudgetFieldDiff `json:"total"`
	Impact      Severity        `json:"impact"`
	Explanation string          `json:"explanation,omitempty"`
}

// ItemWeight is the resolved weight of one line item. UnitWeight defaults to
// 0 when the SKU is unknown to the weight lookup.
type ItemWeight struct {
	SkuID       string  `json:"skuId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitWeight  float64 `json:"unitWeight"`
	TotalWeight float64 `json:"totalWeight"`
}

// WeightInfo aggregates per-item weights for one document.
type WeightInfo struct {
	TotalWeight float64      `json:"totalWeight"`
	ItemWeights []ItemWeight `json:"itemWeights"`
}

// WeightComparison compares the aggregated weights of two budgets, including
// whether the two totals fall in the same freight weight band.
type WeightComparison struct {
	Budget1         WeightInfo `json:"budget1"`
	Budget2         WeightInfo `json:"budget2"`
	Difference      float64    `json:"difference"`
	Heavier         string     `json:"heavier"` // budget1, budget2 or equal
	SameWeightRange bool       `json:"sameWeightRange"`
	RangeDifference int        `json:"rangeDifference"`
}

// PriceBreakdownItem attributes part of the total-price delta to one
// category. Impact is "expensive" or "cheaper" from budget 2's point of view.
type PriceBreakdownItem struct {
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Budget1Value float64 `json:"budget1Value"`
	Budget2Value float64 `json:"budget2Value"`
	Difference   float64 `json:"difference"`
	Impact       string  `json:"impact"`
}

// PriceAnalysis explains the total-price delta as ranked category deltas.
type PriceAnalysis struct {
	CheaperBudget   string               `json:"cheaperBudget"` // budget1, budget2 or equal
	PriceDifference float64              `json:"priceDifference"`
	Breakdown       []PriceBreakdownItem `json:"breakdown"`
}

// BudgetComparisonSummary merges the per-category severities of a
// budget-vs-budget run.
type BudgetComparisonSummary struct {
	TotalDiffs          int      `json:"totalDiffs"`
	CriticalDiffs       int      `json:"criticalDiffs"`
	HighDiffs           int      `json:"highDiffs"`
	MediumDiffs         int      `json:"mediumDiffs"`
	FinancialDifference float64  `json:"financialDifference"`
	OverallImpact       Severity `json:"overallImpact"`
}

// BudgetComparisonMetadata is passed through unmodified into the result.
type BudgetComparisonMetadata struct {
	Budget1ID  string    `json:"budget1Id"`
	Budget2ID  string    `json:"budget2Id"`
	ComparedAt time.Time `json:"comparedAt"`
	RequestID  string    `json:"requestId"`
}

// BudgetComparisonResult is the complete output of one budget-vs-budget
// comparison.
type BudgetComparisonResult struct {
	Summary           BudgetComparisonSummary  `json:"summary"`
	ItemDiffs         []BudgetItemDiff         `json:"itemDiffs"`
	TotalsDiff        BudgetTotalsDiff         `json:"totalsDiff"`
	ShippingDiff      *ShippingDiff            `json:"shippingDiff"`
	PromoDiffs        []PromoDiff              `json:"promoDiffs"`
	PriceAnalysis     PriceAnalysis            `json:"priceAnalysis"`
	WeightInfo        WeightComparison         `json:"weightInfo"`
	MarketingTagDiffs []MarketingTagDiff       `json:"marketingTagDiffs"`
	Metadata          BudgetComparisonMetadata `json:"metadata"`
}
