package api

// CompareRequest is the payload for a budget-vs-cart comparison. The cart is
// identified by its checkout URL (or a raw orderForm id).
type CompareRequest struct {
	OrderFormURL string `json:"orderFormUrl"`
	IDBudget     string `json:"idBudget"`
}

// CompareBudgetsRequest is the payload for a budget-vs-budget comparison.
type CompareBudgetsRequest struct {
	IDBudget1 string `json:"idBudget1"`
	IDBudget2 string `json:"idBudget2"`
}

// Error is the wire shape of a failed request.
type Error struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
