package vtex

import (
	"context"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

// The mock stores serve canned documents so the service can run without
// VTEX credentials. The fixtures deliberately disagree on a few fields so
// a mock comparison produces a non-trivial report.

// MockCheckoutStore serves a fixed order form regardless of the id asked
// for, echoing the requested id back.
type MockCheckoutStore struct{}

func (MockCheckoutStore) GetOrderForm(_ context.Context, orderFormID string) (*vtex.OrderForm, error) {
	if orderFormID == "" {
		return nil, apperrors.NewNotFound("order form", orderFormID)
	}
	orderForm := mockOrderForm()
	orderForm.OrderFormID = orderFormID
	return orderForm, nil
}

// MockBudgetStore serves two fixed budgets keyed by id suffix: ids ending
// in "2" get the second fixture, everything else gets the first.
type MockBudgetStore struct{}

func (MockBudgetStore) GetBudget(_ context.Context, budgetID string) (*vtex.Budget, error) {
	if budgetID == "" {
		return nil, apperrors.NewNotFound("budget", budgetID)
	}
	var budget *vtex.Budget
	if len(budgetID) > 0 && budgetID[len(budgetID)-1] == '2' {
		budget = mockBudget2()
	} else {
		budget = mockBudget1()
	}
	budget.ID = budgetID
	return budget, nil
}

// MockCatalogStore serves fixed SKU weights; unknown SKUs are omitted.
type MockCatalogStore struct{}

func (MockCatalogStore) GetSkuWeights(_ context.Context, skuIDs []string) (map[string]float64, error) {
	known := map[string]float64{
		"SKU001": 2.5,
		"SKU002": 1.2,
		"SKU003": 0.8,
	}
	weights := make(map[string]float64, len(skuIDs))
	for _, id := range skuIDs {
		if w, ok := known[id]; ok {
			weights[id] = w
		}
	}
	return weights, nil
}

func mockOrderForm() *vtex.OrderForm {
	return &vtex.OrderForm{
		OrderFormID: "mock-order-form",
		Items: []vtex.OrderFormItem{
			{ID: "SKU001", Name: "Cimento CP-II 50kg", Quantity: 10, Price: 3500, SellingPrice: 3500, Seller: "1"},
			{ID: "SKU002", Name: "Argamassa AC-III 20kg", Quantity: 5, Price: 2890, SellingPrice: 2790, Seller: "1"},
			{ID: "SKU004", Name: "Trincha 2 Pol", Quantity: 2, Price: 990, SellingPrice: 990, Seller: "1"},
		},
		Totalizers: []vtex.Totalizer{
			{ID: "Items", Name: "Items Total", Value: 50930},
			{ID: "Discounts", Name: "Discounts Total", Value: -500},
			{ID: "Shipping", Name: "Shipping Total", Value: 4500},
		},
		ShippingData: &vtex.ShippingData{
			Address: &vtex.Address{PostalCode: "01310-100", City: "Sao Paulo", State: "SP"},
			LogisticsInfo: []vtex.LogisticsInfo{
				{ItemIndex: 0, SelectedSLA: "AMARANZ LOGISTICA CAJ", Price: 4500},
			},
		},
		MarketingData: &vtex.MarketingData{
			MarketingTags: []string{"usar-pontos-agora"},
		},
		Value: 54930,
	}
}

func mockBudget1() *vtex.Budget {
	sellingPrice := 27.90
	return &vtex.Budget{
		ID:       "mock-budget-1",
		IDBudget: "ORC-0001",
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Name: "Cimento CP-II 50kg", Quantity: 10, Price: 35.00},
			{SkuID: "SKU002", Name: "Argamassa AC-III 20kg", Quantity: 5, Price: 28.90, SellingPrice: &sellingPrice,
				PriceTags: []vtex.PriceTag{{Name: "discount@price", Value: -5.00}}},
			{SkuID: "SKU003", Name: "Rejunte Flexivel 1kg", Quantity: 3, Price: 12.50},
		},
		Totals: &vtex.BudgetTotals{
			Subtotal: 527.00,
			Discount: 5.00,
			Shipping: 45.00,
			Total:    567.00,
		},
		Address:      &vtex.Address{PostalCode: "01310-100", City: "Sao Paulo", State: "SP"},
		DeliveryType: "PDO",
		ShippingType: "CIF",
	}
}

func mockBudget2() *vtex.Budget {
	return &vtex.Budget{
		ID:       "mock-budget-2",
		IDBudget: "ORC-0002",
		Items: []vtex.BudgetItem{
			{SkuID: "SKU001", Name: "Cimento CP-II 50kg", Quantity: 12, Price: 34.50},
			{SkuID: "SKU002", Name: "Argamassa AC-III 20kg", Quantity: 5, Price: 28.90},
		},
		Totals: &vtex.BudgetTotals{
			Subtotal: 558.50,
			Shipping: 65.00,
			Total:    623.50,
		},
		Address:               &vtex.Address{PostalCode: "04538-132", City: "Sao Paulo", State: "SP"},
		DeliveryType:          "EXP",
		ShippingType:          "CIF",
		ShippingDeliveryValue: 20.00,
	}
}
