package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
	"github.com/amaranz/budget-atlas/pkg/services/compare/normalize"
)

// CheckoutStore resolves live carts from the checkout service.
type CheckoutStore interface {
	GetOrderForm(ctx context.Context, orderFormID string) (*vtex.OrderForm, error)
}

// BudgetStore resolves saved quotations from the document store.
type BudgetStore interface {
	GetBudget(ctx context.Context, budgetID string) (*vtex.Budget, error)
}

// CatalogStore resolves SKU weights in kilograms. Unknown SKUs must be
// absent from the returned map, not reported as errors.
type CatalogStore interface {
	GetSkuWeights(ctx context.Context, skuIDs []string) (map[string]float64, error)
}

// Controller orchestrates a comparison run: fetch both source documents
// concurrently, normalize them independently, run the differs and aggregate.
type Controller struct {
	checkout CheckoutStore
	budgets  BudgetStore
	catalog  CatalogStore
	settings Settings
}

func NewController(checkout CheckoutStore, budgets BudgetStore, catalog CatalogStore, settings Settings) *Controller {
	return &Controller{
		checkout: checkout,
		budgets:  budgets,
		catalog:  catalog,
		settings: settings,
	}
}

// Compare audits one budget against one live cart.
func (c *Controller) Compare(
	ctx context.Context,
	orderFormID, budgetID, requestID string,
) (*domain.ComparisonResult, error) {
	logger := zerolog.Ctx(ctx)

	var orderForm *vtex.OrderForm
	var budget *vtex.Budget

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orderForm, err = c.checkout.GetOrderForm(gctx, orderFormID)
		if err != nil {
			return fmt.Errorf("failed to fetch order form: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budget, err = c.budgets.GetBudget(gctx, budgetID)
		if err != nil {
			return fmt.Errorf("failed to fetch budget: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalizedCart, err := normalize.OrderForm(ctx, orderForm)
	if err != nil {
		return nil, err
	}
	normalizedBudget, err := normalize.Budget(ctx, budget)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("budget_items", len(normalizedBudget.Items)).
		Int("cart_items", len(normalizedCart.Items)).
		Msg("documents normalized")

	metadata := domain.ComparisonMetadata{
		OrderFormID: orderFormID,
		BudgetID:    budgetID,
		ComparedAt:  time.Now().UTC(),
		RequestID:   requestID,
	}

	return Compare(normalizedBudget, normalizedCart, metadata, c.settings), nil
}

// CompareBudgets audits two saved quotations against each other, including
// the weight comparison backed by the catalog's SKU weights.
func (c *Controller) CompareBudgets(
	ctx context.Context,
	budget1ID, budget2ID, requestID string,
) (*domain.BudgetComparisonResult, error) {
	logger := zerolog.Ctx(ctx)

	var budget1, budget2 *vtex.Budget

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budget1, err = c.budgets.GetBudget(gctx, budget1ID)
		if err != nil {
			return fmt.Errorf("failed to fetch budget %s: %w", budget1ID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budget2, err = c.budgets.GetBudget(gctx, budget2ID)
		if err != nil {
			return fmt.Errorf("failed to fetch budget %s: %w", budget2ID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalized1, err := normalize.Budget(ctx, budget1)
	if err != nil {
		return nil, err
	}
	normalized2, err := normalize.Budget(ctx, budget2)
	if err != nil {
		return nil, err
	}

	skuIDs := uniqueSkuIDs(normalized1.Items, normalized2.Items)
	skuWeights, err := c.catalog.GetSkuWeights(ctx, skuIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sku weights: %w", err)
	}

	logger.Debug().
		Int("budget1_items", len(normalized1.Items)).
		Int("budget2_items", len(normalized2.Items)).
		Int("weighted_skus", len(skuWeights)).
		Msg("documents normalized")

	metadata := domain.BudgetComparisonMetadata{
		Budget1ID:  budget1ID,
		Budget2ID:  budget2ID,
		ComparedAt: time.Now().UTC(),
		RequestID:  requestID,
	}

	return CompareBudgets(normalized1, normalized2, skuWeights, metadata, c.settings), nil
}

func uniqueSkuIDs(itemSets ...[]domain.NormalizedItem) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, items := range itemSets {
		for _, item := range items {
			if _, ok := seen[item.SkuID]; ok {
				continue
			}
			seen[item.SkuID] = struct{}{}
			ids = append(ids, item.SkuID)
		}
	}
	return ids
}
