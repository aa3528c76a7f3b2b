package vtex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amaranz/budget-atlas/pkg/apperrors"
	"github.com/amaranz/budget-atlas/pkg/models/vtex"
)

// BudgetClient reads saved budgets from a Master Data entity.
type BudgetClient struct {
	client *Client
	entity string
}

func NewBudgetClient(client *Client, entity string) *BudgetClient {
	return &BudgetClient{client: client, entity: entity}
}

func (c *BudgetClient) GetBudget(ctx context.Context, budgetID string) (*vtex.Budget, error) {
	path := fmt.Sprintf("/api/dataentities/%s/documents/%s?_fields=_all", c.entity, budgetID)

	var budget vtex.Budget
	status, err := c.client.getJSON(ctx, path, &budget)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, apperrors.NewNotFound("budget", budgetID)
		}
		return nil, err
	}
	return &budget, nil
}
