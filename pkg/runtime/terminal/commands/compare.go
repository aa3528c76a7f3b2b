// Package commands implements the terminal subcommands for offline
// comparisons. Documents come from local JSON files instead of the live
// VTEX APIs, which makes the commands usable against exported snapshots.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
	vtexmodels "github.com/amaranz/budget-atlas/pkg/models/vtex"
	"github.com/amaranz/budget-atlas/pkg/services/compare"
	"github.com/amaranz/budget-atlas/pkg/services/compare/normalize"
)

// Reporter renders comparison results for the terminal.
type Reporter interface {
	HandleComparison(result *domain.ComparisonResult) error
	HandleBudgetComparison(result *domain.BudgetComparisonResult) error
}

// NewCompareCmd compares a saved budget file against an order form snapshot.
func NewCompareCmd(settings compare.Settings, reporter Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <budget.json> <orderform.json>",
		Short: "Compare a budget against an order form snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var budget vtexmodels.Budget
			if err := readJSONFile(args[0], &budget); err != nil {
				return err
			}
			var orderForm vtexmodels.OrderForm
			if err := readJSONFile(args[1], &orderForm); err != nil {
				return err
			}

			normalizedBudget, err := normalize.Budget(ctx, &budget)
			if err != nil {
				return err
			}
			normalizedCart, err := normalize.OrderForm(ctx, &orderForm)
			if err != nil {
				return err
			}

			metadata := domain.ComparisonMetadata{
				OrderFormID: orDefault(orderForm.OrderFormID, filepath.Base(args[1])),
				BudgetID:    orDefault(budget.ID, filepath.Base(args[0])),
				ComparedAt:  time.Now().UTC(),
			}

			result := compare.Compare(normalizedBudget, normalizedCart, metadata, settings)
			return reporter.HandleComparison(result)
		},
	}
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
