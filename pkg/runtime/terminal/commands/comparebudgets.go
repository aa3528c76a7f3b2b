package commands

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
	vtexmodels "github.com/amaranz/budget-atlas/pkg/models/vtex"
	"github.com/amaranz/budget-atlas/pkg/services/compare"
	"github.com/amaranz/budget-atlas/pkg/services/compare/normalize"
)

// NewCompareBudgetsCmd compares two saved budget files. SKU weights for the
// freight comparison come from an optional JSON map of sku id to kilograms.
func NewCompareBudgetsCmd(settings compare.Settings, reporter Reporter) *cobra.Command {
	var weightsPath string

	cmd := &cobra.Command{
		Use:   "compare-budgets <budget1.json> <budget2.json>",
		Short: "Compare two budgets against each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var budget1, budget2 vtexmodels.Budget
			if err := readJSONFile(args[0], &budget1); err != nil {
				return err
			}
			if err := readJSONFile(args[1], &budget2); err != nil {
				return err
			}

			skuWeights := map[string]float64{}
			if weightsPath != "" {
				if err := readJSONFile(weightsPath, &skuWeights); err != nil {
					return err
				}
			}

			normalized1, err := normalize.Budget(ctx, &budget1)
			if err != nil {
				return err
			}
			normalized2, err := normalize.Budget(ctx, &budget2)
			if err != nil {
				return err
			}

			metadata := domain.BudgetComparisonMetadata{
				Budget1ID:  orDefault(budget1.ID, filepath.Base(args[0])),
				Budget2ID:  orDefault(budget2.ID, filepath.Base(args[1])),
				ComparedAt: time.Now().UTC(),
			}

			result := compare.CompareBudgets(normalized1, normalized2, skuWeights, metadata, settings)
			return reporter.HandleBudgetComparison(result)
		},
	}

	cmd.Flags().StringVarP(&weightsPath, "weights", "w", "",
		"Path to a JSON file mapping sku ids to weights in kg")

	return cmd
}
