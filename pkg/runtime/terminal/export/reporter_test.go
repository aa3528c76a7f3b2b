package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func TestReporter_HandleComparison(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	result := &domain.ComparisonResult{
		Summary: domain.ComparisonSummary{
			TotalDiffs:      2,
			CriticalDiffs:   1,
			FinancialImpact: 13.0,
			OverallImpact:   domain.SeverityCritical,
		},
		ItemDiffs: []domain.ItemDiff{
			{SkuID: "SKU001", Status: domain.ItemMissingInCart, Impact: domain.SeverityCritical, Explanation: "missing"},
		},
		TotalsDiff: domain.TotalsDiff{
			Total:  domain.FieldDiff{Budget: 394.70, Cart: 407.70, Diff: 13.0, DiffPct: 3.29},
			Impact: domain.SeverityMedium,
		},
		ShippingDiff: &domain.ShippingDiff{Impact: domain.SeverityHigh, Explanation: "postal code differs"},
		Metadata: domain.ComparisonMetadata{
			OrderFormID: "of-1",
			BudgetID:    "b-1",
			ComparedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, reporter.HandleComparison(result))

	out := buf.String()
	assert.Contains(t, out, "Budget vs Cart: b-1 vs of-1")
	assert.Contains(t, out, "Overall Impact: critical")
	assert.Contains(t, out, "Financial Impact: R$ 13.00")
	assert.Contains(t, out, "SKU001")
	assert.Contains(t, out, "=== Shipping ===")
	assert.NotContains(t, out, "=== Promotions ===")
}

func TestReporter_HandleBudgetComparison(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	result := &domain.BudgetComparisonResult{
		Summary: domain.BudgetComparisonSummary{
			TotalDiffs:          1,
			FinancialDifference: 144.50,
			OverallImpact:       domain.SeverityHigh,
		},
		ItemDiffs: []domain.BudgetItemDiff{
			{SkuID: "SKU002", Status: domain.BudgetItemOnlyInBudget2, Impact: domain.SeverityHigh, Explanation: "only in budget 2"},
		},
		TotalsDiff: domain.BudgetTotalsDiff{
			Total: domain.BudgetFieldDiff{Budget1: 395, Budget2: 539.50, Diff: 144.50, DiffPct: 36.58},
		},
		WeightInfo: domain.WeightComparison{
			Budget1:         domain.WeightInfo{TotalWeight: 25},
			Budget2:         domain.WeightInfo{TotalWeight: 31},
			Difference:      6,
			Heavier:         "budget2",
			SameWeightRange: false,
			RangeDifference: 1,
		},
		PriceAnalysis: domain.PriceAnalysis{
			CheaperBudget:   "budget1",
			PriceDifference: 144.50,
			Breakdown: []domain.PriceBreakdownItem{
				{Category: "items", Budget1Value: 350, Budget2Value: 494.50, Difference: 144.50, Impact: "expensive"},
			},
		},
		Metadata: domain.BudgetComparisonMetadata{
			Budget1ID:  "b-1",
			Budget2ID:  "b-2",
			ComparedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, reporter.HandleBudgetComparison(result))

	out := buf.String()
	assert.Contains(t, out, "Budget vs Budget: b-1 vs b-2")
	assert.Contains(t, out, "heavier: budget2")
	assert.Contains(t, out, "(1 bands apart)")
	assert.Contains(t, out, "Cheaper budget: budget1")
	assert.Contains(t, out, "items: R$ 350.00 vs R$ 494.50")
}
