package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func TestBuildSummary_AllClean(t *testing.T) {
	summary := BuildSummary(
		[]domain.ItemDiff{{Impact: domain.SeverityNone}},
		domain.TotalsDiff{Impact: domain.SeverityNone},
		nil,
		nil,
		nil,
	)

	assert.Zero(t, summary.TotalDiffs)
	assert.Equal(t, domain.SeverityNone, summary.OverallImpact)
}

func TestBuildSummary_Counts(t *testing.T) {
	summary := BuildSummary(
		[]domain.ItemDiff{
			{Impact: domain.SeverityCritical},
			{Impact: domain.SeverityHigh},
			{Impact: domain.SeverityNone},
		},
		domain.TotalsDiff{Impact: domain.SeverityMedium, FinancialImpact: 13},
		&domain.ShippingDiff{Impact: domain.SeverityHigh},
		[]domain.PromoDiff{{Impact: domain.SeverityLow}},
		[]domain.MarketingTagDiff{{Impact: domain.SeverityMedium}},
	)

	assert.Equal(t, 6, summary.TotalDiffs)
	assert.Equal(t, 1, summary.CriticalDiffs)
	assert.Equal(t, 2, summary.HighDiffs)
	assert.Equal(t, 2, summary.MediumDiffs)
	assert.InDelta(t, 13.0, summary.FinancialImpact, 0.0001)
	assert.Equal(t, domain.SeverityCritical, summary.OverallImpact)
}

func TestBuildSummary_OverallPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		impacts  []domain.Severity
		expected domain.Severity
	}{
		{name: "high beats medium", impacts: []domain.Severity{domain.SeverityHigh, domain.SeverityMedium}, expected: domain.SeverityHigh},
		{name: "medium beats low", impacts: []domain.Severity{domain.SeverityMedium, domain.SeverityLow}, expected: domain.SeverityMedium},
		{name: "low alone", impacts: []domain.Severity{domain.SeverityLow}, expected: domain.SeverityLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var itemDiffs []domain.ItemDiff
			for _, impact := range tc.impacts {
				itemDiffs = append(itemDiffs, domain.ItemDiff{Impact: impact})
			}
			summary := BuildSummary(itemDiffs, domain.TotalsDiff{}, nil, nil, nil)
			assert.Equal(t, tc.expected, summary.OverallImpact)
		})
	}
}
