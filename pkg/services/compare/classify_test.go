package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaranz/budget-atlas/pkg/models/domain"
)

func TestPercentageDiff(t *testing.T) {
	tests := []struct {
		name     string
		budget   float64
		cart     float64
		expected float64
	}{
		{name: "both zero", budget: 0, cart: 0, expected: 0},
		{name: "zero baseline with value", budget: 0, cart: 50, expected: 100},
		{name: "increase", budget: 100, cart: 110, expected: 10},
		{name: "decrease", budget: 100, cart: 90, expected: -10},
		{name: "identical", budget: 42.5, cart: 42.5, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, PercentageDiff(tc.budget, tc.cart), 0.0001)
		})
	}
}

func TestClassifyImpact(t *testing.T) {
	settings := DefaultSettings()

	tests := []struct {
		name     string
		diffPct  float64
		diffAbs  float64
		expected domain.Severity
	}{
		{name: "no difference", diffPct: 0, diffAbs: 0, expected: domain.SeverityNone},
		{name: "below every threshold", diffPct: 0.05, diffAbs: 0.005, expected: domain.SeverityNone},
		{name: "small percentage", diffPct: 0.2, diffAbs: 0.005, expected: domain.SeverityLow},
		{name: "small absolute", diffPct: 0.05, diffAbs: 0.5, expected: domain.SeverityLow},
		{name: "medium percentage", diffPct: 2, diffAbs: 10, expected: domain.SeverityMedium},
		{name: "medium absolute", diffPct: 0.5, diffAbs: 30, expected: domain.SeverityMedium},
		{name: "high absolute", diffPct: 3, diffAbs: 60, expected: domain.SeverityHigh},
		{name: "critical percentage", diffPct: 10, diffAbs: 5, expected: domain.SeverityCritical},
		{name: "critical absolute", diffPct: 0.5, diffAbs: 150, expected: domain.SeverityCritical},
		{name: "negative deltas use magnitude", diffPct: -10, diffAbs: -5, expected: domain.SeverityCritical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyImpact(tc.diffPct, tc.diffAbs, settings))
		})
	}
}

func TestClassifyImpact_Monotonic(t *testing.T) {
	settings := DefaultSettings()

	// Growing a percentage delta must never lower the severity.
	previous := domain.SeverityNone
	for _, pct := range []float64{0, 0.05, 0.2, 1.5, 3, 6, 20} {
		severity := ClassifyImpact(pct, 0, settings)
		assert.GreaterOrEqual(t, int(severity), int(previous), "pct %v", pct)
		previous = severity
	}
}
