package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeightRange(t *testing.T) {
	tests := []struct {
		name          string
		weight        float64
		expectedStart float64
	}{
		{name: "zero", weight: 0, expectedStart: 0},
		{name: "first band upper bound", weight: 30, expectedStart: 0},
		{name: "second band lower bound", weight: 30.1, expectedStart: 30.1},
		{name: "mid band", weight: 5000, expectedStart: 4500.1},
		{name: "last band upper bound", weight: 30750, expectedStart: 23250.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := GetWeightRange(tc.weight)
			require.NotNil(t, r)
			assert.Equal(t, tc.expectedStart, r.Start)
		})
	}
}

func TestGetWeightRange_OutOfBand(t *testing.T) {
	assert.Nil(t, GetWeightRange(-1))
	assert.Nil(t, GetWeightRange(30751))
	// Boundary gap between 30 and 30.1.
	assert.Nil(t, GetWeightRange(30.05))
}

func TestGetWeightRangeIndex(t *testing.T) {
	assert.Equal(t, 0, GetWeightRangeIndex(15))
	assert.Equal(t, 1, GetWeightRangeIndex(100))
	assert.Equal(t, 17, GetWeightRangeIndex(30000))
	assert.Equal(t, -1, GetWeightRangeIndex(-5))
	assert.Equal(t, -1, GetWeightRangeIndex(40000))
	assert.Equal(t, -1, GetWeightRangeIndex(750.05))
}

func TestGetWeightRangeIndex_CoversWholeTable(t *testing.T) {
	for i, r := range CIFPDOWeightRanges {
		assert.Equal(t, i, GetWeightRangeIndex(r.Start), "start of band %d", i)
		assert.Equal(t, i, GetWeightRangeIndex(r.End), "end of band %d", i)
	}
}

func TestIsSameWeightRange(t *testing.T) {
	assert.True(t, IsSameWeightRange(5, 25))
	assert.True(t, IsSameWeightRange(100, 700))
	assert.False(t, IsSameWeightRange(25, 40))
	// An out-of-band weight never matches, not even itself.
	assert.False(t, IsSameWeightRange(30.05, 30.05))
	assert.False(t, IsSameWeightRange(-1, 5))
}

func TestWeightRangeDifference(t *testing.T) {
	assert.Equal(t, 0, WeightRangeDifference(5, 25))
	assert.Equal(t, 1, WeightRangeDifference(25, 40))
	assert.Equal(t, -1, WeightRangeDifference(40, 25))
	assert.Equal(t, 17, WeightRangeDifference(10, 30000))
	assert.Equal(t, 0, WeightRangeDifference(-1, 30000))
}

func TestFormatWeightRange(t *testing.T) {
	assert.Equal(t, "0 - 30 kg", FormatWeightRange(CIFPDOWeightRanges[0]))
	assert.Equal(t, "30.1 - 750 kg", FormatWeightRange(CIFPDOWeightRanges[1]))
}

func TestFormattedWeightRange(t *testing.T) {
	assert.Equal(t, "0 - 30 kg", FormattedWeightRange(12))
	assert.Equal(t, "invalid weight", FormattedWeightRange(-2))
	assert.Equal(t, "above 30750 kg", FormattedWeightRange(99999))
}
