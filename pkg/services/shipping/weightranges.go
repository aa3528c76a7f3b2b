// Package shipping holds the CIF-PDO freight weight band table and the
// helpers that bucket total weights into it.
package shipping

import (
	"fmt"
	"strconv"
)

// WeightRange is one inclusive freight weight band, in kilograms.
type WeightRange struct {
	Start float64
	End   float64
}

// CIFPDOWeightRanges are the 18 fixed CIF-PDO freight bands. Boundaries are
// inclusive on both ends; the 0.1 kg steps between bands leave small gaps
// (e.g. (30, 30.1)) that intentionally resolve to no band.
var CIFPDOWeightRanges = []WeightRange{
	{Start: 0, End: 30},
	{Start: 30.1, End: 750},
	{Start: 750.1, End: 2250},
	{Start: 2250.1, End: 3000},
	{Start: 3000.1, End: 3750},
	{Start: 3750.1, End: 4500},
	{Start: 4500.1, End: 5250},
	{Start: 5250.1, End: 6000},
	{Start: 6000.1, End: 6750},
	{Start: 6750.1, End: 7500},
	{Start: 7500.1, End: 8250},
	{Start: 8250.1, End: 9750},
	{Start: 9750.1, End: 11250},
	{Start: 11250.1, End: 12750},
	{Start: 12750.1, End: 14250},
	{Start: 14250.1, End: 15750},
	{Start: 15750.1, End: 23250},
	{Start: 23250.1, End: 30750},
}

// MaxCIFPDOWeight is the largest weight covered by any band.
const MaxCIFPDOWeight = 30750.0

// GetWeightRange returns the band containing weight, or nil when the weight
// is negative, above the maximum, or falls in a boundary gap.
func GetWeightRange(weight float64) *WeightRange {
	if weight < 0 {
		return nil
	}
	for i := range CIFPDOWeightRanges {
		r := CIFPDOWeightRanges[i]
		if weight >= r.Start && weight <= r.End {
			return &r
		}
	}
	return nil
}

// GetWeightRangeIndex returns the band index (0-17) for weight, or -1 when
// no band contains it.
func GetWeightRangeIndex(weight float64) int {
	if weight < 0 {
		return -1
	}
	for i, r := range CIFPDOWeightRanges {
		if weight >= r.Start && weight <= r.End {
			return i
		}
	}
	return -1
}

// IsSameWeightRange reports whether both weights resolve to the identical
// band. A weight outside every band never matches, not even itself.
func IsSameWeightRange(w1, w2 float64) bool {
	i1 := GetWeightRangeIndex(w1)
	i2 := GetWeightRangeIndex(w2)
	if i1 == -1 || i2 == -1 {
		return false
	}
	return i1 == i2
}

// WeightRangeDifference returns how many bands apart the two weights fall,
// positive when w2 lands in a higher band. Out-of-band weights yield 0.
func WeightRangeDifference(w1, w2 float64) int {
	i1 := GetWeightRangeIndex(w1)
	i2 := GetWeightRangeIndex(w2)
	if i1 == -1 || i2 == -1 {
		return 0
	}
	return i2 - i1
}

// FormatWeightRange renders a band as "30.1 - 750 kg".
func FormatWeightRange(r WeightRange) string {
	return fmt.Sprintf("%s - %s kg", formatKg(r.Start), formatKg(r.End))
}

// FormattedWeightRange returns the display label for a weight's band, or a
// special label when the weight is invalid or above the maximum.
func FormattedWeightRange(weight float64) string {
	if weight < 0 {
		return "invalid weight"
	}
	r := GetWeightRange(weight)
	if r == nil {
		return fmt.Sprintf("above %s kg", formatKg(MaxCIFPDOWeight))
	}
	return FormatWeightRange(*r)
}

func formatKg(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
