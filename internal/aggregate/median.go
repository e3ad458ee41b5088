// Package aggregate computes the derived tables behind the charts: country
// medians, affordability scores, category counts, cross tabulations,
// correlations, and histogram bins.
package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
)

// Median returns the median of the numeric values in vals, skipping missing
// and non-numeric entries. The second return is false when no numeric value
// remains. For an even count the median is the mean of the two middle
// values.
func Median(vals []frame.Value) (float64, bool) {
	nums := make([]float64, 0, len(vals))
	for _, v := range vals {
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return 0, false
	}
	sort.Float64s(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return nums[mid], true
	}
	return (nums[mid-1] + nums[mid]) / 2, true
}

// medianValue wraps Median into a frame.Value, missing when undefined.
func medianValue(vals []frame.Value) frame.Value {
	m, ok := Median(vals)
	if !ok {
		return frame.Null()
	}
	return frame.Num(m)
}
