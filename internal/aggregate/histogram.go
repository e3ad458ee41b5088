package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
)

// HistBin is one equal-width histogram bin. High is exclusive except in the
// last bin, which includes the maximum.
type HistBin struct {
	Low   float64
	High  float64
	Count int
}

// HistogramBins buckets the numeric values of vals into n equal-width bins
// between the observed minimum and maximum, skipping missing and non-numeric
// entries. Returns nil when n is not positive or no numeric value exists.
// When all values are equal, a single bin holds everything.
func HistogramBins(vals []frame.Value, n int) []HistBin {
	if n <= 0 {
		return nil
	}
	nums := make([]float64, 0, len(vals))
	for _, v := range vals {
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return nil
	}
	sort.Float64s(nums)
	lo, hi := nums[0], nums[len(nums)-1]
	if lo == hi {
		return []HistBin{{Low: lo, High: hi, Count: len(nums)}}
	}

	width := (hi - lo) / float64(n)
	bins := make([]HistBin, n)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[n-1].High = hi

	for _, v := range nums {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}
