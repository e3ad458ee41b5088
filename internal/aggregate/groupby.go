package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
)

// CategoryCount is one distinct value of a column and how many rows carry it.
type CategoryCount struct {
	Category string
	Count    int
}

// CountBy tallies the distinct non-missing values of the named column,
// ordered by count descending, ties broken by category name ascending.
func CountBy(f *frame.Frame, col string) []CategoryCount {
	counts := map[string]int{}
	vals, ok := f.Column(col)
	if !ok {
		return nil
	}
	for _, v := range vals {
		if v.IsNull() {
			continue
		}
		counts[v.String()]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// GroupMedian is one group's median of a numeric column.
type GroupMedian struct {
	Group  string
	Count  int
	Median frame.Value
}

// MedianBy groups rows by groupCol and computes each group's median of
// valCol. Rows with a missing group key are left out. Groups whose median is
// undefined carry a missing median and a zero usable count. The result is
// ordered by group name ascending.
func MedianBy(f *frame.Frame, groupCol, valCol string) []GroupMedian {
	groups := map[string][]frame.Value{}
	for i := 0; i < f.Len(); i++ {
		key := f.At(i, groupCol)
		if key.IsNull() {
			continue
		}
		groups[key.String()] = append(groups[key.String()], f.At(i, valCol))
	}
	out := make([]GroupMedian, 0, len(groups))
	for group, vals := range groups {
		usable := 0
		for _, v := range vals {
			if _, ok := v.Float(); ok {
				usable++
			}
		}
		out = append(out, GroupMedian{
			Group:  group,
			Count:  usable,
			Median: medianValue(vals),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}
