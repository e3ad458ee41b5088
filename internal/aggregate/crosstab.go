package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
)

// CrossTab is a dense count matrix of two categorical columns. Counts is
// indexed [row][column] matching the Rows and Cols label order.
type CrossTab struct {
	Rows   []string
	Cols   []string
	Counts [][]float64
}

// CrossTabCount counts row/column label pairs across the frame, skipping any
// pair with a missing side. Labels on both axes are ordered ascending.
func CrossTabCount(f *frame.Frame, rowCol, colCol string) *CrossTab {
	pairs := map[string]map[string]float64{}
	rowSet := map[string]bool{}
	colSet := map[string]bool{}

	for i := 0; i < f.Len(); i++ {
		r := f.At(i, rowCol)
		c := f.At(i, colCol)
		if r.IsNull() || c.IsNull() {
			continue
		}
		rs, cs := r.String(), c.String()
		if pairs[rs] == nil {
			pairs[rs] = map[string]float64{}
		}
		pairs[rs][cs]++
		rowSet[rs] = true
		colSet[cs] = true
	}

	ct := &CrossTab{
		Rows: sortedKeys(rowSet),
		Cols: sortedKeys(colSet),
	}
	ct.Counts = make([][]float64, len(ct.Rows))
	for i, r := range ct.Rows {
		ct.Counts[i] = make([]float64, len(ct.Cols))
		for j, c := range ct.Cols {
			ct.Counts[i][j] = pairs[r][c]
		}
	}
	return ct
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
