// Package tokenize splits semicolon-delimited multi-answer cells into
// individual items, either as frequency counts or as an exploded frame with
// one row per item.
package tokenize

import (
	"sort"
	"strings"

	"github.com/devlens/devsurvey/internal/frame"
)

// Separator divides the answers inside a single multi-select cell.
const Separator = ";"

// ItemCount is one tokenized item and the number of cells that contained it.
type ItemCount struct {
	Item  string
	Count int
}

// Counts holds tokenized item frequencies for one column.
type Counts map[string]int

// CountItems tokenizes every non-missing cell of the named column and tallies
// each trimmed item. Empty items after trimming are not counted. A column
// absent from the frame yields empty counts.
func CountItems(f *frame.Frame, col string) Counts {
	counts := Counts{}
	vals, ok := f.Column(col)
	if !ok {
		return counts
	}
	for _, v := range vals {
		if v.IsNull() {
			continue
		}
		for _, item := range strings.Split(v.String(), Separator) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			counts[item]++
		}
	}
	return counts
}

// Sorted returns all items ordered by descending count, ties broken by item
// name ascending.
func (c Counts) Sorted() []ItemCount {
	out := make([]ItemCount, 0, len(c))
	for item, n := range c {
		out = append(out, ItemCount{Item: item, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Item < out[j].Item
	})
	return out
}

// Top returns the first n items of Sorted, or all of them when fewer exist.
func (c Counts) Top(n int) []ItemCount {
	sorted := c.Sorted()
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Explode replaces the named column with one row per tokenized item, copying
// every other column of the source row. Rows whose cell is missing are
// dropped. Items are trimmed but otherwise kept as-is, so a trailing
// separator still contributes an empty item row.
func Explode(f *frame.Frame, col string) *frame.Frame {
	out := frame.New(f.Columns())
	if !f.HasColumn(col) {
		return out
	}
	cols := f.Columns()
	for i := 0; i < f.Len(); i++ {
		cell := f.At(i, col)
		if cell.IsNull() {
			continue
		}
		for _, item := range strings.Split(cell.String(), Separator) {
			row := make([]frame.Value, len(cols))
			for j, name := range cols {
				if name == col {
					row[j] = frame.Text(strings.TrimSpace(item))
				} else {
					row[j] = f.At(i, name)
				}
			}
			// AppendRow only fails on arity mismatch, which the loop
			// above rules out.
			_ = out.AppendRow(row...)
		}
	}
	return out
}
