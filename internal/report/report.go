// Package report defines the chart battery rendered from a cleaned survey
// frame, plus the registry and engine that drive it. Each chart can emit a
// derived table for inspection or export, and render itself to a PNG file.
package report

import (
	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
	"github.com/devlens/devsurvey/internal/tokenize"
)

// Data is the cleaned input every chart reads from. Survey must already
// carry the derived columns (age bins, company category, numeric coercion).
// CostOfLiving is nil when the reference file was not available.
type Data struct {
	Survey       *frame.Frame
	CostOfLiving *frame.Frame

	// TopCountries bounds the per-country charts, MinCount is the smallest
	// group size included in regional aggregates.
	TopCountries int
	MinCount     int
}

// Table is a chart's derived data in row form, ready for JSON or worksheet
// export.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Chart is one unit of the report. Table computes the derived numbers
// behind the chart; Render draws it to path.
type Chart interface {
	Name() string
	Filename() string
	Title() string

	// NeedsReference reports whether the chart requires the cost-of-living
	// reference frame.
	NeedsReference() bool

	Table(d *Data) (*Table, error)
	Render(d *Data, path string, style render.Style) error
}

// chartMeta carries the identity methods shared by every chart.
type chartMeta struct {
	name     string
	filename string
	title    string
	needsRef bool
}

func (m chartMeta) Name() string         { return m.name }
func (m chartMeta) Filename() string     { return m.filename }
func (m chartMeta) Title() string        { return m.title }
func (m chartMeta) NeedsReference() bool { return m.needsRef }

// topCountryNames returns the most common countries by response volume.
func topCountryNames(d *Data) []string {
	counts := aggregate.CountBy(d.Survey, survey.ColCountry)
	if d.TopCountries < len(counts) {
		counts = counts[:d.TopCountries]
	}
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Category
	}
	return names
}

// boxGroups collects the numeric values of valCol per group label, in the
// given label order.
func boxGroups(f *frame.Frame, groupCol, valCol string, order []string) []render.BoxGroup {
	byGroup := map[string][]float64{}
	for i := 0; i < f.Len(); i++ {
		key := f.At(i, groupCol)
		if key.IsNull() {
			continue
		}
		if v, ok := f.At(i, valCol).Float(); ok {
			byGroup[key.String()] = append(byGroup[key.String()], v)
		}
	}
	groups := make([]render.BoxGroup, len(order))
	for i, label := range order {
		groups[i] = render.BoxGroup{Label: label, Values: byGroup[label]}
	}
	return groups
}

// affordabilityRows joins per-country stats with the cost-of-living
// reference. No minimum group size here; the purchasing-power chart applies
// its own cutoff.
func affordabilityRows(d *Data) []aggregate.Affordability {
	stats := aggregate.RegionalStats(d.Survey, 0)
	return aggregate.MergeCostOfLiving(stats, d.CostOfLiving)
}

// numericColumn collects the numeric values of one survey column.
func numericColumn(d *Data, col string) []float64 {
	vals, ok := d.Survey.Column(col)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// medianOf returns the median of a float slice, or nil when empty. Used for
// the tabular view of box charts.
func medianOf(vals []float64) any {
	nums := make([]frame.Value, len(vals))
	for i, v := range vals {
		nums[i] = frame.Num(v)
	}
	m, ok := aggregate.Median(nums)
	if !ok {
		return nil
	}
	return m
}

// countTable shapes category counts into a two-column table.
func countTable(name string, label string, counts []aggregate.CategoryCount) *Table {
	t := &Table{Name: name, Columns: []string{label, "Count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []any{c.Category, c.Count})
	}
	return t
}

// itemTable shapes tokenized item counts into a two-column table.
func itemTable(name string, label string, items []tokenize.ItemCount) *Table {
	t := &Table{Name: name, Columns: []string{label, "Count"}}
	for _, it := range items {
		t.Rows = append(t.Rows, []any{it.Item, it.Count})
	}
	return t
}

// itemBars splits tokenized item counts into parallel label and value
// slices for a bar chart.
func itemBars(items []tokenize.ItemCount) ([]string, []float64) {
	labels := make([]string, len(items))
	values := make([]float64, len(items))
	for i, it := range items {
		labels[i] = it.Item
		values[i] = float64(it.Count)
	}
	return labels, values
}

// countBars does the same for category counts.
func countBars(counts []aggregate.CategoryCount) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Category
		values[i] = float64(c.Count)
	}
	return labels, values
}
