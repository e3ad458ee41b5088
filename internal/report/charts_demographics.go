package report

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
)

// ageOrder lists the cleaned age ranges youngest first.
var ageOrder = []string{"<18", "18-24", "25-34", "35-44", "45-54", "55-64", "65 or older", "Prefer not to say"}

type ageDistribution struct {
	chartMeta
}

func (c *ageDistribution) counts(d *Data) []aggregate.CategoryCount {
	byRange := map[string]int{}
	for _, cc := range aggregate.CountBy(d.Survey, survey.ColAgeCleaned) {
		byRange[cc.Category] = cc.Count
	}
	out := make([]aggregate.CategoryCount, 0, len(ageOrder))
	for _, r := range ageOrder {
		if n, ok := byRange[r]; ok {
			out = append(out, aggregate.CategoryCount{Category: r, Count: n})
		}
	}
	return out
}

func (c *ageDistribution) Table(d *Data) (*Table, error) {
	counts := c.counts(d)
	if len(counts) == 0 {
		return nil, eris.New("report: age distribution: no age data")
	}
	return countTable(c.name, "Age Range", counts), nil
}

func (c *ageDistribution) Render(d *Data, path string, style render.Style) error {
	counts := c.counts(d)
	if len(counts) == 0 {
		return eris.New("report: age distribution: no age data")
	}
	labels, values := countBars(counts)
	return render.VBar(path, c.title, "Count", labels, values, style)
}

type experienceDistribution struct {
	chartMeta
}

const experienceBins = 20

// build bins both experience columns over a shared range so the two series
// line up group for group. The shared bin edges come from pooling both
// columns before bucketing each one.
func (c *experienceDistribution) build(d *Data) ([]string, []float64, []float64, error) {
	total := numericColumn(d, survey.ColYearsCode)
	pro := numericColumn(d, survey.ColYearsCodePro)
	if len(total) == 0 && len(pro) == 0 {
		return nil, nil, nil, eris.New("report: experience distribution: no numeric experience values")
	}

	pooled := make([]frame.Value, 0, len(total)+len(pro))
	for _, v := range append(append([]float64{}, total...), pro...) {
		pooled = append(pooled, frame.Num(v))
	}
	bins := aggregate.HistogramBins(pooled, experienceBins)

	labels := make([]string, len(bins))
	totalCounts := make([]float64, len(bins))
	proCounts := make([]float64, len(bins))
	for i, b := range bins {
		if len(bins) == 1 {
			labels[i] = fmt.Sprintf("%.0f", b.Low)
			continue
		}
		labels[i] = fmt.Sprintf("%.0f-%.0f", b.Low, b.High)
	}

	lo := bins[0].Low
	hi := bins[len(bins)-1].High
	bucket := func(v float64) int {
		if len(bins) == 1 || hi == lo {
			return 0
		}
		i := int((v - lo) / (hi - lo) * float64(len(bins)))
		if i >= len(bins) {
			i = len(bins) - 1
		}
		return i
	}
	for _, v := range total {
		totalCounts[bucket(v)]++
	}
	for _, v := range pro {
		proCounts[bucket(v)]++
	}
	return labels, totalCounts, proCounts, nil
}

func (c *experienceDistribution) Table(d *Data) (*Table, error) {
	labels, total, pro, err := c.build(d)
	if err != nil {
		return nil, err
	}
	t := &Table{Name: c.name, Columns: []string{"Years of Experience", "Total Years Coding", "Years Coding Professionally"}}
	for i, label := range labels {
		t.Rows = append(t.Rows, []any{label, int(total[i]), int(pro[i])})
	}
	return t, nil
}

func (c *experienceDistribution) Render(d *Data, path string, style render.Style) error {
	labels, total, pro, err := c.build(d)
	if err != nil {
		return err
	}
	return render.GroupedBar(path, c.title, "Count", labels, []render.Series{
		{Name: "Total Years Coding", Values: total},
		{Name: "Years Coding Professionally", Values: pro},
	}, style)
}

type educationBackground struct {
	chartMeta
}

func (c *educationBackground) Table(d *Data) (*Table, error) {
	counts := aggregate.CountBy(d.Survey, survey.ColEdLevel)
	if len(counts) == 0 {
		return nil, eris.New("report: education background: no education data")
	}
	return countTable(c.name, "Education Level", counts), nil
}

func (c *educationBackground) Render(d *Data, path string, style render.Style) error {
	counts := aggregate.CountBy(d.Survey, survey.ColEdLevel)
	if len(counts) == 0 {
		return eris.New("report: education background: no education data")
	}
	labels, values := countBars(counts)
	return render.HBar(path, c.title, "Count", labels, values, style)
}
