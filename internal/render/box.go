package render

import (
	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// BoxGroup is the raw values behind one box of a box plot. Groups with no
// values still get an axis slot, just no box.
type BoxGroup struct {
	Label  string
	Values []float64
}

// BoxPlot draws one vertical box per group in the given order.
func BoxPlot(path, title, yLabel string, groups []BoxGroup, style Style) error {
	if len(groups) == 0 {
		return eris.Errorf("render: box plot %s: no groups", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Y.Tick.Marker = commaTicks{}

	labels := make([]string, len(groups))
	drawn := 0
	for i, g := range groups {
		labels[i] = g.Label
		if len(g.Values) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(style.BarWidth, float64(i), plotter.Values(g.Values))
		if err != nil {
			return eris.Wrapf(err, "render: box plot %s: group %s", path, g.Label)
		}
		p.Add(b)
		drawn++
	}
	if drawn == 0 {
		return eris.Errorf("render: box plot %s: no values in any group", path)
	}
	p.NominalX(labels...)

	return save(p, path, style)
}

// HBoxPlot draws one horizontal box per group, groups[0] as the topmost box.
func HBoxPlot(path, title, xLabel string, groups []BoxGroup, style Style) error {
	if len(groups) == 0 {
		return eris.Errorf("render: box plot %s: no groups", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.X.Tick.Marker = commaTicks{}

	// Like HBar, reverse so the first group lands on top.
	n := len(groups)
	labels := make([]string, n)
	drawn := 0
	for i := 0; i < n; i++ {
		g := groups[n-1-i]
		labels[i] = g.Label
		if len(g.Values) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(style.BarWidth, float64(i), plotter.Values(g.Values))
		if err != nil {
			return eris.Wrapf(err, "render: box plot %s: group %s", path, g.Label)
		}
		b.Horizontal = true
		p.Add(b)
		drawn++
	}
	if drawn == 0 {
		return eris.Errorf("render: box plot %s: no values in any group", path)
	}
	p.NominalY(labels...)

	return save(p, path, style)
}
