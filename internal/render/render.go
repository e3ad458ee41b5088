package render

import (
	"math"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// grouped renders axis ticks with thousands separators.
var grouped = message.NewPrinter(language.English)

// commaTicks is a plot.Ticker that reformats integral default ticks with
// comma grouping, so compensation axes read 100,000 instead of 100000.
type commaTicks struct{}

func (commaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		if v := math.Trunc(t.Value); v == t.Value && math.Abs(v) >= 1000 {
			ticks[i].Label = grouped.Sprintf("%d", int64(v))
		}
	}
	return ticks
}

// HBar draws a horizontal bar chart with labels[0] as the topmost bar.
func HBar(path, title, xLabel string, labels []string, values []float64, style Style) error {
	if len(labels) == 0 || len(labels) != len(values) {
		return eris.Errorf("render: hbar %s: %d labels for %d values", path, len(labels), len(values))
	}

	// NominalY lays names out bottom to top, so reverse both slices to keep
	// the first label on top.
	n := len(labels)
	revLabels := make([]string, n)
	revValues := make(plotter.Values, n)
	for i := 0; i < n; i++ {
		revLabels[i] = labels[n-1-i]
		revValues[i] = values[n-1-i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.X.Tick.Marker = commaTicks{}

	bars, err := plotter.NewBarChart(revValues, style.BarWidth)
	if err != nil {
		return eris.Wrapf(err, "render: hbar %s", path)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalY(revLabels...)

	return save(p, path, style)
}

// VBar draws a vertical bar chart in the given label order.
func VBar(path, title, yLabel string, labels []string, values []float64, style Style) error {
	if len(labels) == 0 || len(labels) != len(values) {
		return eris.Errorf("render: vbar %s: %d labels for %d values", path, len(labels), len(values))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Y.Tick.Marker = commaTicks{}

	bars, err := plotter.NewBarChart(plotter.Values(values), style.BarWidth)
	if err != nil {
		return eris.Wrapf(err, "render: vbar %s", path)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)

	return save(p, path, style)
}

// Series is one legend entry of a grouped bar chart.
type Series struct {
	Name   string
	Values []float64
}

// GroupedBar draws side-by-side bars per group, one color per series.
func GroupedBar(path, title, yLabel string, groups []string, series []Series, style Style) error {
	if len(groups) == 0 || len(series) == 0 {
		return eris.Errorf("render: grouped bar %s: empty input", path)
	}
	for _, s := range series {
		if len(s.Values) != len(groups) {
			return eris.Errorf("render: grouped bar %s: series %s has %d values for %d groups",
				path, s.Name, len(s.Values), len(groups))
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Y.Tick.Marker = commaTicks{}
	p.Legend.Top = true

	for i, s := range series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), style.BarWidth)
		if err != nil {
			return eris.Wrapf(err, "render: grouped bar %s", path)
		}
		bars.Color = plotutil.Color(i)
		bars.Offset = style.BarWidth*vg.Length(i) - style.BarWidth*vg.Length(len(series)-1)/2
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}
	p.NominalX(groups...)

	return save(p, path, style)
}

// Point is one scatter marker. Size scales the glyph radius; a non-empty
// Label is drawn next to the marker.
type Point struct {
	X     float64
	Y     float64
	Size  float64
	Label string
}

// Scatter draws a scatter plot with per-point glyph sizes and optional
// labels.
func Scatter(path, title, xLabel, yLabel string, pts []Point, style Style) error {
	if len(pts) == 0 {
		return eris.Errorf("render: scatter %s: no points", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = commaTicks{}
	p.Y.Tick.Marker = commaTicks{}

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return eris.Wrapf(err, "render: scatter %s", path)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r := vg.Points(3)
		if pts[i].Size > 0 {
			r = vg.Points(2 + math.Sqrt(pts[i].Size))
		}
		return draw.GlyphStyle{Color: plotutil.Color(0), Radius: r, Shape: draw.CircleGlyph{}}
	}
	p.Add(s)

	var labeled plotter.XYLabels
	for _, pt := range pts {
		if pt.Label == "" {
			continue
		}
		labeled.XYs = append(labeled.XYs, plotter.XY{X: pt.X, Y: pt.Y})
		labeled.Labels = append(labeled.Labels, pt.Label)
	}
	if len(labeled.Labels) > 0 {
		labels, err := plotter.NewLabels(labeled)
		if err != nil {
			return eris.Wrapf(err, "render: scatter %s: labels", path)
		}
		p.Add(labels)
	}

	return save(p, path, style)
}

// heatGrid adapts a dense [row][col] matrix to plotter.GridXYZ.
type heatGrid struct {
	m [][]float64
}

func (g heatGrid) Dims() (c, r int) {
	if len(g.m) == 0 {
		return 0, 0
	}
	return len(g.m[0]), len(g.m)
}

func (g heatGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

// Heatmap draws a color matrix with nominal row and column labels. Row 0 is
// the bottom row.
func Heatmap(path, title string, rows, cols []string, matrix [][]float64, style Style) error {
	if len(rows) == 0 || len(cols) == 0 || len(matrix) != len(rows) {
		return eris.Errorf("render: heatmap %s: %d rows, %d row labels", path, len(matrix), len(rows))
	}
	for _, row := range matrix {
		if len(row) != len(cols) {
			return eris.Errorf("render: heatmap %s: ragged matrix", path)
		}
	}

	p := plot.New()
	p.Title.Text = title

	h := plotter.NewHeatMap(heatGrid{m: matrix}, palette.Heat(12, 1))
	p.Add(h)
	p.NominalX(cols...)
	p.NominalY(rows...)

	return save(p, path, style)
}

func save(p *plot.Plot, path string, s Style) error {
	if err := p.Save(s.Width, s.Height, path); err != nil {
		return eris.Wrapf(err, "render: save %s", path)
	}
	return nil
}
