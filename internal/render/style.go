// Package render draws the chart primitives the report package composes:
// bar charts, scatter plots, and heatmaps saved as PNG files.
package render

import (
	"gonum.org/v1/plot/vg"
)

// Style sets the output dimensions shared by every chart.
type Style struct {
	Width    vg.Length
	Height   vg.Length
	BarWidth vg.Length
}

// DefaultStyle matches a 10x6 inch figure.
func DefaultStyle() Style {
	return Style{
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
		BarWidth: 20,
	}
}
