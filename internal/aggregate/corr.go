package aggregate

import (
	"gonum.org/v1/gonum/stat"

	"github.com/devlens/devsurvey/internal/frame"
)

// Correlations is a symmetric Pearson correlation matrix over a set of
// numeric columns. Matrix is indexed [i][j] matching the Columns order.
type Correlations struct {
	Columns []string
	Matrix  [][]float64
	N       int
}

// CorrelationMatrix computes pairwise Pearson correlations over the named
// columns using only the rows where every column has a numeric value. The
// second return is false when fewer than two such rows exist.
func CorrelationMatrix(f *frame.Frame, cols []string) (*Correlations, bool) {
	if len(cols) == 0 {
		return nil, false
	}
	series := make([][]float64, len(cols))
	for i := range series {
		series[i] = make([]float64, 0, f.Len())
	}

	for i := 0; i < f.Len(); i++ {
		row := make([]float64, len(cols))
		complete := true
		for j, col := range cols {
			v, ok := f.At(i, col).Float()
			if !ok {
				complete = false
				break
			}
			row[j] = v
		}
		if !complete {
			continue
		}
		for j := range cols {
			series[j] = append(series[j], row[j])
		}
	}

	n := len(series[0])
	if n < 2 {
		return nil, false
	}

	c := &Correlations{Columns: cols, N: n}
	c.Matrix = make([][]float64, len(cols))
	for i := range cols {
		c.Matrix[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				c.Matrix[i][j] = 1
				continue
			}
			c.Matrix[i][j] = stat.Correlation(series[i], series[j], nil)
		}
	}
	return c, true
}
