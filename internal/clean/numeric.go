// Package clean holds the column-level cleaning transforms: numeric
// coercion, age binning, and company-size categorization. Every transform
// returns a new frame and is a fixed point on already-clean data.
package clean

import (
	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// DefaultNumericColumns are the columns coerced to numeric when the caller
// does not name its own set.
var DefaultNumericColumns = []string{
	survey.ColYearsCode,
	survey.ColYearsCodePro,
	survey.ColConvertedComp,
	survey.ColJobSat,
}

// NumericColumns coerces the named columns to numeric: values that do not
// parse become missing, never a residual string. Columns absent from the
// frame are silently skipped. A nil or empty column list means
// DefaultNumericColumns.
func NumericColumns(f *frame.Frame, cols []string) *frame.Frame {
	if len(cols) == 0 {
		cols = DefaultNumericColumns
	}

	out := f.Clone()
	for _, col := range cols {
		vals, ok := out.Column(col)
		if !ok {
			continue
		}
		for i, v := range vals {
			vals[i] = v.AsNum()
		}
		out, _ = out.WithColumn(col, vals)
	}
	return out
}
