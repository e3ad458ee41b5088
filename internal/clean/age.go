package clean

import (
	"strings"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// ageBins maps a cleaned age range to its band. "Prefer not to say" maps to
// missing on purpose; so does anything not present in the table.
var ageBins = map[string]frame.Value{
	"<18":               frame.Text("<25"),
	"18-24":             frame.Text("<25"),
	"25-34":             frame.Text("25-34"),
	"35-44":             frame.Text("35-44"),
	"45-54":             frame.Text("45-54"),
	"55-64":             frame.Text("55+"),
	"65 or older":       frame.Text("55+"),
	"Prefer not to say": frame.Null(),
}

// AgeBands lists the bands in display order.
var AgeBands = []string{"<25", "25-34", "35-44", "45-54", "55+"}

// cleanAge rewrites a raw age range into its canonical short form. The
// value is coerced to text first so already-missing or numeric cells never
// break the string operations.
func cleanAge(v frame.Value) frame.Value {
	if v.IsNull() {
		return frame.Null()
	}
	s := v.String()
	s = strings.ReplaceAll(s, " years old", "")
	s = strings.ReplaceAll(s, "Under ", "<")
	return frame.Text(strings.TrimSpace(s))
}

// AgeBins adds two derived columns: the cleaned age text (survey.ColAgeCleaned)
// and the band label (survey.ColAgeBin). Unrecognized cleaned values bin to
// missing. Re-running on already-binned data changes nothing.
func AgeBins(f *frame.Frame, ageCol string) *frame.Frame {
	cleaned := make([]frame.Value, f.Len())
	bins := make([]frame.Value, f.Len())

	for i := 0; i < f.Len(); i++ {
		c := cleanAge(f.At(i, ageCol))
		cleaned[i] = c
		if c.IsNull() {
			bins[i] = frame.Null()
			continue
		}
		bin, ok := ageBins[c.String()]
		if !ok {
			bins[i] = frame.Null()
			continue
		}
		bins[i] = bin
	}

	out, _ := f.WithColumn(survey.ColAgeCleaned, cleaned)
	out, _ = out.WithColumn(survey.ColAgeBin, bins)
	return out
}
