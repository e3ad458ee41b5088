package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

func ageFrame(t *testing.T, ages ...frame.Value) *frame.Frame {
	t.Helper()
	f := frame.New([]string{survey.ColAge})
	for _, a := range ages {
		require.NoError(t, f.AppendRow(a))
	}
	return f
}

func TestAgeBins(t *testing.T) {
	tests := []struct {
		name        string
		in          frame.Value
		wantCleaned frame.Value
		wantBin     frame.Value
	}{
		{"under 18", frame.Text("Under 18 years old"), frame.Text("<18"), frame.Text("<25")},
		{"18-24", frame.Text("18-24 years old"), frame.Text("18-24"), frame.Text("<25")},
		{"25-34", frame.Text("25-34 years old"), frame.Text("25-34"), frame.Text("25-34")},
		{"55-64", frame.Text("55-64 years old"), frame.Text("55-64"), frame.Text("55+")},
		{"65 or older", frame.Text("65 or older"), frame.Text("65 or older"), frame.Text("55+")},
		// " years old" is not a substring of this band, so the raw survey
		// value passes through unchanged and falls outside the lookup table.
		{"65 years or older stays raw", frame.Text("65 years or older"), frame.Text("65 years or older"), frame.Null()},
		{"prefer not to say", frame.Text("Prefer not to say"), frame.Text("Prefer not to say"), frame.Null()},
		{"unrecognized", frame.Text("immortal"), frame.Text("immortal"), frame.Null()},
		{"missing", frame.Null(), frame.Null(), frame.Null()},
		{"numeric input coerced to text", frame.Num(30), frame.Text("30"), frame.Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := AgeBins(ageFrame(t, tt.in), survey.ColAge)
			assert.Equal(t, tt.wantCleaned, out.At(0, survey.ColAgeCleaned))
			assert.Equal(t, tt.wantBin, out.At(0, survey.ColAgeBin))
		})
	}
}

func TestAgeBinsPreservesInput(t *testing.T) {
	f := ageFrame(t, frame.Text("Under 18 years old"))
	out := AgeBins(f, survey.ColAge)
	assert.Equal(t, frame.Text("Under 18 years old"), out.At(0, survey.ColAge))
	assert.False(t, f.HasColumn(survey.ColAgeBin))
}

func TestAgeBinsIdempotent(t *testing.T) {
	f := ageFrame(t, frame.Text("65 years or older"), frame.Text("18-24 years old"), frame.Null())
	once := AgeBins(f, survey.ColAge)
	twice := AgeBins(once, survey.ColAge)
	assert.Equal(t, once, twice)
}
