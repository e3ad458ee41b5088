package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/frame"
)

func TestHistogramBins(t *testing.T) {
	vals := []frame.Value{
		frame.Num(0), frame.Num(1), frame.Num(2), frame.Num(3),
		frame.Num(5), frame.Num(9), frame.Num(10),
		frame.Null(), frame.Text("n/a"),
	}
	bins := HistogramBins(vals, 2)
	require.Len(t, bins, 2)

	assert.Equal(t, 0.0, bins[0].Low)
	assert.Equal(t, 5.0, bins[0].High)
	assert.Equal(t, 10.0, bins[1].High)

	// [0,5): 0 1 2 3; [5,10]: 5 9 10
	assert.Equal(t, 4, bins[0].Count)
	assert.Equal(t, 3, bins[1].Count)
}

func TestHistogramBinsMaxInLastBin(t *testing.T) {
	bins := HistogramBins([]frame.Value{frame.Num(0), frame.Num(10)}, 5)
	require.Len(t, bins, 5)
	assert.Equal(t, 1, bins[4].Count)
}

func TestHistogramBinsAllEqual(t *testing.T) {
	bins := HistogramBins([]frame.Value{frame.Num(7), frame.Num(7)}, 4)
	require.Len(t, bins, 1)
	assert.Equal(t, HistBin{Low: 7, High: 7, Count: 2}, bins[0])
}

func TestHistogramBinsDegenerate(t *testing.T) {
	assert.Nil(t, HistogramBins(nil, 5))
	assert.Nil(t, HistogramBins([]frame.Value{frame.Null()}, 5))
	assert.Nil(t, HistogramBins([]frame.Value{frame.Num(1)}, 0))
}
