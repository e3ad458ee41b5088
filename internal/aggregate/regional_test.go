package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

func responsesFixture(t *testing.T) *frame.Frame {
	t.Helper()
	f := frame.New([]string{
		survey.ColResponseID,
		survey.ColCountry,
		survey.ColConvertedComp,
		survey.ColYearsCodePro,
		survey.ColJobSat,
	})
	add := func(id int, country frame.Value, comp, exp, sat frame.Value) {
		require.NoError(t, f.AppendRow(frame.Num(float64(id)), country, comp, exp, sat))
	}
	add(1, frame.Text("Norway"), frame.Num(90000), frame.Num(5), frame.Num(8))
	add(2, frame.Text("Norway"), frame.Num(110000), frame.Num(7), frame.Num(6))
	add(3, frame.Text("India"), frame.Num(30000), frame.Num(4), frame.Null())
	add(4, frame.Null(), frame.Num(50000), frame.Num(2), frame.Num(5))
	return f
}

func TestRegionalStats(t *testing.T) {
	stats := RegionalStats(responsesFixture(t), 0)
	require.Len(t, stats, 2)

	// ordered by country ascending, missing-country row dropped
	assert.Equal(t, "India", stats[0].Country)
	assert.Equal(t, "Norway", stats[1].Country)

	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, frame.Num(30000), stats[0].MedianCompensation)
	assert.True(t, stats[0].MedianJobSat.IsNull())

	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, frame.Num(100000), stats[1].MedianCompensation)
	assert.Equal(t, frame.Num(6), stats[1].MedianExperience)
	assert.Equal(t, frame.Num(7), stats[1].MedianJobSat)
}

func TestRegionalStatsMinCount(t *testing.T) {
	stats := RegionalStats(responsesFixture(t), 2)
	require.Len(t, stats, 1)
	assert.Equal(t, "Norway", stats[0].Country)
}

func TestTopCountries(t *testing.T) {
	stats := []CountryStats{
		{Country: "A", Count: 100},
		{Country: "B", Count: 50},
		{Country: "C", Count: 200},
	}
	top := TopCountries(stats, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Country)
	assert.Equal(t, "A", top[1].Country)

	// input order untouched
	assert.Equal(t, "A", stats[0].Country)
}

func TestTopCountriesTieBreak(t *testing.T) {
	stats := []CountryStats{
		{Country: "B", Count: 10},
		{Country: "A", Count: 10},
	}
	top := TopCountries(stats, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].Country)
}

func TestFilterCountries(t *testing.T) {
	f := responsesFixture(t)
	out := FilterCountries(f, []string{"Norway"})
	require.Equal(t, 2, out.Len())
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, frame.Text("Norway"), out.At(i, survey.ColCountry), fmt.Sprintf("row %d", i))
	}
}
