package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// CountryStats holds the per-country medians of the headline numeric
// columns. A median is missing when the country has no usable value for
// that column.
type CountryStats struct {
	Country            string
	Count              int
	MedianCompensation frame.Value
	MedianExperience   frame.Value
	MedianJobSat       frame.Value
}

// RegionalStats groups responses by country and computes each group's size
// and medians. Rows with a missing country are left out entirely. Groups
// smaller than minCount are dropped. The result is ordered by country name
// ascending.
func RegionalStats(f *frame.Frame, minCount int) []CountryStats {
	type group struct {
		count int
		comp  []frame.Value
		exp   []frame.Value
		sat   []frame.Value
	}
	groups := map[string]*group{}

	for i := 0; i < f.Len(); i++ {
		country := f.At(i, survey.ColCountry)
		if country.IsNull() {
			continue
		}
		g, ok := groups[country.String()]
		if !ok {
			g = &group{}
			groups[country.String()] = g
		}
		if !f.At(i, survey.ColResponseID).IsNull() {
			g.count++
		}
		g.comp = append(g.comp, f.At(i, survey.ColConvertedComp))
		g.exp = append(g.exp, f.At(i, survey.ColYearsCodePro))
		g.sat = append(g.sat, f.At(i, survey.ColJobSat))
	}

	out := make([]CountryStats, 0, len(groups))
	for country, g := range groups {
		if g.count < minCount {
			continue
		}
		out = append(out, CountryStats{
			Country:            country,
			Count:              g.count,
			MedianCompensation: medianValue(g.comp),
			MedianExperience:   medianValue(g.exp),
			MedianJobSat:       medianValue(g.sat),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// TopCountries returns the n largest groups by response count, ties broken
// by country name ascending. The result keeps that size ordering.
func TopCountries(stats []CountryStats, n int) []CountryStats {
	sorted := make([]CountryStats, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Country < sorted[j].Country
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// FilterCountries keeps only the rows whose country is in the given set.
func FilterCountries(f *frame.Frame, countries []string) *frame.Frame {
	keep := make(map[string]bool, len(countries))
	for _, c := range countries {
		keep[c] = true
	}
	return f.FilterRows(func(i int) bool {
		v := f.At(i, survey.ColCountry)
		return !v.IsNull() && keep[v.String()]
	})
}
