package aggregate

import (
	"sort"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// Affordability is one country's compensation joined with its cost-of-living
// indices. Score is median compensation divided by the cost-plus-rent index,
// missing when either side is unusable.
type Affordability struct {
	Country            string
	Count              int
	MedianCompensation frame.Value
	CostPlusRent       float64
	PurchasingPower    float64
	Score              frame.Value
}

// MergeCostOfLiving joins country stats against the cost-of-living reference
// on country name. Countries absent from the reference, or whose index
// values are missing, are dropped from the result. The result is ordered by
// country name ascending.
func MergeCostOfLiving(stats []CountryStats, ref *frame.Frame) []Affordability {
	type indices struct {
		costPlusRent    float64
		purchasingPower float64
	}
	byCountry := map[string]indices{}
	if ref != nil {
		for i := 0; i < ref.Len(); i++ {
			country := ref.At(i, survey.ColCountry)
			cpr, okCPR := ref.At(i, survey.ColCostPlusRent).AsNum().Float()
			pp, okPP := ref.At(i, survey.ColPurchasingPower).AsNum().Float()
			if country.IsNull() || !okCPR || !okPP {
				continue
			}
			byCountry[country.String()] = indices{costPlusRent: cpr, purchasingPower: pp}
		}
	}

	out := make([]Affordability, 0, len(stats))
	for _, s := range stats {
		idx, ok := byCountry[s.Country]
		if !ok {
			continue
		}
		a := Affordability{
			Country:            s.Country,
			Count:              s.Count,
			MedianCompensation: s.MedianCompensation,
			CostPlusRent:       idx.costPlusRent,
			PurchasingPower:    idx.purchasingPower,
			Score:              frame.Null(),
		}
		if comp, ok := s.MedianCompensation.Float(); ok && idx.costPlusRent != 0 {
			a.Score = frame.Num(comp / idx.costPlusRent)
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// TopAffordability returns the n rows with the highest defined scores,
// ordered by score descending, ties broken by country name ascending. Rows
// with a missing score are never selected.
func TopAffordability(rows []Affordability, n int) []Affordability {
	scored := make([]Affordability, 0, len(rows))
	for _, r := range rows {
		if r.Score.IsNum() {
			scored = append(scored, r)
		}
	}
	sort.Slice(scored, func(i, j int) bool {
		si, _ := scored[i].Score.Float()
		sj, _ := scored[j].Score.Float()
		if si != sj {
			return si > sj
		}
		return scored[i].Country < scored[j].Country
	})
	if n < len(scored) {
		scored = scored[:n]
	}
	return scored
}
