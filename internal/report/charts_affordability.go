package report

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/render"
)

func affordabilityTable(name string, rows []aggregate.Affordability) *Table {
	t := &Table{Name: name, Columns: []string{
		"Country", "Responses", "Median Compensation",
		"Cost of Living Plus Rent Index", "Local Purchasing Power Index", "Affordability Score",
	}}
	for _, r := range rows {
		comp, _ := r.MedianCompensation.Float()
		var score any
		if s, ok := r.Score.Float(); ok {
			score = s
		}
		t.Rows = append(t.Rows, []any{r.Country, r.Count, comp, r.CostPlusRent, r.PurchasingPower, score})
	}
	return t
}

type compVsCostOfLiving struct {
	chartMeta
}

func (c *compVsCostOfLiving) rows(d *Data) ([]aggregate.Affordability, error) {
	rows := affordabilityRows(d)
	if len(rows) == 0 {
		return nil, eris.New("report: compensation vs cost of living: no countries matched the reference")
	}
	if regionalScatterLimit < len(rows) {
		rows = rows[:regionalScatterLimit]
	}
	return rows, nil
}

func (c *compVsCostOfLiving) Table(d *Data) (*Table, error) {
	rows, err := c.rows(d)
	if err != nil {
		return nil, err
	}
	return affordabilityTable(c.name, rows), nil
}

func (c *compVsCostOfLiving) Render(d *Data, path string, style render.Style) error {
	rows, err := c.rows(d)
	if err != nil {
		return err
	}
	pts := make([]render.Point, 0, len(rows))
	for _, r := range rows {
		comp, ok := r.MedianCompensation.Float()
		if !ok {
			continue
		}
		pts = append(pts, render.Point{X: r.CostPlusRent, Y: comp, Size: r.PurchasingPower, Label: r.Country})
	}
	return render.Scatter(path, c.title,
		"Cost of Living Plus Rent Index", "Median Yearly Compensation", pts, style)
}

type topAffordableCountries struct {
	chartMeta
}

func (c *topAffordableCountries) rows(d *Data) ([]aggregate.Affordability, error) {
	top := aggregate.TopAffordability(affordabilityRows(d), d.TopCountries)
	if len(top) == 0 {
		return nil, eris.New("report: top affordable countries: no country has a defined affordability score")
	}
	return top, nil
}

func (c *topAffordableCountries) Table(d *Data) (*Table, error) {
	rows, err := c.rows(d)
	if err != nil {
		return nil, err
	}
	return affordabilityTable(c.name, rows), nil
}

func (c *topAffordableCountries) Render(d *Data, path string, style render.Style) error {
	rows, err := c.rows(d)
	if err != nil {
		return err
	}
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Country
		values[i], _ = r.Score.Float()
	}
	return render.HBar(path, c.title, "Affordability Score", labels, values, style)
}

type localPurchasingPower struct {
	chartMeta
}

func (c *localPurchasingPower) rows(d *Data) ([]aggregate.Affordability, error) {
	all := affordabilityRows(d)
	filtered := make([]aggregate.Affordability, 0, len(all))
	for _, r := range all {
		if r.Count >= d.MinCount {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil, eris.New("report: local purchasing power: no country meets the minimum response count")
	}
	if d.TopCountries < len(filtered) {
		filtered = filtered[:d.TopCountries]
	}
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].PurchasingPower != filtered[j].PurchasingPower {
			return filtered[i].PurchasingPower > filtered[j].PurchasingPower
		}
		return filtered[i].Country < filtered[j].Country
	})
	return filtered, nil
}

func (c *localPurchasingPower) Table(d *Data) (*Table, error) {
	rows, err := c.rows(d)
	if err != nil {
		return nil, err
	}
	return affordabilityTable(c.name, rows), nil
}

func (c *localPurchasingPower) Render(d *Data, path string, style render.Style) error {
	rows, err := c.rows(d)
	if err != nil {
		return err
	}
	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Country
		values[i] = r.PurchasingPower
	}
	return render.HBar(path, c.title, "Local Purchasing Power Index", labels, values, style)
}
