package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
	"github.com/devlens/devsurvey/internal/tokenize"
)

// boxTable shapes per-group box data into a count/median table.
func boxTable(name, label string, groups []render.BoxGroup) *Table {
	t := &Table{Name: name, Columns: []string{label, "Responses", "Median"}}
	for _, g := range groups {
		t.Rows = append(t.Rows, []any{g.Label, len(g.Values), medianOf(g.Values)})
	}
	return t
}

type experienceByCountry struct {
	chartMeta
}

func (c *experienceByCountry) groups(d *Data) ([]render.BoxGroup, error) {
	top := topCountryNames(d)
	if len(top) == 0 {
		return nil, eris.New("report: experience by country: no country data")
	}
	return boxGroups(d.Survey, survey.ColCountry, survey.ColYearsCodePro, top), nil
}

func (c *experienceByCountry) Table(d *Data) (*Table, error) {
	groups, err := c.groups(d)
	if err != nil {
		return nil, err
	}
	return boxTable(c.name, "Country", groups), nil
}

func (c *experienceByCountry) Render(d *Data, path string, style render.Style) error {
	groups, err := c.groups(d)
	if err != nil {
		return err
	}
	return render.BoxPlot(path, c.title, "Years of Professional Experience", groups, style)
}

type jobSatByCountry struct {
	chartMeta
}

func (c *jobSatByCountry) groups(d *Data) ([]render.BoxGroup, error) {
	top := topCountryNames(d)
	if len(top) == 0 {
		return nil, eris.New("report: job satisfaction by country: no country data")
	}
	return boxGroups(d.Survey, survey.ColCountry, survey.ColJobSat, top), nil
}

func (c *jobSatByCountry) Table(d *Data) (*Table, error) {
	groups, err := c.groups(d)
	if err != nil {
		return nil, err
	}
	return boxTable(c.name, "Country", groups), nil
}

func (c *jobSatByCountry) Render(d *Data, path string, style render.Style) error {
	groups, err := c.groups(d)
	if err != nil {
		return err
	}
	return render.HBoxPlot(path, c.title, "Job Satisfaction", groups, style)
}

type devTypeByCountry struct {
	chartMeta
}

func (c *devTypeByCountry) crossTab(d *Data) (*aggregate.CrossTab, error) {
	top := topCountryNames(d)
	if len(top) == 0 {
		return nil, eris.New("report: developer type by country: no country data")
	}
	exploded := tokenize.Explode(d.Survey, survey.ColDevType)
	filtered := aggregate.FilterCountries(exploded, top)
	ct := aggregate.CrossTabCount(filtered, survey.ColCountry, survey.ColDevType)
	if len(ct.Rows) == 0 || len(ct.Cols) == 0 {
		return nil, eris.New("report: developer type by country: no developer type data")
	}
	return ct, nil
}

func (c *devTypeByCountry) Table(d *Data) (*Table, error) {
	ct, err := c.crossTab(d)
	if err != nil {
		return nil, err
	}
	t := &Table{Name: c.name, Columns: append([]string{"Country"}, ct.Cols...)}
	for i, country := range ct.Rows {
		row := make([]any, 0, len(ct.Cols)+1)
		row = append(row, country)
		for _, v := range ct.Counts[i] {
			row = append(row, int(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (c *devTypeByCountry) Render(d *Data, path string, style render.Style) error {
	ct, err := c.crossTab(d)
	if err != nil {
		return err
	}
	return render.Heatmap(path, c.title, ct.Rows, ct.Cols, ct.Counts, style)
}
