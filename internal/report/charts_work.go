package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/clean"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
)

type remoteWorkDistribution struct {
	chartMeta
}

func (c *remoteWorkDistribution) Table(d *Data) (*Table, error) {
	counts := aggregate.CountBy(d.Survey, survey.ColRemoteWork)
	if len(counts) == 0 {
		return nil, eris.New("report: remote work distribution: no work arrangement data")
	}
	return countTable(c.name, "Work Arrangement", counts), nil
}

func (c *remoteWorkDistribution) Render(d *Data, path string, style render.Style) error {
	counts := aggregate.CountBy(d.Survey, survey.ColRemoteWork)
	if len(counts) == 0 {
		return eris.New("report: remote work distribution: no work arrangement data")
	}
	labels, values := countBars(counts)
	return render.VBar(path, c.title, "Number of Respondents", labels, values, style)
}

type jobSatByCompanySize struct {
	chartMeta
}

// sizeOrder lists company sizes by response volume, most common first,
// matching how the boxes are stacked.
func (c *jobSatByCompanySize) sizeOrder(d *Data) []string {
	counts := aggregate.CountBy(d.Survey, survey.ColOrgSize)
	order := make([]string, len(counts))
	for i, cc := range counts {
		order[i] = cc.Category
	}
	return order
}

func (c *jobSatByCompanySize) Table(d *Data) (*Table, error) {
	order := c.sizeOrder(d)
	if len(order) == 0 {
		return nil, eris.New("report: job satisfaction by company size: no organization size data")
	}
	groups := boxGroups(d.Survey, survey.ColOrgSize, survey.ColJobSat, order)
	t := &Table{Name: c.name, Columns: []string{"Company Size", "Responses", "Median Job Satisfaction"}}
	for _, g := range groups {
		t.Rows = append(t.Rows, []any{g.Label, len(g.Values), medianOf(g.Values)})
	}
	return t, nil
}

func (c *jobSatByCompanySize) Render(d *Data, path string, style render.Style) error {
	order := c.sizeOrder(d)
	if len(order) == 0 {
		return eris.New("report: job satisfaction by company size: no organization size data")
	}
	groups := boxGroups(d.Survey, survey.ColOrgSize, survey.ColJobSat, order)
	return render.HBoxPlot(path, c.title, "Job Satisfaction Rating", groups, style)
}

// correlationColumns feed the correlation matrix.
var correlationColumns = []string{
	survey.ColConvertedComp,
	survey.ColJobSat,
	survey.ColYearsCode,
	survey.ColYearsCodePro,
}

type correlationMatrix struct {
	chartMeta
}

func (c *correlationMatrix) Table(d *Data) (*Table, error) {
	corr, ok := aggregate.CorrelationMatrix(d.Survey, correlationColumns)
	if !ok {
		return nil, eris.New("report: correlation matrix: not enough complete rows")
	}
	t := &Table{Name: c.name, Columns: append([]string{"Column"}, corr.Columns...)}
	for i, col := range corr.Columns {
		row := make([]any, 0, len(corr.Columns)+1)
		row = append(row, col)
		for _, v := range corr.Matrix[i] {
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (c *correlationMatrix) Render(d *Data, path string, style render.Style) error {
	corr, ok := aggregate.CorrelationMatrix(d.Survey, correlationColumns)
	if !ok {
		return eris.New("report: correlation matrix: not enough complete rows")
	}
	return render.Heatmap(path, c.title, corr.Columns, corr.Columns, corr.Matrix, style)
}

type workArrangementByAge struct {
	chartMeta
}

func (c *workArrangementByAge) build(d *Data) ([]string, []render.Series, error) {
	ct := aggregate.CrossTabCount(d.Survey, survey.ColAgeBin, survey.ColRemoteWork)
	if len(ct.Rows) == 0 {
		return nil, nil, eris.New("report: work arrangement by age: no binned age data")
	}

	// Age bands in their natural order, restricted to bands present.
	rowIdx := map[string]int{}
	for i, r := range ct.Rows {
		rowIdx[r] = i
	}
	groups := make([]string, 0, len(clean.AgeBands))
	for _, band := range clean.AgeBands {
		if _, ok := rowIdx[band]; ok {
			groups = append(groups, band)
		}
	}

	series := make([]render.Series, len(ct.Cols))
	for j, arrangement := range ct.Cols {
		values := make([]float64, len(groups))
		for i, band := range groups {
			values[i] = ct.Counts[rowIdx[band]][j]
		}
		series[j] = render.Series{Name: arrangement, Values: values}
	}
	return groups, series, nil
}

func (c *workArrangementByAge) Table(d *Data) (*Table, error) {
	groups, series, err := c.build(d)
	if err != nil {
		return nil, err
	}
	t := &Table{Name: c.name, Columns: []string{"Age Group"}}
	for _, s := range series {
		t.Columns = append(t.Columns, s.Name)
	}
	for i, band := range groups {
		row := make([]any, 0, len(series)+1)
		row = append(row, band)
		for _, s := range series {
			row = append(row, int(s.Values[i]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (c *workArrangementByAge) Render(d *Data, path string, style render.Style) error {
	groups, series, err := c.build(d)
	if err != nil {
		return err
	}
	return render.GroupedBar(path, c.title, "Number of Respondents", groups, series, style)
}
