package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/clean"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
)

// regionalScatterLimit bounds how many countries land on the regional
// scatter charts.
const regionalScatterLimit = 30

type compVsExperience struct {
	chartMeta
}

func (c *compVsExperience) stats(d *Data) ([]aggregate.CountryStats, error) {
	stats := aggregate.RegionalStats(d.Survey, d.MinCount)
	if len(stats) == 0 {
		return nil, eris.New("report: compensation vs experience: no country meets the minimum response count")
	}
	if regionalScatterLimit < len(stats) {
		stats = stats[:regionalScatterLimit]
	}
	return stats, nil
}

func (c *compVsExperience) Table(d *Data) (*Table, error) {
	stats, err := c.stats(d)
	if err != nil {
		return nil, err
	}
	t := &Table{Name: c.name, Columns: []string{"Country", "Responses", "Median Experience", "Median Compensation"}}
	for _, s := range stats {
		exp, _ := s.MedianExperience.Float()
		comp, _ := s.MedianCompensation.Float()
		t.Rows = append(t.Rows, []any{s.Country, s.Count, exp, comp})
	}
	return t, nil
}

func (c *compVsExperience) Render(d *Data, path string, style render.Style) error {
	stats, err := c.stats(d)
	if err != nil {
		return err
	}
	pts := make([]render.Point, 0, len(stats))
	for _, s := range stats {
		exp, okExp := s.MedianExperience.Float()
		comp, okComp := s.MedianCompensation.Float()
		if !okExp || !okComp {
			continue
		}
		pts = append(pts, render.Point{X: exp, Y: comp, Size: float64(s.Count), Label: s.Country})
	}
	return render.Scatter(path, c.title,
		"Median Years of Professional Experience", "Median Yearly Compensation", pts, style)
}

// companyCategoryOrder fixes the box order from smallest to largest.
var companyCategoryOrder = []string{
	clean.CategoryStartup,
	clean.CategoryMidSized,
	clean.CategoryEnterprise,
	clean.CategoryOther,
	clean.CategoryUnknown,
}

type compByCompanyCategory struct {
	chartMeta
}

func (c *compByCompanyCategory) groups(d *Data) ([]render.BoxGroup, error) {
	if !d.Survey.HasColumn(survey.ColCompanyCategory) {
		return nil, eris.New("report: compensation by company category: company category column not derived")
	}
	return boxGroups(d.Survey, survey.ColCompanyCategory, survey.ColConvertedComp, companyCategoryOrder), nil
}

func (c *compByCompanyCategory) Table(d *Data) (*Table, error) {
	groups, err := c.groups(d)
	if err != nil {
		return nil, err
	}
	return boxTable(c.name, "Company Category", groups), nil
}

func (c *compByCompanyCategory) Render(d *Data, path string, style render.Style) error {
	groups, err := c.groups(d)
	if err != nil {
		return err
	}
	return render.BoxPlot(path, c.title, "Yearly Compensation", groups, style)
}
