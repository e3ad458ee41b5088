package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/aggregate"
	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
)

// boxByIndustry is the shared shape of the per-industry box charts: one box
// per industry, drawing the numeric column named by col.
type boxByIndustry struct {
	chartMeta
	col   string
	label string
}

func (c *boxByIndustry) groups(d *Data) ([]render.BoxGroup, error) {
	medians := aggregate.MedianBy(d.Survey, survey.ColIndustry, c.col)
	if len(medians) == 0 {
		return nil, eris.Errorf("report: %s: no industry data", c.name)
	}
	order := make([]string, len(medians))
	for i, m := range medians {
		order[i] = m.Group
	}
	return boxGroups(d.Survey, survey.ColIndustry, c.col, order), nil
}

func (c *boxByIndustry) Table(d *Data) (*Table, error) {
	groups, err := c.groups(d)
	if err != nil {
		return nil, err
	}
	return boxTable(c.name, "Industry", groups), nil
}

func (c *boxByIndustry) Render(d *Data, path string, style render.Style) error {
	groups, err := c.groups(d)
	if err != nil {
		return err
	}
	return render.BoxPlot(path, c.title, c.label, groups, style)
}
