package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/render"
	"github.com/devlens/devsurvey/internal/survey"
	"github.com/devlens/devsurvey/internal/tokenize"
)

const topItemCount = 10

// topItems is the shared shape of every "top 10 of a multi-select column"
// chart: languages, frameworks, databases, learning methods, and roles.
type topItems struct {
	chartMeta
	col   string
	label string
}

func (c *topItems) items(d *Data) []tokenize.ItemCount {
	return tokenize.CountItems(d.Survey, c.col).Top(topItemCount)
}

func (c *topItems) Table(d *Data) (*Table, error) {
	items := c.items(d)
	if len(items) == 0 {
		return nil, eris.Errorf("report: %s: no items in column %s", c.name, c.col)
	}
	return itemTable(c.name, c.label, items), nil
}

func (c *topItems) Render(d *Data, path string, style render.Style) error {
	items := c.items(d)
	if len(items) == 0 {
		return eris.Errorf("report: %s: no items in column %s", c.name, c.col)
	}
	labels, values := itemBars(items)
	return render.HBar(path, c.title, "Number of Respondents", labels, values, style)
}

// wantColumns are the forward-looking multi-select columns pooled into the
// emerging-technologies chart. Columns missing from the projection simply
// contribute nothing.
var wantColumns = []string{
	survey.ColLanguagesWant,
	survey.ColWebframesWant,
	survey.ColPlatformsWant,
	survey.ColToolsWant,
}

type emergingTechnologies struct {
	chartMeta
}

func (c *emergingTechnologies) items(d *Data) []tokenize.ItemCount {
	pooled := tokenize.Counts{}
	for _, col := range wantColumns {
		for item, n := range tokenize.CountItems(d.Survey, col) {
			pooled[item] += n
		}
	}
	return pooled.Top(topItemCount)
}

func (c *emergingTechnologies) Table(d *Data) (*Table, error) {
	items := c.items(d)
	if len(items) == 0 {
		return nil, eris.New("report: emerging technologies: no want-to-work-with data")
	}
	return itemTable(c.name, "Technology", items), nil
}

func (c *emergingTechnologies) Render(d *Data, path string, style render.Style) error {
	items := c.items(d)
	if len(items) == 0 {
		return eris.New("report: emerging technologies: no want-to-work-with data")
	}
	labels, values := itemBars(items)
	return render.HBar(path, c.title, "Number of Respondents", labels, values, style)
}
