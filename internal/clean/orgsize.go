package clean

import (
	"strings"

	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// Company categories produced by CategorizeOrgSize.
const (
	CategoryUnknown    = "Unknown"
	CategoryStartup    = "Startup"
	CategoryMidSized   = "Mid-sized"
	CategoryEnterprise = "Enterprise"
	CategoryOther      = "Other"
)

// orgSizeRules are evaluated top to bottom, first match wins. The order is
// load-bearing: "500" alone would also match "201-500", so the Startup and
// Mid-sized rules must run before the Enterprise rule.
var orgSizeRules = []struct {
	category string
	needles  []string
}{
	{CategoryStartup, []string{"1-10", "11-50"}},
	{CategoryMidSized, []string{"51-200", "201-500"}},
	{CategoryEnterprise, []string{"500", "1000", "5000", "5000+"}},
}

// CategorizeOrgSize maps a raw organization-size value to one of the five
// company categories. Total over all inputs: missing and blank values are
// Unknown, anything unmatched is Other.
func CategorizeOrgSize(v frame.Value) string {
	if v.IsNull() {
		return CategoryUnknown
	}
	s := strings.ToLower(strings.TrimSpace(v.String()))
	if s == "" {
		return CategoryUnknown
	}
	for _, rule := range orgSizeRules {
		for _, needle := range rule.needles {
			if strings.Contains(s, needle) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// CompanyCategory adds the derived survey.ColCompanyCategory column from the
// given organization-size column.
func CompanyCategory(f *frame.Frame, orgCol string) *frame.Frame {
	vals := make([]frame.Value, f.Len())
	for i := 0; i < f.Len(); i++ {
		vals[i] = frame.Text(CategorizeOrgSize(f.At(i, orgCol)))
	}
	out, _ := f.WithColumn(survey.ColCompanyCategory, vals)
	return out
}
