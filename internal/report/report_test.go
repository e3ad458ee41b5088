package report

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/clean"
	"github.com/devlens/devsurvey/internal/frame"
	"github.com/devlens/devsurvey/internal/survey"
)

// testData builds a small but fully-derived survey frame plus a matching
// cost-of-living reference.
func testData(t *testing.T) *Data {
	t.Helper()

	cols := []string{
		survey.ColResponseID, survey.ColCountry, survey.ColAge,
		survey.ColYearsCode, survey.ColYearsCodePro, survey.ColConvertedComp,
		survey.ColJobSat, survey.ColOrgSize, survey.ColEdLevel,
		survey.ColRemoteWork, survey.ColIndustry, survey.ColDevType,
		survey.ColLanguages, survey.ColWebframes, survey.ColDatabases,
		survey.ColLearnCode, survey.ColLanguagesWant,
	}
	f := frame.New(cols)

	type resp struct {
		country, age, years, yearsPro, comp, sat, org, ed, remote, industry, dev, lang, web, db, learn, want string
	}
	rows := []resp{
		{"Norway", "25-34 years old", "10", "6", "95000", "8", "11-50 employees", "Masters", "Remote", "Fintech", "Back-end;DevOps", "Go;Python", "Gin", "PostgreSQL", "Books", "Rust"},
		{"Norway", "35-44 years old", "15", "12", "110000", "7", "500-999 employees", "Bachelors", "Hybrid", "Fintech", "Back-end", "Go", "Gin;Echo", "PostgreSQL;Redis", "Online Courses", "Zig"},
		{"Norway", "18-24 years old", "3", "1", "60000", "6", "1-10 employees", "Bachelors", "Remote", "Healthcare", "Full-stack", "Python;TypeScript", "React", "SQLite", "Books;Online Courses", "Go"},
		{"India", "25-34 years old", "8", "5", "30000", "7", "10,000 or more employees", "Bachelors", "In-person", "Healthcare", "Full-stack;Front-end", "Python", "React", "MySQL", "Online Courses", "Go;Rust"},
		{"India", "18-24 years old", "4", "2", "20000", "6", "201-500 employees", "Masters", "Hybrid", "Fintech", "Front-end", "TypeScript;Python", "React;Vue", "MySQL", "Books", "Rust"},
		{"India", "25-34 years old", "6", "4", "28000", "5", "51-200 employees", "Bachelors", "Remote", "Retail", "Back-end", "Go;Python", "Gin", "PostgreSQL;MySQL", "School", "Go"},
		{"Germany", "45-54 years old", "25", "20", "80000", "9", "5000+ employees", "PhD", "Hybrid", "Automotive", "Embedded", "C++;Go", "", "SQLite", "Books", "Rust;Zig"},
	}
	for i, r := range rows {
		vals := []string{
			strconv.Itoa(i + 1), r.country, r.age, r.years, r.yearsPro, r.comp,
			r.sat, r.org, r.ed, r.remote, r.industry, r.dev, r.lang, r.web,
			r.db, r.learn, r.want,
		}
		fv := make([]frame.Value, len(vals))
		for j, v := range vals {
			if v == "" {
				fv[j] = frame.Null()
			} else {
				fv[j] = frame.Text(v)
			}
		}
		require.NoError(t, f.AppendRow(fv...))
	}

	f = clean.NumericColumns(f, nil)
	f = clean.AgeBins(f, survey.ColAge)
	f = clean.CompanyCategory(f, survey.ColOrgSize)

	ref := frame.New([]string{survey.ColCountry, survey.ColCostPlusRent, survey.ColPurchasingPower})
	require.NoError(t, ref.AppendRow(frame.Text("Norway"), frame.Text("82.5"), frame.Text("110")))
	require.NoError(t, ref.AppendRow(frame.Text("India"), frame.Text("25"), frame.Text("65")))
	require.NoError(t, ref.AppendRow(frame.Text("Germany"), frame.Text("65"), frame.Text("100")))

	return &Data{
		Survey:       f,
		CostOfLiving: ref,
		TopCountries: 10,
		MinCount:     2,
	}
}
