package report

import (
	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/survey"
)

// Registry maps chart names to their implementations.
type Registry struct {
	charts map[string]Chart
	order  []string // insertion order for deterministic iteration
}

// NewRegistry creates a registry populated with the full chart battery.
func NewRegistry() *Registry {
	r := &Registry{
		charts: make(map[string]Chart),
	}

	// Demographics
	r.Register(&ageDistribution{meta("age-distribution", "01_age_distribution.png", "Age Distribution of Developers Globally", false)})
	r.Register(&experienceDistribution{meta("experience-distribution", "02_experience_distribution.png", "Experience Distribution of Developers", false)})
	r.Register(&educationBackground{meta("education-background", "03_education_background.png", "Educational Background of Developers", false)})

	// Technology landscape
	r.Register(&topItems{meta("top-languages", "04_top_languages.png", "Top 10 Programming Languages Used in 2024", false), survey.ColLanguages, "Programming Language"})
	r.Register(&topItems{meta("top-frameworks", "05_top_frameworks.png", "Top 10 Frameworks Used in 2024", false), survey.ColWebframes, "Framework"})
	r.Register(&topItems{meta("top-databases", "06_top_databases.png", "Top 10 Databases Used in 2024", false), survey.ColDatabases, "Database"})

	// Work environment
	r.Register(&remoteWorkDistribution{meta("remote-work-distribution", "07_remote_work_distribution.png", "Work Arrangement Distribution (2024)", false)})
	r.Register(&jobSatByCompanySize{meta("job-satisfaction-by-company-size", "08_job_satisfaction_by_company_size.png", "Job Satisfaction by Company Size", false)})
	r.Register(&correlationMatrix{meta("correlation-matrix", "09_correlation_matrix.png", "Correlation Matrix: Compensation, Satisfaction, Experience", false)})
	r.Register(&workArrangementByAge{meta("work-arrangement-by-age", "10_work_arrangement_by_age.png", "Work Arrangement Preferences by Age Group", false)})

	// Regional analysis
	r.Register(&experienceByCountry{meta("experience-by-country", "11_experience_by_country.png", "Years of Professional Coding Experience by Top 10 Countries", false)})
	r.Register(&jobSatByCountry{meta("job-satisfaction-by-country", "12_job_satisfaction_by_country.png", "Job Satisfaction by Top 10 Countries", false)})
	r.Register(&devTypeByCountry{meta("developer-type-by-country", "13_developer_type_by_country.png", "Concentration of Developer Types by Country (Top 10 Countries)", false)})

	// Compensation
	r.Register(&compVsExperience{meta("compensation-vs-experience", "14_compensation_vs_experience.png", "Regional Influences: Compensation vs Experience", false)})
	r.Register(&compByCompanyCategory{meta("compensation-by-company-category", "15_compensation_by_company_category.png", "Compensation by Company Category", false)})

	// Learning and development
	r.Register(&topItems{meta("learning-methods", "16_learning_methods.png", "Top 10 Learning Methods Preferred by Developers in 2024", false), survey.ColLearnCode, "Learning Method"})
	r.Register(&topItems{meta("developer-roles", "17_developer_roles.png", "Top 10 Developer Roles in Survey", false), survey.ColDevType, "Developer Role"})

	// Industry
	r.Register(&boxByIndustry{meta("job-satisfaction-by-industry", "18_job_satisfaction_by_industry.png", "Job Satisfaction by Industry", false), survey.ColJobSat, "Job Satisfaction"})
	r.Register(&boxByIndustry{meta("experience-by-industry", "19_experience_by_industry.png", "Professional Coding Experience by Industry", false), survey.ColYearsCodePro, "Years of Professional Coding Experience"})

	// Cost-of-living integration
	r.Register(&compVsCostOfLiving{meta("compensation-vs-cost-of-living", "20_compensation_vs_col.png", "Median Compensation vs. Cost of Living Plus Rent Index", true)})
	r.Register(&topAffordableCountries{meta("top-affordable-countries", "21_top_affordable_countries.png", "Top 10 Countries by Affordability Score (Compensation / COL Index)", true)})
	r.Register(&localPurchasingPower{meta("local-purchasing-power", "22_local_purchasing_power.png", "Local Purchasing Power Index by Country (>=50 Responses)", true)})

	// Future trends
	r.Register(&emergingTechnologies{meta("emerging-technologies", "23_emerging_technologies.png", "Top 10 Emerging Technologies Developers Plan to Adopt (2024)", false)})

	return r
}

func meta(name, filename, title string, needsRef bool) chartMeta {
	return chartMeta{name: name, filename: filename, title: title, needsRef: needsRef}
}

// Register adds a chart to the registry.
func (r *Registry) Register(c Chart) {
	name := c.Name()
	r.charts[name] = c
	r.order = append(r.order, name)
}

// Get returns a chart by name.
func (r *Registry) Get(name string) (Chart, error) {
	c, ok := r.charts[name]
	if !ok {
		return nil, eris.Errorf("report: unknown chart %q", name)
	}
	return c, nil
}

// Select returns the named charts, or every chart when names is empty,
// always in registration order for the full set.
func (r *Registry) Select(names []string) ([]Chart, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	result := make([]Chart, 0, len(names))
	for _, name := range names {
		c, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// All returns all charts in registration order.
func (r *Registry) All() []Chart {
	result := make([]Chart, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.charts[name])
	}
	return result
}

// AllNames returns all registered chart names in registration order.
func (r *Registry) AllNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
