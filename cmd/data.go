package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/devlens/devsurvey/internal/clean"
	"github.com/devlens/devsurvey/internal/report"
	"github.com/devlens/devsurvey/internal/survey"
)

// prepareData loads both inputs and applies the cleaning stage: numeric
// coercion, age binning, and company categorization.
func prepareData(ctx context.Context, surveyPath, refPath string) (*report.Data, error) {
	in, err := survey.Load(ctx, surveyPath, refPath)
	if err != nil {
		return nil, eris.Wrap(err, "prepare data")
	}

	f := clean.NumericColumns(in.Survey, cfg.Analysis.NumericColumns)
	f = clean.AgeBins(f, survey.ColAge)
	f = clean.CompanyCategory(f, survey.ColOrgSize)

	return &report.Data{
		Survey:       f,
		CostOfLiving: in.CostOfLiving,
		TopCountries: cfg.Analysis.TopCountries,
		MinCount:     cfg.Analysis.MinCountryCount,
	}, nil
}
