// Package survey loads the developer-survey and cost-of-living input tables
// and names the columns the pipeline operates on.
package survey

import (
	"context"
	"errors"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devlens/devsurvey/internal/frame"
)

// Survey columns consumed by the pipeline.
const (
	ColResponseID      = "ResponseId"
	ColCountry         = "Country"
	ColAge             = "Age"
	ColAgeCleaned      = "AgeCleaned"
	ColAgeBin          = "AgeBin"
	ColYearsCode       = "YearsCode"
	ColYearsCodePro    = "YearsCodePro"
	ColConvertedComp   = "ConvertedCompYearly"
	ColJobSat          = "JobSat"
	ColOrgSize         = "OrgSize"
	ColCompanyCategory = "CompanyCategory"
	ColEdLevel         = "EdLevel"
	ColRemoteWork      = "RemoteWork"
	ColIndustry        = "Industry"
	ColDevType         = "DevType"
	ColLanguages       = "LanguageHaveWorkedWith"
	ColWebframes       = "WebframeHaveWorkedWith"
	ColDatabases       = "DatabaseHaveWorkedWith"
	ColLearnCode       = "LearnCode"
	ColLanguagesWant   = "LanguageWantToWorkWith"
	ColWebframesWant   = "WebframeWantToWorkWith"
	ColPlatformsWant   = "PlatformWantToWorkWith"
	ColToolsWant       = "ToolsTechWantToWorkWith"
)

// Cost-of-living reference columns, named exactly as in the source file.
const (
	ColCostPlusRent    = "Cost of Living Plus Rent Index"
	ColPurchasingPower = "Local Purchasing Power Index"
)

// UsefulColumns is the survey projection the analysis works from. The raw
// export carries over a hundred columns; everything else is dropped on load.
var UsefulColumns = []string{
	ColAge, ColCountry, "MainBranch", ColYearsCode, ColYearsCodePro,
	ColEdLevel, ColDevType, "Employment", "WorkExp", ColResponseID,
	ColRemoteWork, ColOrgSize, ColIndustry,
	"CompTotal", ColConvertedComp, "Currency", ColJobSat,
	ColLanguages, ColLanguagesWant,
	ColDatabases, "DatabaseWantToWorkWith",
	ColWebframes, ColWebframesWant,
	"PlatformHaveWorkedWith", ColPlatformsWant,
	ColLearnCode, "LearnCodeOnline",
	"BuildvsBuy", "PurchaseInfluence",
	"OpSysPersonal use", "OpSysProfessional use",
}

// Inputs holds the two loaded source tables. CostOfLiving is nil when the
// reference file is absent; callers then skip the charts that need it.
type Inputs struct {
	Survey       *frame.Frame
	CostOfLiving *frame.Frame
}

// Load reads both input files concurrently. A missing or unreadable survey
// file is fatal. A missing cost-of-living file is downgraded to a warning
// and a nil reference table; any other reference read error stays fatal.
func Load(ctx context.Context, surveyPath, refPath string) (*Inputs, error) {
	var in Inputs

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		f, err := frame.ReadCSV(surveyPath)
		if err != nil {
			return eris.Wrap(err, "survey: load survey data")
		}
		in.Survey = f.Select(UsefulColumns...)
		return nil
	})

	g.Go(func() error {
		f, err := frame.ReadCSV(refPath)
		if errors.Is(err, os.ErrNotExist) {
			zap.L().Warn("survey: cost-of-living file not found, reference charts will be skipped",
				zap.String("path", refPath))
			return nil
		}
		if err != nil {
			return eris.Wrap(err, "survey: load cost-of-living data")
		}
		in.CostOfLiving = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("survey: inputs loaded",
		zap.Int("rows", in.Survey.Len()),
		zap.Int("columns", len(in.Survey.Columns())),
		zap.Bool("cost_of_living", in.CostOfLiving != nil),
	)
	return &in, nil
}
