package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlens/devsurvey/internal/report"
)

const surveyFixture = `ResponseId,Country,Age,YearsCode,YearsCodePro,ConvertedCompYearly,JobSat,OrgSize,EdLevel,RemoteWork,Industry,DevType,LanguageHaveWorkedWith,WebframeHaveWorkedWith,DatabaseHaveWorkedWith,LearnCode,LanguageWantToWorkWith
1,Norway,25-34 years old,10,6,95000,8,11-50 employees,Masters,Remote,Fintech,Back-end;DevOps,Go;Python,Gin,PostgreSQL,Books,Rust
2,Norway,35-44 years old,15,12,110000,7,500-999 employees,Bachelors,Hybrid,Fintech,Back-end,Go,Gin;Echo,PostgreSQL;Redis,Online Courses,Zig
3,Norway,18-24 years old,3,1,60000,6,1-10 employees,Bachelors,Remote,Healthcare,Full-stack,Python;TypeScript,React,SQLite,Books;Online Courses,Go
4,India,25-34 years old,8,5,30000,7,"10,000 or more employees",Bachelors,In-person,Healthcare,Full-stack;Front-end,Python,React,MySQL,Online Courses,Go;Rust
5,India,18-24 years old,4,2,20000,6,201-500 employees,Masters,Hybrid,Fintech,Front-end,TypeScript;Python,React;Vue,MySQL,Books,Rust
6,India,25-34 years old,6,4,28000,5,51-200 employees,Bachelors,Remote,Retail,Back-end,Go;Python,Gin,PostgreSQL;MySQL,School,Go
7,Germany,45-54 years old,25,20,80000,9,5000+ employees,PhD,Hybrid,Automotive,Embedded,C++;Go,,SQLite,Books,Rust;Zig
`

const costOfLivingFixture = `Country,Cost of Living Index,Cost of Living Plus Rent Index,Local Purchasing Power Index
Norway,101.2,82.5,110
India,21.1,25,65
Germany,62.1,65,100
`

// writeFixtures drops both input files in a temp dir and points the
// environment at a fresh store and low aggregation thresholds.
func writeFixtures(t *testing.T) (surveyPath, refPath string) {
	t.Helper()
	dir := t.TempDir()
	surveyPath = filepath.Join(dir, "survey_results_public.csv")
	refPath = filepath.Join(dir, "cost_of_living.csv")
	require.NoError(t, os.WriteFile(surveyPath, []byte(surveyFixture), 0o644))
	require.NoError(t, os.WriteFile(refPath, []byte(costOfLivingFixture), 0o644))

	t.Setenv("DEVSURVEY_ANALYSIS_MIN_COUNTRY_COUNT", "2")
	t.Setenv("DEVSURVEY_STORE_PATH", filepath.Join(dir, "devsurvey.db"))
	return surveyPath, refPath
}

// execute resets command state and runs the root command, since the same
// process executes several commands per test run.
func execute(args ...string) error {
	chartsSurvey, chartsCOL, chartsOut, chartsOnly, chartsNoStore = "", "", "", nil, false
	statsSurvey, statsCOL, statsOnly, statsOutput = "", "", nil, ""
	exportRunID, exportXLSX = "", "devsurvey.xlsx"
	runsLimit = 20

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestChartsCommand(t *testing.T) {
	surveyPath, refPath := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "figures")

	err := execute("charts", "--survey", surveyPath, "--cost-of-living", refPath, "--out", outDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 23)

	_, err = os.Stat(filepath.Join(outDir, "01_age_distribution.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "21_top_affordable_countries.png"))
	assert.NoError(t, err)
}

func TestChartsCommandMissingSurvey(t *testing.T) {
	_, refPath := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "figures")

	err := execute("charts", "--survey", filepath.Join(t.TempDir(), "nope.csv"),
		"--cost-of-living", refPath, "--out", outDir)
	assert.Error(t, err)
}

func TestChartsCommandSubsetWithoutReference(t *testing.T) {
	surveyPath, _ := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "figures")

	// missing reference file is not fatal, reference charts just skip
	err := execute("charts", "--survey", surveyPath,
		"--cost-of-living", filepath.Join(t.TempDir(), "nope.csv"),
		"--out", outDir, "--only", "top-languages", "--no-store")
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStatsCommand(t *testing.T) {
	surveyPath, refPath := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "tables.json")

	err := execute("stats", "--survey", surveyPath, "--cost-of-living", refPath,
		"--output", outPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var tables []report.Table
	require.NoError(t, json.Unmarshal(raw, &tables))
	assert.Len(t, tables, 23)
	assert.Equal(t, "age-distribution", tables[0].Name)
}

func TestExportCommandAfterCharts(t *testing.T) {
	surveyPath, refPath := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "figures")
	xlsxPath := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, execute("charts", "--survey", surveyPath,
		"--cost-of-living", refPath, "--out", outDir))
	require.NoError(t, execute("export", "--xlsx", xlsxPath))

	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCommandNoRuns(t *testing.T) {
	writeFixtures(t)
	err := execute("export", "--xlsx", filepath.Join(t.TempDir(), "report.xlsx"))
	assert.Error(t, err)
}
