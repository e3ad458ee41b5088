// Package config loads application configuration from file and environment
// and owns the global logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Survey   SurveyConfig   `yaml:"survey" mapstructure:"survey"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SurveyConfig locates the input files.
type SurveyConfig struct {
	Path             string `yaml:"path" mapstructure:"path"`
	CostOfLivingPath string `yaml:"cost_of_living_path" mapstructure:"cost_of_living_path"`
}

// AnalysisConfig tunes the aggregation stage.
type AnalysisConfig struct {
	NumericColumns  []string `yaml:"numeric_columns" mapstructure:"numeric_columns"`
	MinCountryCount int      `yaml:"min_country_count" mapstructure:"min_country_count"`
	TopCountries    int      `yaml:"top_countries" mapstructure:"top_countries"`
}

// OutputConfig configures where charts land.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// StoreConfig configures the run database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DEVSURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("survey.path", "./data/raw/survey_results_public.csv")
	v.SetDefault("survey.cost_of_living_path", "./data/raw/Cost_of_Living_Index_by_Country_2024.csv")
	v.SetDefault("analysis.min_country_count", 50)
	v.SetDefault("analysis.top_countries", 10)
	v.SetDefault("output.dir", "./figures")
	v.SetDefault("store.path", "devsurvey.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields the given command actually uses. Modes are
// "charts", "stats", and "export".
func (c *Config) Validate(mode string) error {
	switch mode {
	case "charts", "stats":
		if c.Survey.Path == "" {
			return eris.New("config: survey.path is required")
		}
		if c.Analysis.MinCountryCount < 0 {
			return eris.New("config: analysis.min_country_count must not be negative")
		}
		if c.Analysis.TopCountries <= 0 {
			return eris.New("config: analysis.top_countries must be positive")
		}
		if mode == "charts" && c.Output.Dir == "" {
			return eris.New("config: output.dir is required")
		}
		return nil
	case "export":
		if c.Store.Path == "" {
			return eris.New("config: store.path is required")
		}
		return nil
	default:
		return eris.Errorf("config: unknown validation mode %q", mode)
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
