/*
Package factory wires configuration into ready-to-use engines.

PURPOSE:
  Converts a configuration file (or compiled-in defaults) into the full set
  of calculators: judicial calendar, date engine, arrears calculator,
  guideline checker, and deposit estimator. This keeps the legal constants
  in data, not code; a clinic can update the holiday table or a new year's
  guideline rate without a code change.

CONFIG SCHEMA (YAML or JSON):

  calendar:
    metadata:
      description: Ontario LTB statutory holiday calendar
      source: Tribunals Ontario published closure dates
      last_updated: "2025-11-30"
    statutory_holidays:
      "2025":
        - { date: "2025-12-25", name: "Christmas Day" }
        - { date: "2025-12-26", name: "Boxing Day" }
    calculation_rules:
      n4_notice: { days: 7, type: business_days }
      n12_notice_standard: { days: 60, type: calendar_days }
      n12_notice_extended: { days: 120, type: calendar_days }
      review_period: { days: 15, type: calendar_days }
  guideline_rates:
    "2025": 0.025
  arrears:
    late_fee_threshold_cents: 5000
  deposit:
    percentage: 0.5

  Any missing section falls back to its compiled-in default; missing
  configuration degrades silently (with a log warning), never an error.

USAGE:
  kit := factory.Default()
  calc := kit.Dates.N4Deadline("2025-12-01", dates.Today())

  kit, err := factory.LoadConfig("tenancy.yml", logger)

SEE ALSO:
  - calendar/loader.go: calendar-only file loading
  - calendar/ontario.go: the compiled-in defaults
*/
package factory

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/warp/tenancy-engine/arrears"
	"github.com/warp/tenancy-engine/calendar"
	"github.com/warp/tenancy-engine/dates"
	"github.com/warp/tenancy-engine/deposit"
	"github.com/warp/tenancy-engine/guideline"
	"github.com/warp/tenancy-engine/money"
)

// =============================================================================
// CONFIG SCHEMA
// =============================================================================

// Config is the on-disk configuration for the whole toolkit.
type Config struct {
	Calendar       calendar.File      `mapstructure:"calendar"`
	GuidelineRates map[string]float64 `mapstructure:"guideline_rates"`
	Arrears        ArrearsConfig      `mapstructure:"arrears"`
	Deposit        DepositConfig      `mapstructure:"deposit"`
}

// ArrearsConfig overrides the arrears calculator constants.
type ArrearsConfig struct {
	LateFeeThresholdCents int64 `mapstructure:"late_fee_threshold_cents"`
}

// DepositConfig overrides the deposit estimator parameters.
type DepositConfig struct {
	Percentage   float64 `mapstructure:"percentage"`
	MinimumCents *int64  `mapstructure:"minimum_cents"`
}

// =============================================================================
// TOOLKIT
// =============================================================================

// Toolkit is the fully wired set of engines. Build once at startup; every
// engine is stateless and safe for concurrent use.
type Toolkit struct {
	Calendar  *calendar.Calendar
	Dates     *dates.Engine
	Arrears   *arrears.Calculator
	Guideline *guideline.Checker
	Deposit   *deposit.Estimator
}

// Default returns a Toolkit over the compiled-in Ontario configuration.
func Default() *Toolkit {
	return FromConfig(Config{}, nil)
}

// FromConfig builds a Toolkit, filling any zero section with its default.
func FromConfig(cfg Config, logger *zap.Logger) *Toolkit {
	table := cfg.Calendar.StatutoryHolidays
	if len(table) == 0 {
		table = calendar.DefaultTable()
		warn(logger, "no calendar.statutory_holidays; using built-in Ontario table")
	}
	rules := cfg.Calendar.CalculationRules
	if rules.IsZero() {
		rules = calendar.DefaultRules()
		warn(logger, "no calendar.calculation_rules; using Bill 60 defaults")
	}

	cal := calendar.New(table)

	rates := parseRates(cfg.GuidelineRates)
	if len(rates) == 0 {
		rates = guideline.DefaultRates()
		warn(logger, "no guideline_rates; using built-in rate table")
	}

	calc := arrears.NewCalculator()
	if cfg.Arrears.LateFeeThresholdCents > 0 {
		calc.LateFeeThreshold = money.Cents(cfg.Arrears.LateFeeThresholdCents)
	}
	calc.CureBusinessDays = rules.N4Notice.Days

	est := deposit.NewEstimator()
	if cfg.Deposit.Percentage > 0 {
		est.Percentage = decimal.NewFromFloat(cfg.Deposit.Percentage)
	}
	if cfg.Deposit.MinimumCents != nil {
		minimum := money.Cents(*cfg.Deposit.MinimumCents)
		est.Minimum = &minimum
	}

	return &Toolkit{
		Calendar:  cal,
		Dates:     dates.New(cal, rules),
		Arrears:   calc,
		Guideline: guideline.FromRates(rates),
		Deposit:   est,
	}
}

// LoadConfig reads a toolkit configuration file and builds the Toolkit.
func LoadConfig(path string, logger *zap.Logger) (*Toolkit, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct, %s", err)
	}

	if logger != nil {
		logger.Info("loaded toolkit configuration",
			zap.String("op", "factory.LoadConfig"),
			zap.String("path", path),
			zap.Int("calendar_years", len(cfg.Calendar.StatutoryHolidays)),
			zap.Int("guideline_years", len(cfg.GuidelineRates)),
		)
	}

	return FromConfig(cfg, logger), nil
}

// parseRates converts string year keys (the file schema) to ints.
// Unparsable keys are dropped.
func parseRates(raw map[string]float64) map[int]float64 {
	rates := make(map[int]float64, len(raw))
	for key, rate := range raw {
		year, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		rates[year] = rate
	}
	return rates
}

func warn(logger *zap.Logger, msg string) {
	if logger != nil {
		logger.Warn(msg, zap.String("op", "factory.FromConfig"))
	}
}
