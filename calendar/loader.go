package calendar

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// File is the on-disk schema of a calendar configuration file. Any section
// that is missing falls back to the compiled-in Ontario defaults; missing
// configuration degrades silently, it never errors.
type File struct {
	Metadata          Metadata     `mapstructure:"metadata"`
	StatutoryHolidays CalendarYear `mapstructure:"statutory_holidays"`
	CalculationRules  Rules        `mapstructure:"calculation_rules"`
}

// Load reads a YAML or JSON calendar file. The returned File has defaults
// filled in for any absent section.
func Load(path string, logger *zap.Logger) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading calendar file, %s", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("unable to decode calendar file, %s", err)
	}
	f.applyDefaults(logger)

	if logger != nil {
		total := 0
		for _, holidays := range f.StatutoryHolidays {
			total += len(holidays)
		}
		logger.Info("loaded judicial calendar",
			zap.String("op", "calendar.Load"),
			zap.String("path", path),
			zap.Int("years", len(f.StatutoryHolidays)),
			zap.Int("holidays", total),
		)
	}

	return &f, nil
}

func (f *File) applyDefaults(logger *zap.Logger) {
	if len(f.StatutoryHolidays) == 0 {
		f.StatutoryHolidays = DefaultTable()
		if logger != nil {
			logger.Warn("no statutory_holidays section; using built-in Ontario table",
				zap.String("op", "calendar.Load"),
			)
		}
	}
	if f.CalculationRules.IsZero() {
		f.CalculationRules = DefaultRules()
		if logger != nil {
			logger.Warn("no calculation_rules section; using Bill 60 defaults",
				zap.String("op", "calendar.Load"),
			)
		}
	}
	if f.Metadata == (Metadata{}) {
		f.Metadata = DefaultMetadata()
	}
}

// Calendar builds the lookup structure from the loaded table.
func (f *File) Calendar() *Calendar {
	return New(f.StatutoryHolidays)
}
