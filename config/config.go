/*
Package config loads the application configuration.

PURPOSE:

	Reads the configuration record consumed by the engine (country,
	subdivision, year, working-hours cap, accrual rates, carry-over) plus
	server and database settings. Backed by viper: YAML file, environment
	override (VACATION_ prefix), defaults for every field.

EXAMPLE (config.yaml):

	country: IT
	subdivision: BO
	year: 2023
	working_hours_cap: 8
	monthly_rates:
	  vacation: 13.34
	  pto: 8.66
	prior_year_carryover:
	  vacation: 25.5
	  pto: 20.3
	server:
	  port: 8080
	database:
	  path: vacation.db
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/solari/vacation-engine/calendar"
)

// Config is the full application configuration.
type Config struct {
	Country         string          `mapstructure:"country"`
	Subdivision     string          `mapstructure:"subdivision"`
	Year            int             `mapstructure:"year"`
	WorkingHoursCap float64         `mapstructure:"working_hours_cap"`
	WeekendDays     []string        `mapstructure:"weekend_days"`
	MonthlyRates    RatesConfig     `mapstructure:"monthly_rates"`
	Carryover       CarryoverConfig `mapstructure:"prior_year_carryover"`
	Server          ServerConfig    `mapstructure:"server"`
	Database        DatabaseConfig  `mapstructure:"database"`
}

// RatesConfig holds the flat monthly accrual per category, in hours.
type RatesConfig struct {
	Vacation float64 `mapstructure:"vacation"`
	PTO      float64 `mapstructure:"pto"`
}

// CarryoverConfig holds the prior-year leftover balance per category, in hours.
type CarryoverConfig struct {
	Vacation float64 `mapstructure:"vacation"`
	PTO      float64 `mapstructure:"pto"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig holds SQLite settings. Use ":memory:" for an in-memory
// database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from the given file path. An empty path yields
// defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("country", "IT")
	v.SetDefault("subdivision", "")
	v.SetDefault("year", time.Now().Year())
	v.SetDefault("working_hours_cap", calendar.DefaultWorkingHoursCap)
	v.SetDefault("weekend_days", []string{"saturday", "sunday"})
	v.SetDefault("monthly_rates.vacation", 0.0)
	v.SetDefault("monthly_rates.pto", 0.0)
	v.SetDefault("prior_year_carryover.vacation", 0.0)
	v.SetDefault("prior_year_carryover.pto", 0.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "vacation.db")

	v.SetEnvPrefix("VACATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Country == "" {
		return fmt.Errorf("country must be set")
	}
	if c.Year <= 0 {
		return fmt.Errorf("year must be positive, got %d", c.Year)
	}
	if c.WorkingHoursCap <= 0 {
		return fmt.Errorf("working_hours_cap must be positive, got %v", c.WorkingHoursCap)
	}
	for _, name := range c.WeekendDays {
		if _, err := parseWeekday(name); err != nil {
			return err
		}
	}
	return nil
}

// Core converts the loaded configuration into the record consumed by the
// calendar engine.
func (c *Config) Core() calendar.Config {
	weekend := make([]time.Weekday, 0, len(c.WeekendDays))
	for _, name := range c.WeekendDays {
		wd, _ := parseWeekday(name) // validated in Load
		weekend = append(weekend, wd)
	}
	return calendar.Config{
		Country:         c.Country,
		Subdivision:     c.Subdivision,
		Year:            c.Year,
		WorkingHoursCap: decimal.NewFromFloat(c.WorkingHoursCap),
		WeekendDays:     weekend,
		MonthlyRate: map[calendar.Category]decimal.Decimal{
			calendar.CategoryVacation: decimal.NewFromFloat(c.MonthlyRates.Vacation),
			calendar.CategoryPTO:      decimal.NewFromFloat(c.MonthlyRates.PTO),
		},
		PriorYearCarryover: map[calendar.Category]decimal.Decimal{
			calendar.CategoryVacation: decimal.NewFromFloat(c.Carryover.Vacation),
			calendar.CategoryPTO:      decimal.NewFromFloat(c.Carryover.PTO),
		},
	}
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("unknown weekday %q in weekend_days", name)
}
