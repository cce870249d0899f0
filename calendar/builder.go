/*
builder.go - Full-year calendar construction

PURPOSE:

	Builds the annual day sequence: one CalendarDay per date from Jan 1 to
	Dec 31, annotated with weekend and public-holiday status and zeroed
	time-off hours. The holiday set comes from a pluggable HolidayProvider;
	the builder itself performs no I/O and is deterministic given identical
	inputs.

CONFIGURATION:

	Everything the builder needs arrives through the explicit Config value.
	There is no package-level "current year" or "country" state.
*/
package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// HolidayProvider resolves the set of public holidays for a country,
// subdivision and year. Implementations may be backed by a bundled rule
// table, a network service or a static fixture; the engine depends only on
// this contract.
type HolidayProvider interface {
	// Resolve returns holiday names keyed by date. It fails when the
	// country/subdivision pair is unrecognized or the data is unavailable.
	Resolve(country, subdivision string, year int) (map[Date]string, error)
}

// Build constructs the calendar for cfg.Year. Every date of the year is
// present exactly once, in chronological order, with weekend flags taken
// from cfg.Weekend() and holiday annotations from the provider.
func Build(cfg Config, provider HolidayProvider) (*Calendar, error) {
	holidays, err := provider.Resolve(cfg.Country, cfg.Subdivision, cfg.Year)
	if err != nil {
		return nil, &HolidaySourceError{
			Country:     cfg.Country,
			Subdivision: cfg.Subdivision,
			Year:        cfg.Year,
			Err:         err,
		}
	}

	weekend := make(map[time.Weekday]bool, 2)
	for _, wd := range cfg.Weekend() {
		weekend[wd] = true
	}

	start := NewDate(cfg.Year, time.January, 1)
	end := NewDate(cfg.Year, time.December, 31)

	days := make([]CalendarDay, 0, 366)
	for d := start; !d.After(end); d = d.AddDays(1) {
		name := holidays[d]
		days = append(days, CalendarDay{
			Date:          d,
			IsWeekend:     weekend[d.Weekday()],
			HolidayName:   name,
			IsHoliday:     name != "",
			VacationHours: decimal.Zero,
			PTOHours:      decimal.Zero,
		})
	}

	return &Calendar{
		Year:        cfg.Year,
		Country:     cfg.Country,
		Subdivision: cfg.Subdivision,
		Days:        days,
	}, nil
}
