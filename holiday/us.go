package holiday

import (
	"fmt"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/solari/vacation-engine/calendar"
)

var usFederal = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// UnitedStates resolves US federal holidays. When the observed date differs
// from the actual one (weekend holidays shifted to the nearest workday),
// both are reported, the shifted day suffixed with "(observed)".
type UnitedStates struct{}

// Resolve returns the federal holiday set for the year. Only the federal
// set is bundled, so a non-empty subdivision is an error.
func (UnitedStates) Resolve(_, subdivision string, year int) (map[calendar.Date]string, error) {
	if subdivision != "" {
		return nil, fmt.Errorf("US holidays are federal only, subdivision %q not supported", subdivision)
	}

	out := make(map[calendar.Date]string, len(usFederal)*2)
	for _, h := range usFederal {
		actual, observed := h.Calc(year)
		if actual.IsZero() {
			// Rule not in effect for this year (e.g. Juneteenth before 2021).
			continue
		}
		out[calendar.DateOf(actual)] = h.Name
		if !observed.IsZero() && !observed.Equal(actual) {
			out[calendar.DateOf(observed)] = h.Name + " (observed)"
		}
	}
	return out, nil
}
