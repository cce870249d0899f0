package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/solari/vacation-engine/calendar"
)

// Italian national holidays. Names follow the labels used by the standard
// civil registers, e.g. Easter Sunday is "Pasqua di Resurrezione".
var italyNational = []*cal.Holiday{
	fixed("Capodanno", time.January, 1),
	fixed("Epifania del Signore", time.January, 6),
	easterOffset("Pasqua di Resurrezione", 0),
	easterOffset("Lunedì dell'Angelo", 1),
	fixed("Festa della Liberazione", time.April, 25),
	fixed("Festa dei Lavoratori", time.May, 1),
	fixed("Festa della Repubblica", time.June, 2),
	fixed("Assunzione della Vergine", time.August, 15),
	fixed("Tutti i Santi", time.November, 1),
	fixed("Immacolata Concezione", time.December, 8),
	fixed("Natale", time.December, 25),
	fixed("Santo Stefano", time.December, 26),
}

// Patron-saint days by province code. These are working-day exemptions only
// within the subdivision, so they are added on top of the national set.
var italyPatron = map[string]*cal.Holiday{
	"BO": fixed("San Petronio", time.October, 4),
	"FI": fixed("San Giovanni Battista", time.June, 24),
	"GE": fixed("San Giovanni Battista", time.June, 24),
	"MI": fixed("Sant'Ambrogio", time.December, 7),
	"NA": fixed("San Gennaro", time.September, 19),
	"PA": fixed("Santa Rosalia", time.July, 15),
	"RM": fixed("Santi Pietro e Paolo", time.June, 29),
	"TO": fixed("San Giovanni Battista", time.June, 24),
	"VE": fixed("San Marco", time.April, 25),
}

// Italy resolves Italian public holidays, optionally scoped to a province.
type Italy struct{}

// Resolve returns the holiday set for the year. An empty subdivision yields
// the national set; an unknown subdivision is an error.
func (Italy) Resolve(_, subdivision string, year int) (map[calendar.Date]string, error) {
	rules := make([]*cal.Holiday, 0, len(italyNational)+1)
	rules = append(rules, italyNational...)
	if subdivision != "" {
		patron, ok := italyPatron[strings.ToUpper(subdivision)]
		if !ok {
			return nil, fmt.Errorf("unknown IT subdivision %q", subdivision)
		}
		rules = append(rules, patron)
	}

	out := make(map[calendar.Date]string, len(rules))
	for _, h := range rules {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		out[calendar.DateOf(actual)] = h.Name
	}
	return out, nil
}

func fixed(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

// easterOffset defines a holiday relative to Easter Sunday (offset in days).
func easterOffset(name string, offset int) *cal.Holiday {
	return &cal.Holiday{
		Name:   name,
		Type:   cal.ObservanceReligious,
		Offset: offset,
		Func:   cal.CalcEasterOffset,
	}
}
