/*
Package holiday provides public-holiday sources for the calendar builder.

PURPOSE:

	Implements calendar.HolidayProvider on top of rickar/cal holiday rules.
	Each country is a separate provider; the Registry dispatches on the
	configured country code so the engine stays source-agnostic.

SUPPORTED COUNTRIES:

	IT  National holidays plus per-subdivision patron-saint days (italy.go)
	US  Federal holidays (us.go)

Additional sources (a network service, a static table) can be plugged in
through Register without touching the engine.
*/
package holiday

import (
	"fmt"
	"strings"

	"github.com/solari/vacation-engine/calendar"
)

// Provider resolves the holiday set for one country. It mirrors
// calendar.HolidayProvider so concrete sources can be used directly.
type Provider interface {
	Resolve(country, subdivision string, year int) (map[calendar.Date]string, error)
}

// Registry dispatches holiday resolution by country code.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry returns a registry with the bundled country providers.
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	r.Register("IT", Italy{})
	r.Register("US", UnitedStates{})
	return r
}

// Register adds or replaces the provider for a country code.
func (r *Registry) Register(country string, p Provider) {
	r.providers[strings.ToUpper(country)] = p
}

// Resolve implements calendar.HolidayProvider.
func (r *Registry) Resolve(country, subdivision string, year int) (map[calendar.Date]string, error) {
	p, ok := r.providers[strings.ToUpper(country)]
	if !ok {
		return nil, fmt.Errorf("no holiday source for country %q", country)
	}
	return p.Resolve(country, subdivision, year)
}

var _ calendar.HolidayProvider = (*Registry)(nil)
