package seeder

import (
	"fmt"

	"github.com/Rana718/evseed/internal/domain"
)

type PhaseName string

const (
	PhaseClients  PhaseName = "clients"
	PhaseVendors  PhaseName = "vendors"
	PhaseTags     PhaseName = "tags"
	PhaseEvents   PhaseName = "events"
	PhasePackages PhaseName = "packages"
	PhaseBookings PhaseName = "bookings"
	PhaseReviews  PhaseName = "reviews"
)

// LinkMode selects how bookings are linked back to their events.
type LinkMode string

const (
	// LinkBatch inserts every booking first, then updates each event once.
	LinkBatch LinkMode = "batch"
	// LinkEach inserts and links bookings one by one, concurrently.
	LinkEach LinkMode = "each"
)

func ParseLinkMode(s string) (LinkMode, error) {
	switch LinkMode(s) {
	case LinkBatch, LinkEach:
		return LinkMode(s), nil
	default:
		return "", fmt.Errorf("%w: link mode %q", domain.ErrInvalidValue, s)
	}
}

type phaseInfo struct {
	collection string
	dependsOn  []PhaseName
}

var phases = map[PhaseName]phaseInfo{
	PhaseClients:  {collection: domain.CollectionUsers},
	PhaseVendors:  {collection: domain.CollectionVendors},
	PhaseTags:     {collection: domain.CollectionTags},
	PhaseEvents:   {collection: domain.CollectionEvents, dependsOn: []PhaseName{PhaseClients}},
	PhasePackages: {collection: domain.CollectionVendorPackages, dependsOn: []PhaseName{PhaseVendors, PhaseTags}},
	PhaseBookings: {collection: domain.CollectionBookings, dependsOn: []PhaseName{PhaseEvents, PhasePackages}},
	PhaseReviews:  {collection: domain.CollectionVendorReviews, dependsOn: []PhaseName{PhaseClients, PhasePackages}},
}

// PhaseSpec configures one phase. For packages Count is per vendor; tags
// ignore Count and always create one tag per tag name.
type PhaseSpec struct {
	Name    PhaseName `yaml:"name"`
	Enabled bool      `yaml:"enabled"`
	Count   int       `yaml:"count,omitempty"`
	Link    LinkMode  `yaml:"link,omitempty"`
}

// Plan is the full description of a seeding run.
type Plan struct {
	Drop        []string    `yaml:"drop"`
	Phases      []PhaseSpec `yaml:"phases"`
	Concurrency int         `yaml:"concurrency"`
}

// DefaultPlan is the compiled-in run configuration.
func DefaultPlan() Plan {
	return Plan{
		Drop: append([]string(nil), domain.Collections...),
		Phases: []PhaseSpec{
			{Name: PhaseClients, Enabled: true, Count: 10},
			{Name: PhaseVendors, Enabled: true, Count: 10},
			{Name: PhaseTags, Enabled: true},
			{Name: PhaseEvents, Enabled: true, Count: 25},
			{Name: PhasePackages, Enabled: true, Count: 2},
			{Name: PhaseBookings, Enabled: true, Count: 10, Link: LinkBatch},
			{Name: PhaseReviews, Enabled: true, Count: 20},
		},
		Concurrency: 4,
	}
}

func (p Plan) Phase(name PhaseName) (PhaseSpec, bool) {
	for _, ph := range p.Phases {
		if ph.Name == name {
			return ph, true
		}
	}
	return PhaseSpec{}, false
}

// WithCounts returns a copy of p with the given per-phase counts.
func (p Plan) WithCounts(counts map[string]int) (Plan, error) {
	out := p.clone()
	for name, count := range counts {
		found := false
		for i := range out.Phases {
			if string(out.Phases[i].Name) == name {
				out.Phases[i].Count = count
				found = true
			}
		}
		if !found {
			return Plan{}, fmt.Errorf("unknown seed phase: %s", name)
		}
	}
	return out, nil
}

// WithLinkMode returns a copy of p whose bookings phase uses mode.
func (p Plan) WithLinkMode(mode LinkMode) Plan {
	out := p.clone()
	for i := range out.Phases {
		if out.Phases[i].Name == PhaseBookings {
			out.Phases[i].Link = mode
		}
	}
	return out
}

func (p Plan) clone() Plan {
	return Plan{
		Drop:        append([]string(nil), p.Drop...),
		Phases:      append([]PhaseSpec(nil), p.Phases...),
		Concurrency: p.Concurrency,
	}
}

func (p Plan) Validate() error {
	if p.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", p.Concurrency)
	}

	seen := make(map[PhaseName]bool)
	for _, ph := range p.Phases {
		if _, ok := phases[ph.Name]; !ok {
			return fmt.Errorf("unknown seed phase: %s", ph.Name)
		}
		if seen[ph.Name] {
			return fmt.Errorf("seed phase listed twice: %s", ph.Name)
		}
		seen[ph.Name] = true

		if !ph.Enabled {
			continue
		}
		if ph.Name != PhaseTags && ph.Count < 1 {
			return fmt.Errorf("seed phase %s needs a positive count, got %d", ph.Name, ph.Count)
		}
		if ph.Name == PhaseBookings {
			if _, err := ParseLinkMode(string(ph.Link)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Enabled returns the enabled phases in plan order.
func (p Plan) Enabled() []PhaseSpec {
	var out []PhaseSpec
	for _, ph := range p.Phases {
		if ph.Enabled {
			out = append(out, ph)
		}
	}
	return out
}
