package seeder

import (
	"testing"

	"github.com/Rana718/evseed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()
	require.NoError(t, p.Validate())
	assert.ElementsMatch(t, domain.Collections, p.Drop)

	vendors, ok := p.Phase(PhaseVendors)
	require.True(t, ok)
	assert.Equal(t, 10, vendors.Count)

	bookings, ok := p.Phase(PhaseBookings)
	require.True(t, ok)
	assert.Equal(t, LinkBatch, bookings.Link)
	assert.Len(t, p.Enabled(), 7)
}

func TestWithCounts(t *testing.T) {
	p := DefaultPlan()
	out, err := p.WithCounts(map[string]int{"events": 3})
	require.NoError(t, err)

	events, _ := out.Phase(PhaseEvents)
	assert.Equal(t, 3, events.Count)
	original, _ := p.Phase(PhaseEvents)
	assert.Equal(t, 25, original.Count, "original plan must not change")

	_, err = p.WithCounts(map[string]int{"invoices": 1})
	assert.Error(t, err)
}

func TestWithLinkMode(t *testing.T) {
	out := DefaultPlan().WithLinkMode(LinkEach)
	bookings, _ := out.Phase(PhaseBookings)
	assert.Equal(t, LinkEach, bookings.Link)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Plan)
	}{
		{"zero concurrency", func(p *Plan) { p.Concurrency = 0 }},
		{"unknown phase", func(p *Plan) { p.Phases = append(p.Phases, PhaseSpec{Name: "invoices"}) }},
		{"duplicate phase", func(p *Plan) { p.Phases = append(p.Phases, PhaseSpec{Name: PhaseTags}) }},
		{"zero count", func(p *Plan) { p.Phases[0].Count = 0 }},
		{"bad link mode", func(p *Plan) { p.Phases[5].Link = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPlan()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestValidateIgnoresDisabledCounts(t *testing.T) {
	p := DefaultPlan()
	p.Phases[0].Enabled = false
	p.Phases[0].Count = 0
	assert.NoError(t, p.Validate())
}

func TestParseLinkMode(t *testing.T) {
	mode, err := ParseLinkMode("each")
	require.NoError(t, err)
	assert.Equal(t, LinkEach, mode)

	_, err = ParseLinkMode("")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}
