package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []PhaseName, name PhaseName) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func TestBuildOrderRespectsDependencies(t *testing.T) {
	g := NewPhaseGraph()
	// deliberately listed dependents first
	for _, name := range []PhaseName{PhaseBookings, PhaseReviews, PhaseEvents, PhasePackages, PhaseClients, PhaseVendors, PhaseTags} {
		g.AddPhase(name, phases[name].dependsOn...)
	}

	order, err := g.BuildOrder()
	require.NoError(t, err)
	require.Len(t, order, 7)
	assert.Equal(t, order, g.Order())

	for _, name := range order {
		for _, dep := range phases[name].dependsOn {
			assert.Less(t, indexOf(order, dep), indexOf(order, name), "%s must run before %s", dep, name)
		}
	}
}

func TestBuildOrderKeepsInsertionOrderForIndependentPhases(t *testing.T) {
	g := NewPhaseGraph()
	g.AddPhase(PhaseTags)
	g.AddPhase(PhaseVendors)
	g.AddPhase(PhaseClients)

	order, err := g.BuildOrder()
	require.NoError(t, err)
	assert.Equal(t, []PhaseName{PhaseTags, PhaseVendors, PhaseClients}, order)
}

func TestBuildOrderIgnoresMissingDependencies(t *testing.T) {
	g := NewPhaseGraph()
	g.AddPhase(PhaseBookings, PhaseEvents, PhasePackages)

	order, err := g.BuildOrder()
	require.NoError(t, err)
	assert.Equal(t, []PhaseName{PhaseBookings}, order)
}

func TestBuildOrderDetectsCycle(t *testing.T) {
	g := NewPhaseGraph()
	g.AddPhase("a", "b")
	g.AddPhase("b", "a")

	_, err := g.BuildOrder()
	assert.ErrorContains(t, err, "circular dependency")
}
