package seeder

import "fmt"

// PhaseGraph orders phases so that every phase runs after the phases whose
// documents it references. Dependencies outside the graph are ignored: their
// documents are expected to exist already.
type PhaseGraph struct {
	deps  map[PhaseName][]PhaseName
	names []PhaseName
	order []PhaseName
}

func NewPhaseGraph() *PhaseGraph {
	return &PhaseGraph{deps: make(map[PhaseName][]PhaseName)}
}

func (g *PhaseGraph) AddPhase(name PhaseName, dependsOn ...PhaseName) {
	if _, ok := g.deps[name]; !ok {
		g.names = append(g.names, name)
	}
	g.deps[name] = append(g.deps[name], dependsOn...)
}

// BuildOrder returns a topological order. Ties keep insertion order.
func (g *PhaseGraph) BuildOrder() ([]PhaseName, error) {
	visited := make(map[PhaseName]bool)
	temp := make(map[PhaseName]bool)
	var order []PhaseName

	var visit func(PhaseName) error
	visit = func(name PhaseName) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving phase: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		for _, dep := range g.deps[name] {
			if _, inGraph := g.deps[dep]; !inGraph || dep == name {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	g.order = order
	return order, nil
}

func (g *PhaseGraph) Order() []PhaseName {
	return g.order
}
