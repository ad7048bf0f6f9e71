package precedence

import (
	"sort"

	"github.com/lanedorian/schedcore/template"
)

// Edge is one precedence relation, predecessor -> successor, carrying the
// dependency kind the cpm package needs to pick the right constraint.
type Edge struct {
	From string
	To   string
	Kind template.DependencyKind
}

// Graph is a plain DAG keyed by step id: one forward adjacency list
// (predecessor -> its successor edges) and one reverse adjacency list
// (successor -> its predecessor edges). Neither map owns step records; both
// index into the *template.Validated arena the Graph was built from.
type Graph struct {
	StepIDs []string // sorted, for deterministic iteration
	Forward map[string][]Edge
	Reverse map[string][]Edge
}

// Build constructs a Graph from every step and dependency in v.
func Build(v *template.Validated) *Graph {
	g := &Graph{
		StepIDs: make([]string, 0, len(v.Template.Steps)),
		Forward: make(map[string][]Edge, len(v.Template.Steps)),
		Reverse: make(map[string][]Edge, len(v.Template.Steps)),
	}

	for _, s := range v.Template.Steps {
		g.StepIDs = append(g.StepIDs, s.ID)
		if _, ok := g.Forward[s.ID]; !ok {
			g.Forward[s.ID] = nil
		}
		if _, ok := g.Reverse[s.ID]; !ok {
			g.Reverse[s.ID] = nil
		}
	}
	sort.Strings(g.StepIDs)

	for _, s := range v.Template.Steps {
		for _, d := range s.Dependencies {
			e := Edge{From: d.PredecessorStepID, To: s.ID, Kind: d.Kind}
			g.Forward[e.From] = append(g.Forward[e.From], e)
			g.Reverse[e.To] = append(g.Reverse[e.To], e)
		}
	}

	for _, id := range g.StepIDs {
		sort.Slice(g.Forward[id], func(i, j int) bool { return g.Forward[id][i].To < g.Forward[id][j].To })
		sort.Slice(g.Reverse[id], func(i, j int) bool { return g.Reverse[id][i].From < g.Reverse[id][j].From })
	}

	return g
}

// Sources returns the step ids with no predecessors, sorted.
func (g *Graph) Sources() []string {
	var out []string
	for _, id := range g.StepIDs {
		if len(g.Reverse[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns the step ids with no successors, sorted.
func (g *Graph) Sinks() []string {
	var out []string
	for _, id := range g.StepIDs {
		if len(g.Forward[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}
