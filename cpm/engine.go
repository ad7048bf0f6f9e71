package cpm

import (
	"github.com/lanedorian/schedcore/precedence"
	"github.com/lanedorian/schedcore/template"
)

// forwardRHS computes the earliest-constraint right-hand side an edge
// p->s of the given kind imposes on ES_s.
func forwardRHS(kind template.DependencyKind, efP, esP, durS int) int {
	switch kind {
	case template.FinishToStart:
		return efP
	case template.StartToStart:
		return esP
	case template.FinishToFinish:
		return efP - durS
	case template.StartToFinish:
		return esP - durS
	default:
		return efP
	}
}

// backwardBound computes the latest-constraint upper bound an edge p->t of
// the given kind imposes on LF_p.
func backwardBound(kind template.DependencyKind, lsT, lfT, durP, durT int) int {
	switch kind {
	case template.FinishToStart:
		return lsT
	case template.StartToStart:
		return lsT + durP
	case template.FinishToFinish:
		return lfT
	case template.StartToFinish:
		return lfT - durT + durP
	default:
		return lsT
	}
}

// Run executes the forward and backward CPM passes over g using order (a
// topological ordering of g's step ids, as produced by precedence.TopoSort)
// and the step durations in v. It always succeeds: cycles are rejected
// upstream by precedence.TopoSort before Run is ever called.
func Run(v *template.Validated, g *precedence.Graph, order []string) *Result {
	n := len(order)
	r := &Result{
		ES:         make(map[string]int, n),
		EF:         make(map[string]int, n),
		LS:         make(map[string]int, n),
		LF:         make(map[string]int, n),
		TotalFloat: make(map[string]int, n),
		Critical:   make(map[string]bool, n),
	}

	// Forward pass, in topological order.
	for _, id := range order {
		dur := v.StepByID[id].DurationMins
		es := 0
		for _, e := range g.Reverse[id] {
			rhs := forwardRHS(e.Kind, r.EF[e.From], r.ES[e.From], dur)
			if rhs > es {
				es = rhs
			}
		}
		r.ES[id] = es
		r.EF[id] = es + dur
		if r.EF[id] > r.Makespan {
			r.Makespan = r.EF[id]
		}
	}

	// Backward pass, in reverse topological order.
	for i := n - 1; i >= 0; i-- {
		id := order[i]
		dur := v.StepByID[id].DurationMins
		successors := g.Forward[id]
		var lf int
		if len(successors) == 0 {
			lf = r.Makespan
		} else {
			lf = -1
			for _, e := range successors {
				durT := v.StepByID[e.To].DurationMins
				bound := backwardBound(e.Kind, r.LS[e.To], r.LF[e.To], dur, durT)
				if lf == -1 || bound < lf {
					lf = bound
				}
			}
		}
		r.LF[id] = lf
		r.LS[id] = lf - dur
		r.TotalFloat[id] = r.LS[id] - r.ES[id]
		r.Critical[id] = r.TotalFloat[id] == 0
	}

	for _, id := range order {
		if r.Critical[id] {
			r.CriticalPathStepIDs = append(r.CriticalPathStepIDs, id)
		}
	}

	return r
}
