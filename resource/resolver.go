package resource

import (
	"sort"

	"github.com/lanedorian/schedcore/cpm"
	"github.com/lanedorian/schedcore/precedence"
	"github.com/lanedorian/schedcore/template"
)

// maxSearchSteps bounds the earliest-feasible-slot search so a need whose
// quantity exceeds every available capacity (a template the validator
// cannot catch, since quantity and capacity are independently bounded)
// cannot spin forever; past this bound the step is placed at its last
// candidate time regardless of feasibility.
const maxSearchSteps = 100000

// Resolve runs the serial-schedule-generation algorithm over
// cr (the CPM result for order), applying inventory as a per-resource-name
// capacity override. It never aborts on resource pressure; it produces a
// feasible schedule by delay whenever every need's quantity fits its
// resource's capacity (see maxSearchSteps otherwise), recording warnings
// along the way.
func Resolve(v *template.Validated, g *precedence.Graph, order []string, cr *cpm.Result, inventory map[string]int) (*Result, error) {
	for name, val := range inventory {
		if val <= 0 {
			return nil, &InventoryOverrideError{Name: name, Err: ErrNonPositiveInventoryValue}
		}
	}
	matched := make(map[string]bool, len(inventory))
	for _, r := range v.Template.Resources {
		if _, ok := inventory[r.Name]; ok {
			matched[r.Name] = true
		}
	}
	for name := range inventory {
		if !matched[name] {
			return nil, &InventoryOverrideError{Name: name, Err: ErrUnknownInventoryResource}
		}
	}

	profiles := make(map[string]*profile)
	capacities := make(map[string]int)
	consumableNeeded := make(map[string]int)
	for i := range v.Template.Resources {
		r := &v.Template.Resources[i]
		cap, _ := capacityFor(r, inventory)
		capacities[r.ID] = cap
		if r.Kind.Renewable() {
			profiles[r.ID] = &profile{}
		}
	}

	placements := make(map[string]Placement, len(order))
	res := &Result{Placements: placements}

	eventOrder := append([]string(nil), order...)
	sort.SliceStable(eventOrder, func(i, j int) bool {
		a, b := eventOrder[i], eventOrder[j]
		if cr.ES[a] != cr.ES[b] {
			return cr.ES[a] < cr.ES[b]
		}
		if cr.Critical[a] != cr.Critical[b] {
			return cr.Critical[a] // critical before non-critical
		}
		polA, polB := v.StepByID[a].TimingPolicy, v.StepByID[b].TimingPolicy
		if polA != polB {
			return polA < polB // Asap(0) before Alap(1)
		}
		return a < b
	})

	for _, id := range eventOrder {
		step := v.StepByID[id]
		dur := step.DurationMins

		lower := cr.ES[id]
		for _, e := range g.Reverse[id] {
			var esP, efP int
			if p, ok := placements[e.From]; ok {
				esP, efP = p.StartOffset, p.EndOffset
			} else {
				esP, efP = cr.ES[e.From], cr.EF[e.From]
			}
			rhs := forwardRHSFor(e.Kind, efP, esP, dur)
			if rhs > lower {
				lower = rhs
			}
		}

		for _, need := range step.ResourceNeeds {
			r := v.ResourceByID[need.ResourceID]
			if !r.Kind.Renewable() {
				consumableNeeded[r.ID] += need.Quantity
			}
		}

		t := earliestFeasible(lower, dur, step.ResourceNeeds, v, profiles, capacities)

		var assignments []Assignment
		var blockingResources []string
		for _, need := range step.ResourceNeeds {
			r := v.ResourceByID[need.ResourceID]
			assignments = append(assignments, Assignment{ResourceID: r.ID, QuantityUsed: need.Quantity})
			if r.Kind.Renewable() {
				profiles[r.ID].add(t, t+dur, need.Quantity)
				blockingResources = append(blockingResources, r.ID)
			}
		}

		placements[id] = Placement{StepID: id, StartOffset: t, EndOffset: t + dur, Assignments: assignments}

		if t > cr.LS[id] {
			res.ResourceDelays = append(res.ResourceDelays, ResourceDelayWarning{
				StepID:      id,
				StepTitle:   step.Title,
				ResourceIDs: blockingResources,
			})
		}
	}

	for _, p := range placements {
		if p.EndOffset > res.Makespan {
			res.Makespan = p.EndOffset
		}
	}

	applyALAP(v, g, order, cr, placements, profiles, capacities)
	for _, p := range placements {
		if p.EndOffset > res.Makespan {
			res.Makespan = p.EndOffset
		}
	}

	for i := range v.Template.Resources {
		r := &v.Template.Resources[i]
		if r.Kind.Renewable() {
			continue
		}
		needed := consumableNeeded[r.ID]
		cap := capacities[r.ID]
		if needed > cap {
			res.ConsumableShortfalls = append(res.ConsumableShortfalls, ConsumableShortfallWarning{
				ResourceID:   r.ID,
				ResourceName: r.Name,
				Available:    cap,
				Needed:       needed,
				Shortfall:    needed - cap,
			})
		}
	}

	sort.Slice(res.ResourceDelays, func(i, j int) bool { return res.ResourceDelays[i].StepID < res.ResourceDelays[j].StepID })
	sort.Slice(res.ConsumableShortfalls, func(i, j int) bool {
		return res.ConsumableShortfalls[i].ResourceID < res.ConsumableShortfalls[j].ResourceID
	})

	return res, nil
}

// forwardRHSFor mirrors cpm's unexported forwardRHS; duplicated at this
// scope rather than exported from cpm, since it is an internal step of the
// placement search, not part of the CPM pass itself.
func forwardRHSFor(kind template.DependencyKind, efP, esP, durS int) int {
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

// earliestFeasible finds the smallest t >= lower such that every renewable
// need of the step fits over [t, t+dur).
func earliestFeasible(lower, dur int, needs []template.ResourceNeed, v *template.Validated, profiles map[string]*profile, capacities map[string]int) int {
	t := lower
	for step := 0; step < maxSearchSteps; step++ {
		ok := true
		next := -1
		for _, need := range needs {
			r := v.ResourceByID[need.ResourceID]
			if !r.Kind.Renewable() {
				continue
			}
			p := profiles[r.ID]
			if !p.feasible(t, dur, need.Quantity, capacities[r.ID]) {
				ok = false
				nb := p.nextBoundaryAfter(t)
				if nb != -1 && (next == -1 || nb < next) {
					next = nb
				}
			}
		}
		if ok {
			return t
		}
		if next == -1 || next <= t {
			next = t + 1
		}
		t = next
	}
	return t
}

// applyALAP shifts every Alap-policy step as late as possible without
// violating an outgoing edge constraint against an already-placed
// successor or any renewable resource profile, walking steps in reverse
// topological order so every successor is already finalized.
func applyALAP(v *template.Validated, g *precedence.Graph, order []string, cr *cpm.Result, placements map[string]Placement, profiles map[string]*profile, capacities map[string]int) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		step := v.StepByID[id]
		if step.TimingPolicy != template.Alap {
			continue
		}
		cur := placements[id]
		dur := step.DurationMins

		upper := cr.LS[id]
		for _, e := range g.Forward[id] {
			succ := placements[e.To]
			durSucc := v.StepByID[e.To].DurationMins
			bound := upperBoundFromSuccessor(e.Kind, succ.StartOffset, dur, durSucc)
			if bound < upper {
				upper = bound
			}
		}
		if upper < cur.StartOffset {
			upper = cur.StartOffset
		}

		// Lift the step's own reservations before probing new slots.
		for _, a := range cur.Assignments {
			if p, ok := profiles[a.ResourceID]; ok {
				p.remove(cur.StartOffset, cur.EndOffset, a.QuantityUsed)
			}
		}

		best := cur.StartOffset
		for _, t := range candidateStarts(cur.StartOffset, upper, dur, cur.Assignments, profiles) {
			if t < cur.StartOffset || t > upper {
				continue
			}
			if feasibleForAll(t, dur, cur.Assignments, profiles, capacities) {
				best = t
				break
			}
		}

		for _, a := range cur.Assignments {
			if p, ok := profiles[a.ResourceID]; ok {
				p.add(best, best+dur, a.QuantityUsed)
			}
		}
		placements[id] = Placement{StepID: id, StartOffset: best, EndOffset: best + dur, Assignments: cur.Assignments}
	}
}

func upperBoundFromSuccessor(kind template.DependencyKind, esSucc, durS, durSucc int) int {
	switch kind {
	case template.FinishToStart:
		return esSucc - durS
	case template.StartToStart:
		return esSucc
	case template.FinishToFinish:
		return esSucc - durS + durSucc
	case template.StartToFinish:
		return esSucc + durSucc
	default:
		return esSucc - durS
	}
}

// candidateStarts enumerates every start time within [lo, hi] worth probing
// for a dur-length window: the window bounds themselves, every raw
// allocation boundary in range, and boundary-dur for each boundary b — the
// point where the step's own [t, t+dur) window abuts b from below rather
// than starting exactly on it. Without that second form, a step can miss a
// later-but-still-feasible start that lands between two boundaries.
func candidateStarts(lo, hi, dur int, assignments []Assignment, profiles map[string]*profile) []int {
	seen := map[int]struct{}{}
	var out []int
	add := func(v int) {
		if v < lo || v > hi {
			return
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	add(hi)
	for _, a := range assignments {
		if p, ok := profiles[a.ResourceID]; ok {
			for _, b := range p.boundariesBetween(lo, hi) {
				add(b)
				add(b - dur)
			}
		}
	}
	add(lo)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func feasibleForAll(t, dur int, assignments []Assignment, profiles map[string]*profile, capacities map[string]int) bool {
	for _, a := range assignments {
		p, ok := profiles[a.ResourceID]
		if !ok {
			continue
		}
		if !p.feasible(t, dur, a.QuantityUsed, capacities[a.ResourceID]) {
			return false
		}
	}
	return true
}
