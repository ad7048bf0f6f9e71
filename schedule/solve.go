package schedule

import (
	"sort"

	"github.com/lanedorian/schedcore/cpm"
	"github.com/lanedorian/schedcore/precedence"
	"github.com/lanedorian/schedcore/resource"
	"github.com/lanedorian/schedcore/template"
)

// Solve is the public solve operation: it validates raw,
// builds the precedence graph, runs CPM, resolves resource feasibility, and
// anchors the result to wall-clock time if raw carries a TimeConstraint.
//
// On a validation failure it returns *InvalidTemplateError. On a precedence
// cycle it returns *precedence.CycleError. Resource pressure and consumable
// shortfalls never fail the solve — they surface as Warnings on the
// returned SolvedSchedule.
func Solve(raw *template.Template, inventory map[string]int) (*SolvedSchedule, error) {
	v, verrs := template.Validate(raw)
	if len(verrs) > 0 {
		return nil, &InvalidTemplateError{Errors: verrs}
	}

	g := precedence.Build(v)
	order, err := precedence.TopoSort(g)
	if err != nil {
		return nil, err
	}

	cr := cpm.Run(v, g, order)

	rr, err := resource.Resolve(v, g, order, cr, inventory)
	if err != nil {
		return nil, err
	}

	starts := make(map[string]int, len(order))
	ends := make(map[string]int, len(order))
	for id, p := range rr.Placements {
		starts[id] = p.StartOffset
		ends[id] = p.EndOffset
	}
	startTimes, endTimes := anchor(v.Template.TimeConstraint, rr.Makespan, starts, ends)

	steps := make([]SolvedStep, 0, len(order))
	for _, id := range order {
		p := rr.Placements[id]
		s := SolvedStep{
			StepID:            id,
			StartOffsetMins:   p.StartOffset,
			EndOffsetMins:     p.EndOffset,
			TotalFloatMins:    cr.TotalFloat[id],
			IsCritical:        cr.Critical[id],
			AssignedResources: p.Assignments,
		}
		if startTimes != nil {
			st := startTimes[id]
			s.StartTime = &st
		}
		if endTimes != nil {
			et := endTimes[id]
			s.EndTime = &et
		}
		steps = append(steps, s)
	}
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].StartOffsetMins != steps[j].StartOffsetMins {
			return steps[i].StartOffsetMins < steps[j].StartOffsetMins
		}
		return steps[i].StepID < steps[j].StepID
	})

	var warnings []Warning
	for i := range rr.ResourceDelays {
		warnings = append(warnings, Warning{ResourceDelay: &rr.ResourceDelays[i]})
	}
	for i := range rr.ConsumableShortfalls {
		warnings = append(warnings, Warning{ConsumableShortfall: &rr.ConsumableShortfalls[i]})
	}

	return &SolvedSchedule{
		TemplateID: v.Template.ID,
		SolvedSteps: steps,
		Summary: Summary{
			TotalDurationMins:   rr.Makespan,
			CriticalPathStepIDs: cr.CriticalPathStepIDs,
		},
		Warnings: warnings,
	}, nil
}
