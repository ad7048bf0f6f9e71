package schedule

import (
	"fmt"
	"strings"
)

// String renders s deterministically: SolvedSteps is already sorted by
// start offset then step id, so no re-sorting is needed here.
func (s *SolvedSchedule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schedule.SolvedSchedule{template=%q, makespan=%d, critical=%v, steps=[",
		s.TemplateID, s.Summary.TotalDurationMins, s.Summary.CriticalPathStepIDs)
	for i, ss := range s.SolvedSteps {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s[%d,%d)", ss.StepID, ss.StartOffsetMins, ss.EndOffsetMins)
		if ss.IsCritical {
			b.WriteString("*")
		}
	}
	b.WriteString("]}")
	return b.String()
}

// GoString satisfies fmt.GoStringer so %#v renders the same readable form
// as String rather than the default nested-struct dump.
func (s *SolvedSchedule) GoString() string {
	return s.String()
}
