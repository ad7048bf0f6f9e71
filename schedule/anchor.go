package schedule

import "github.com/lanedorian/schedcore/template"

// anchor computes, for every step id in offsets (start, end pairs in
// minutes), the wall-clock start/end implied by constraint.
// When constraint is nil, anchor returns nil maps and every step's
// StartTime/EndTime stay unset.
//
// Forward anchoring (startTime=T0) sets startTime_s = T0 + startOffset_s.
// Backward anchoring (endTime=T1) computes a virtual T0 = T1 - makespan and
// anchors forward from there, so the two modes share one code path.
func anchor(constraint *template.TimeConstraint, makespan int, starts, ends map[string]int) (map[string]template.LocalDateTime, map[string]template.LocalDateTime) {
	if constraint == nil {
		return nil, nil
	}

	var t0 template.LocalDateTime
	switch {
	case constraint.StartTime != nil:
		t0 = *constraint.StartTime
	case constraint.EndTime != nil:
		t0 = constraint.EndTime.AddMinutes(-makespan)
	default:
		return nil, nil
	}

	startTimes := make(map[string]template.LocalDateTime, len(starts))
	endTimes := make(map[string]template.LocalDateTime, len(ends))
	for id, off := range starts {
		startTimes[id] = t0.AddMinutes(off)
	}
	for id, off := range ends {
		endTimes[id] = t0.AddMinutes(off)
	}
	return startTimes, endTimes
}
