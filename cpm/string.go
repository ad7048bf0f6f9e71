package cpm

import (
	"fmt"
	"sort"
	"strings"
)

// String renders r deterministically (step ids sorted) for legible test
// failures and debug logging.
func (r *Result) String() string {
	ids := make([]string, 0, len(r.ES))
	for id := range r.ES {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "cpm.Result{makespan=%d, criticalPath=%v, steps=[", r.Makespan, r.CriticalPathStepIDs)
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s{ES=%d EF=%d LS=%d LF=%d float=%d critical=%t}",
			id, r.ES[id], r.EF[id], r.LS[id], r.LF[id], r.TotalFloat[id], r.Critical[id])
	}
	b.WriteString("]}")
	return b.String()
}

// GoString satisfies fmt.GoStringer so %#v renders the same readable form
// as String rather than the default struct dump of four parallel maps.
func (r *Result) GoString() string {
	return r.String()
}
