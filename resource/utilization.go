package resource

import "github.com/lanedorian/schedcore/template"

// Interval is one step's ignoring-contention demand window against a
// resource: the quantity it declares needing, placed at [0, durationMins)
// without regard to whether any other step's window could ever actually
// overlap it in a resolved schedule.
type Interval struct {
	StepID   string
	Quantity int
	Start    int
	End      int
}

// Profile is the ignoring-contention demand profile for one resource. It is
// deliberately distinct from the internal time profile Resolve builds:
// Profile never resolves placements or runs feasibility search, so it can
// be shared with callers — such as diagnostics' pre-solve warnings — that
// must compute a peak-demand proxy without invoking Resolve at all.
type Profile struct {
	v *template.Validated
}

// NewProfile builds a Profile over v.
func NewProfile(v *template.Validated) *Profile {
	return &Profile{v: v}
}

// Utilization returns every step's declared demand window against
// resourceID, in step order.
func (p *Profile) Utilization(resourceID string) []Interval {
	var out []Interval
	for i := range p.v.Template.Steps {
		s := &p.v.Template.Steps[i]
		for _, need := range s.ResourceNeeds {
			if need.ResourceID != resourceID {
				continue
			}
			out = append(out, Interval{StepID: s.ID, Quantity: need.Quantity, Start: 0, End: s.DurationMins})
		}
	}
	return out
}

// Peak returns the sum of every interval's quantity for resourceID: the
// worst-case demand a fully-overlapping schedule could produce.
func (p *Profile) Peak(resourceID string) int {
	sum := 0
	for _, iv := range p.Utilization(resourceID) {
		sum += iv.Quantity
	}
	return sum
}
