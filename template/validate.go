package template

import "fmt"

// Validated is a Template that has passed Validate: defaults normalized,
// referential integrity enforced, and indexed for O(1) lookup by the
// downstream precedence, cpm, resource, and schedule packages. It is
// immutable — nothing in this module mutates a Validated value after
// Validate returns it.
type Validated struct {
	Template

	StepByID     map[string]*Step
	ResourceByID map[string]*Resource
	TrackByID    map[string]*Track
}

// Step returns the validated step with the given id, or false if absent.
func (v *Validated) Step(id string) (*Step, bool) {
	s, ok := v.StepByID[id]
	return s, ok
}

// Resource returns the validated resource with the given id, or false if absent.
func (v *Validated) Resource(id string) (*Resource, bool) {
	r, ok := v.ResourceByID[id]
	return r, ok
}

// Validate normalizes defaults and checks every schema and referential
// integrity invariant against raw. On success it returns a *Validated and a nil error slice. On
// any failure it returns a nil *Validated and the full list of
// ValidationErrors found — Validate does not stop at the first error, so a
// caller sees every problem in one pass.
func Validate(raw *Template) (*Validated, []*ValidationError) {
	var errs []*ValidationError
	if raw == nil {
		return nil, []*ValidationError{newValidationError("", fmt.Errorf("template: nil template"))}
	}

	if raw.ID == "" {
		errs = append(errs, newValidationError("/id", ErrEmptyTemplateID))
	}

	v := &Validated{
		Template:     *raw,
		StepByID:     make(map[string]*Step, len(raw.Steps)),
		ResourceByID: make(map[string]*Resource, len(raw.Resources)),
		TrackByID:    make(map[string]*Track, len(raw.Tracks)),
	}

	// Tracks: unique, non-empty ids.
	for i := range v.Template.Tracks {
		t := &v.Template.Tracks[i]
		path := fmt.Sprintf("/tracks/%d/id", i)
		if t.ID == "" {
			errs = append(errs, newValidationError(path, ErrEmptyID))
			continue
		}
		if _, dup := v.TrackByID[t.ID]; dup {
			errs = append(errs, newValidationError(path, ErrDuplicateID))
			continue
		}
		v.TrackByID[t.ID] = t
	}

	// Resources: unique, non-empty ids; capacity >= 1.
	for i := range v.Template.Resources {
		r := &v.Template.Resources[i]
		idPath := fmt.Sprintf("/resources/%d/id", i)
		if r.ID == "" {
			errs = append(errs, newValidationError(idPath, ErrEmptyID))
			continue
		}
		if _, dup := v.ResourceByID[r.ID]; dup {
			errs = append(errs, newValidationError(idPath, ErrDuplicateID))
			continue
		}
		if r.Capacity < 1 {
			errs = append(errs, newValidationError(fmt.Sprintf("/resources/%d/capacity", i), ErrBadCapacity))
		}
		v.ResourceByID[r.ID] = r
	}

	// Steps: unique, non-empty ids; normalize defaults; duration >= 1.
	for i := range v.Template.Steps {
		s := &v.Template.Steps[i]
		idPath := fmt.Sprintf("/steps/%d/id", i)
		if s.ID == "" {
			errs = append(errs, newValidationError(idPath, ErrEmptyID))
			continue
		}
		if _, dup := v.StepByID[s.ID]; dup {
			errs = append(errs, newValidationError(idPath, ErrDuplicateID))
			continue
		}
		if s.DurationMins < 1 {
			errs = append(errs, newValidationError(fmt.Sprintf("/steps/%d/durationMins", i), ErrBadDuration))
		}
		if s.Dependencies == nil {
			s.Dependencies = []Dependency{}
		}
		if s.ResourceNeeds == nil {
			s.ResourceNeeds = []ResourceNeed{}
		}
		// TimingPolicy already defaults to Asap (zero value).
		v.StepByID[s.ID] = s
	}

	// Second pass: referential integrity, now that every id is indexed.
	for i := range v.Template.Steps {
		s := &v.Template.Steps[i]
		if s.TrackID != "" {
			if _, ok := v.TrackByID[s.TrackID]; !ok {
				errs = append(errs, newValidationError(fmt.Sprintf("/steps/%d/trackId", i), ErrUnknownTrack))
			}
		}
		// Collapse exact duplicates (same predecessor AND kind); distinct
		// kinds on the same endpoint pair are kept and left to the cpm
		// package's per-kind max/min dispatch.
		seen := make(map[string]struct{}, len(s.Dependencies))
		deduped := s.Dependencies[:0]
		for j, d := range s.Dependencies {
			depPath := fmt.Sprintf("/steps/%d/dependencies/%d", i, j)
			if d.PredecessorStepID == s.ID {
				errs = append(errs, newValidationError(depPath+"/predecessorStepId", ErrSelfDependency))
				continue
			}
			if _, ok := v.StepByID[d.PredecessorStepID]; !ok {
				errs = append(errs, newValidationError(depPath+"/predecessorStepId", ErrUnknownStep))
				continue
			}
			key := fmt.Sprintf("%s|%d", d.PredecessorStepID, d.Kind)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			deduped = append(deduped, d)
		}
		s.Dependencies = deduped

		for j := range s.ResourceNeeds {
			need := &s.ResourceNeeds[j]
			needPath := fmt.Sprintf("/steps/%d/resourceNeeds/%d", i, j)
			if _, ok := v.ResourceByID[need.ResourceID]; !ok {
				errs = append(errs, newValidationError(needPath+"/resourceId", ErrUnknownResource))
			}
			if need.Quantity < 1 {
				errs = append(errs, newValidationError(needPath+"/quantity", ErrBadQuantity))
			}
		}
	}

	if v.Template.TimeConstraint != nil {
		tc := v.Template.TimeConstraint
		if tc.StartTime != nil && tc.EndTime != nil {
			errs = append(errs, newValidationError("/timeConstraint", ErrConflictingConstraint))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return v, nil
}
