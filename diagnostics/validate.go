package diagnostics

import (
	"fmt"
	"sort"

	"github.com/lanedorian/schedcore/cpm"
	"github.com/lanedorian/schedcore/precedence"
	"github.com/lanedorian/schedcore/resource"
	"github.com/lanedorian/schedcore/template"
)

// Validate runs the pre-solve diagnostics pass. It never
// returns a Go error: schema and graph problems are reported as entries in
// Result.Errors instead, so a caller always gets a structured result back.
func Validate(raw *template.Template) *Result {
	res := &Result{}

	v, verrs := template.Validate(raw)
	if len(verrs) > 0 {
		for _, ve := range verrs {
			res.Errors = append(res.Errors, ve.Error())
		}
		return res
	}

	g := precedence.Build(v)
	order, err := precedence.TopoSort(g)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	cr := cpm.Run(v, g, order)

	res.Warnings = append(res.Warnings, highUtilizationWarnings(v)...)
	res.Warnings = append(res.Warnings, impossibleBeforeDelayWarnings(v, cr)...)
	res.Warnings = append(res.Warnings, unreferencedResourceWarnings(v)...)
	res.Warnings = append(res.Warnings, unreferencedTrackWarnings(v)...)

	return res
}

// highUtilizationWarnings flags a renewable resource whose peak demand,
// ignoring contention, already equals its capacity: tight but feasible. The
// peak itself comes from resource.Profile, which never resolves an actual
// placement — only Peak/Utilization run here, never Resolve.
func highUtilizationWarnings(v *template.Validated) []string {
	var out []string
	prof := resource.NewProfile(v)
	for i := range v.Template.Resources {
		r := &v.Template.Resources[i]
		if !r.Kind.Renewable() {
			continue
		}
		peak := prof.Peak(r.ID)
		if peak == r.Capacity {
			out = append(out, fmt.Sprintf("HighUtilizationWarning: resource %q (%s) peaks at its full capacity of %d", r.ID, r.Name, r.Capacity))
		}
	}
	sort.Strings(out)
	return out
}

// impossibleBeforeDelayWarnings flags a critical step (zero total float)
// that also carries a renewable resource need: any resource contention,
// however small, has no slack budget to absorb and will extend the
// makespan.
func impossibleBeforeDelayWarnings(v *template.Validated, cr *cpm.Result) []string {
	var out []string
	for i := range v.Template.Steps {
		s := &v.Template.Steps[i]
		if cr.TotalFloat[s.ID] != 0 {
			continue
		}
		hasRenewableNeed := false
		for _, need := range s.ResourceNeeds {
			if r, ok := v.Resource(need.ResourceID); ok && r.Kind.Renewable() {
				hasRenewableNeed = true
				break
			}
		}
		if hasRenewableNeed {
			out = append(out, fmt.Sprintf("ImpossibleBeforeDelayWarning: step %q (%s) has no slack to absorb resource contention", s.ID, s.Title))
		}
	}
	sort.Strings(out)
	return out
}

func unreferencedResourceWarnings(v *template.Validated) []string {
	used := make(map[string]bool, len(v.Template.Resources))
	for i := range v.Template.Steps {
		for _, need := range v.Template.Steps[i].ResourceNeeds {
			used[need.ResourceID] = true
		}
	}
	var out []string
	for i := range v.Template.Resources {
		r := &v.Template.Resources[i]
		if !used[r.ID] {
			out = append(out, fmt.Sprintf("UnreferencedResourceWarning: resource %q (%s) is declared but needed by no step", r.ID, r.Name))
		}
	}
	sort.Strings(out)
	return out
}

func unreferencedTrackWarnings(v *template.Validated) []string {
	used := make(map[string]bool, len(v.Template.Tracks))
	for i := range v.Template.Steps {
		if tid := v.Template.Steps[i].TrackID; tid != "" {
			used[tid] = true
		}
	}
	var out []string
	for i := range v.Template.Tracks {
		tr := &v.Template.Tracks[i]
		if !used[tr.ID] {
			out = append(out, fmt.Sprintf("UnreferencedTrackWarning: track %q (%s) is declared but used by no step", tr.ID, tr.Name))
		}
	}
	sort.Strings(out)
	return out
}
