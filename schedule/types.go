package schedule

import (
	"github.com/lanedorian/schedcore/resource"
	"github.com/lanedorian/schedcore/template"
)

// SolvedStep is one step's resolved timing and resource assignment.
type SolvedStep struct {
	StepID            string                 `json:"stepId"`
	StartOffsetMins   int                    `json:"startOffsetMins"`
	EndOffsetMins     int                    `json:"endOffsetMins"`
	TotalFloatMins    int                    `json:"totalFloatMins"`
	IsCritical        bool                   `json:"isCritical"`
	AssignedResources []resource.Assignment  `json:"assignedResources,omitempty"`

	// StartTime and EndTime are non-nil only when the template carried a
	// TimeConstraint.
	StartTime *template.LocalDateTime `json:"startTime,omitempty"`
	EndTime   *template.LocalDateTime `json:"endTime,omitempty"`
}

// Summary aggregates the solved schedule's headline numbers.
type Summary struct {
	TotalDurationMins   int      `json:"totalDurationMins"`
	CriticalPathStepIDs []string `json:"criticalPathStepIds"`
}

// Warning is the advisory payload accompanying a successful solve. Exactly
// one of ResourceDelay / ConsumableShortfall is non-nil.
type Warning struct {
	ResourceDelay       *resource.ResourceDelayWarning       `json:"resourceDelay,omitempty"`
	ConsumableShortfall *resource.ConsumableShortfallWarning `json:"consumableShortfall,omitempty"`
}

// SolvedSchedule is the output of Solve.
type SolvedSchedule struct {
	TemplateID  string       `json:"templateId"`
	SolvedSteps []SolvedStep `json:"solvedSteps"`
	Summary     Summary      `json:"summary"`
	Warnings    []Warning    `json:"warnings,omitempty"`
}
