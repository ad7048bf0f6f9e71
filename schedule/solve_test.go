package schedule_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanedorian/schedcore/schedule"
	"github.com/lanedorian/schedcore/template"
)

func TestSolve_LinearChain(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}}},
			{ID: "C", DurationMins: 10, Dependencies: []template.Dependency{{PredecessorStepID: "B"}}},
			{ID: "D", DurationMins: 5, Dependencies: []template.Dependency{{PredecessorStepID: "C"}}},
		},
	}

	s, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Summary.TotalDurationMins)
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{
		s.SolvedSteps[0].StepID, s.SolvedSteps[1].StepID, s.SolvedSteps[2].StepID, s.SolvedSteps[3].StepID,
	})
	for _, ss := range s.SolvedSteps {
		assert.True(t, ss.IsCritical)
		assert.Equal(t, 0, ss.TotalFloatMins)
	}
}

// TestSolve_BackwardAnchoring exercises a deadline anchored backward through a linear chain.
func TestSolve_BackwardAnchoring(t *testing.T) {
	end := template.LocalDateTime{Year: 2026, Month: 3, Day: 1, Hour: 19, Minute: 0}
	raw := &template.Template{
		ID:             "trip",
		TimeConstraint: &template.TimeConstraint{EndTime: &end},
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}}},
			{ID: "C", DurationMins: 10, Dependencies: []template.Dependency{{PredecessorStepID: "B"}}},
			{ID: "D", DurationMins: 5, Dependencies: []template.Dependency{{PredecessorStepID: "C"}}},
		},
	}

	s, err := schedule.Solve(raw, nil)
	require.NoError(t, err)

	byID := map[string]schedule.SolvedStep{}
	for _, ss := range s.SolvedSteps {
		byID[ss.StepID] = ss
	}
	require.NotNil(t, byID["D"].EndTime)
	assert.Equal(t, "2026-03-01T19:00", byID["D"].EndTime.String())
	require.NotNil(t, byID["A"].StartTime)
	assert.Equal(t, "2026-03-01T17:00", byID["A"].StartTime.String())
}

// TestSolve_ALAPDinner exercises an Alap-policy step pinned against a deadline.
func TestSolve_ALAPDinner(t *testing.T) {
	end := template.LocalDateTime{Year: 2026, Month: 3, Day: 1, Hour: 21, Minute: 0}
	raw := &template.Template{
		ID:             "trip",
		TimeConstraint: &template.TimeConstraint{EndTime: &end},
		Steps: []template.Step{
			{ID: "sightsee", DurationMins: 120},
			{ID: "dinner", DurationMins: 60, TimingPolicy: template.Alap,
				Dependencies: []template.Dependency{{PredecessorStepID: "sightsee"}}},
		},
	}

	s, err := schedule.Solve(raw, nil)
	require.NoError(t, err)

	byID := map[string]schedule.SolvedStep{}
	for _, ss := range s.SolvedSteps {
		byID[ss.StepID] = ss
	}
	require.NotNil(t, byID["dinner"].StartTime)
	assert.Equal(t, "2026-03-01T20:00", byID["dinner"].StartTime.String())
}

func TestSolve_Deterministic(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}}},
		},
	}

	s1, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	s2, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestSolve_StringIsDeterministic(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}}},
		},
	}

	s1, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	s2, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, s1.String(), s2.String())
	assert.Equal(t, s1.String(), s1.GoString())
	assert.Contains(t, s1.String(), "A[0,15)*")
	assert.Contains(t, s1.String(), "B[15,105)*")
}

// TestSolve_JSONRoundTripIdempotence exercises the other half of the
// determinism property: marshaling a template to JSON and reloading it
// produces a template that solves to the same SolvedSteps as the original,
// not merely a template object that solve(T) == solve(T) on its own.
func TestSolve_JSONRoundTripIdempotence(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Resources: []template.Resource{
			{ID: "room", Name: "Room", Kind: template.Equipment, Capacity: 1},
		},
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}},
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "room", Quantity: 1}}},
			{ID: "D", DurationMins: 30, TimingPolicy: template.Alap,
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "room", Quantity: 1}}},
		},
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(raw)
	require.NoError(t, err)

	var reloaded template.Template
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &reloaded))

	original, err := schedule.Solve(raw, nil)
	require.NoError(t, err)
	roundTripped, err := schedule.Solve(&reloaded, nil)
	require.NoError(t, err)

	assert.Equal(t, original.SolvedSteps, roundTripped.SolvedSteps)
}

func TestSolve_InvalidTemplate(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Steps: []template.Step{
			{ID: "A", DurationMins: 0},
		},
	}
	_, err := schedule.Solve(raw, nil)
	require.Error(t, err)
	_, ok := err.(*schedule.InvalidTemplateError)
	assert.True(t, ok)
}

func TestSolve_CycleError(t *testing.T) {
	raw := &template.Template{
		ID: "trip",
		Steps: []template.Step{
			{ID: "A", DurationMins: 1, Dependencies: []template.Dependency{{PredecessorStepID: "B"}}},
			{ID: "B", DurationMins: 1, Dependencies: []template.Dependency{{PredecessorStepID: "A"}}},
		},
	}
	_, err := schedule.Solve(raw, nil)
	require.Error(t, err)
}
