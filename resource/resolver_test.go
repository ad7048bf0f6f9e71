package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanedorian/schedcore/cpm"
	"github.com/lanedorian/schedcore/precedence"
	"github.com/lanedorian/schedcore/resource"
	"github.com/lanedorian/schedcore/template"
)

func solveCPM(t *testing.T, raw *template.Template) (*template.Validated, *precedence.Graph, []string, *cpm.Result) {
	t.Helper()
	v, errs := template.Validate(raw)
	require.Empty(t, errs)
	g := precedence.Build(v)
	order, err := precedence.TopoSort(g)
	require.NoError(t, err)
	r := cpm.Run(v, g, order)
	return v, g, order, r
}

// TestResolve_EquipmentContention exercises two steps contending for a single oven.
func TestResolve_EquipmentContention(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Resources: []template.Resource{
			{ID: "oven", Name: "Oven", Kind: template.Equipment, Capacity: 1},
		},
		Steps: []template.Step{
			{ID: "A", DurationMins: 15},
			{ID: "B", DurationMins: 90, Dependencies: []template.Dependency{{PredecessorStepID: "A"}},
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "oven", Quantity: 1}}},
			{ID: "P", DurationMins: 20},
			{ID: "Q", DurationMins: 40, Dependencies: []template.Dependency{{PredecessorStepID: "P"}},
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "oven", Quantity: 1}}},
		},
	})

	res, err := resource.Resolve(v, g, order, cr, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Placements["A"].StartOffset)
	assert.Equal(t, 15, res.Placements["B"].StartOffset)
	assert.Equal(t, 0, res.Placements["P"].StartOffset)
	assert.Equal(t, 105, res.Placements["Q"].StartOffset)

	require.Len(t, res.ResourceDelays, 1)
	assert.Equal(t, "Q", res.ResourceDelays[0].StepID)
	assert.Contains(t, res.ResourceDelays[0].ResourceIDs, "oven")
}

// TestResolve_PeopleCapacity exercises four two-person steps contending for a four-person capacity.
func TestResolve_PeopleCapacity(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Resources: []template.Resource{
			{ID: "people", Name: "People", Kind: template.People, Capacity: 4},
		},
		Steps: []template.Step{
			{ID: "A", DurationMins: 30, ResourceNeeds: []template.ResourceNeed{{ResourceID: "people", Quantity: 2}}},
			{ID: "B", DurationMins: 30, ResourceNeeds: []template.ResourceNeed{{ResourceID: "people", Quantity: 2}}},
			{ID: "C", DurationMins: 30, ResourceNeeds: []template.ResourceNeed{{ResourceID: "people", Quantity: 2}}},
			{ID: "D", DurationMins: 30, ResourceNeeds: []template.ResourceNeed{{ResourceID: "people", Quantity: 2}}},
		},
	})

	res, err := resource.Resolve(v, g, order, cr, nil)
	require.NoError(t, err)

	atZero, atThirty := 0, 0
	for _, id := range []string{"A", "B", "C", "D"} {
		switch res.Placements[id].StartOffset {
		case 0:
			atZero++
		case 30:
			atThirty++
		}
	}
	assert.Equal(t, 2, atZero)
	assert.Equal(t, 2, atThirty)
	assert.Equal(t, 60, res.Makespan)
}

// TestResolve_ConsumableOverrideShortfall exercises an inventory override that falls below total demand.
func TestResolve_ConsumableOverrideShortfall(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Resources: []template.Resource{
			{ID: "r", Name: "R", Kind: template.Consumable, Capacity: 100},
		},
		Steps: []template.Step{
			{ID: "A", DurationMins: 10, ResourceNeeds: []template.ResourceNeed{{ResourceID: "r", Quantity: 60}}},
			{ID: "B", DurationMins: 10, Dependencies: []template.Dependency{{PredecessorStepID: "A"}},
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "r", Quantity: 60}}},
		},
	})

	res, err := resource.Resolve(v, g, order, cr, map[string]int{"R": 80})
	require.NoError(t, err)
	require.Len(t, res.ConsumableShortfalls, 1)
	sf := res.ConsumableShortfalls[0]
	assert.Equal(t, 120, sf.Needed)
	assert.Equal(t, 80, sf.Available)
	assert.Equal(t, 40, sf.Shortfall)
	assert.Equal(t, 20, res.Makespan)
}

func TestResolve_InventoryOverrideUnknownName(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID:    "t",
		Steps: []template.Step{{ID: "A", DurationMins: 1}},
	})
	_, err := resource.Resolve(v, g, order, cr, map[string]int{"ghost": 5})
	require.Error(t, err)
}

func TestResolve_InventoryOverrideNonPositive(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Resources: []template.Resource{
			{ID: "r", Name: "R", Kind: template.Equipment, Capacity: 2},
		},
		Steps: []template.Step{{ID: "A", DurationMins: 1}},
	})
	_, err := resource.Resolve(v, g, order, cr, map[string]int{"R": 0})
	require.Error(t, err)
}

// TestResolve_ALAPNeverExtendsMakespan exercises the ALAP shift on a
// successor-less step and asserts it only moves later, never past the
// makespan the forward sweep already established.
func TestResolve_ALAPNeverExtendsMakespan(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Steps: []template.Step{
			{ID: "A", DurationMins: 60},
			{ID: "D", DurationMins: 60, TimingPolicy: template.Alap},
		},
	})

	res, err := resource.Resolve(v, g, order, cr, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, res.Makespan)
	assert.GreaterOrEqual(t, res.Placements["D"].StartOffset, 0)
}

// TestResolve_ALAPFindsSlotAbuttingReservationFromBelow exercises an
// Alap-policy step whose only feasible late start falls strictly between two
// resource-profile boundaries, not on one: P2 occupies the room over
// [100,150), and D (capacity-1 room, no successors, LS=120) can only be
// pushed as late as 70 — any later start collides with P2's reservation.
func TestResolve_ALAPFindsSlotAbuttingReservationFromBelow(t *testing.T) {
	v, g, order, cr := solveCPM(t, &template.Template{
		ID: "t",
		Resources: []template.Resource{
			{ID: "room", Name: "Room", Kind: template.Equipment, Capacity: 1},
		},
		Steps: []template.Step{
			{ID: "P1", DurationMins: 100},
			{ID: "P2", DurationMins: 50, Dependencies: []template.Dependency{{PredecessorStepID: "P1"}},
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "room", Quantity: 1}}},
			{ID: "D", DurationMins: 30, TimingPolicy: template.Alap,
				ResourceNeeds: []template.ResourceNeed{{ResourceID: "room", Quantity: 1}}},
		},
	})

	res, err := resource.Resolve(v, g, order, cr, nil)
	require.NoError(t, err)
	assert.Equal(t, 70, res.Placements["D"].StartOffset)
	assert.Equal(t, 100, res.Placements["D"].EndOffset)
}
