// Package schedule assembles the final SolvedSchedule: it anchors relative
// minute offsets to wall-clock time when a template.TimeConstraint is
// present, and it exposes Solve, the public operation that wires
// template.Validate -> precedence.Build/TopoSort -> cpm.Run ->
// resource.Resolve -> anchoring into one call.
package schedule
