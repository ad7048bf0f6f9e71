// Package template defines the declarative input model for the scheduling
// core: Template, Step, Dependency, ResourceNeed, Track, and Resource, plus
// the Validate entry point that turns a raw, caller-constructed Template into
// a Validated value or a list of structured ValidationError diagnostics.
//
// Validate normalizes defaults (dependencies=[], resourceNeeds=[], tracks=[],
// resources=[], timingPolicy=Asap, dependencyKind=FinishToStart), applies
// bounds (non-empty ids, durationMins>=1, capacity>=1, quantity>=1), and
// enforces referential integrity: every dependency's predecessor, every
// resource need's resource, and every step's track must reference an entity
// that exists in the same Template. A Template and its Validated form are
// immutable once returned — nothing downstream mutates them.
//
// Errors:
//
//	ErrEmptyID               - a step, resource, or track id is empty.
//	ErrDuplicateID           - two steps, resources, or tracks share an id.
//	ErrUnknownStep           - a dependency references a step that doesn't exist.
//	ErrUnknownResource       - a resource need references a resource that doesn't exist.
//	ErrUnknownTrack          - a step references a track that doesn't exist.
//	ErrSelfDependency        - a step depends on itself.
//	ErrConflictingConstraint - both startTime and endTime are set.
//	ErrBadDuration           - durationMins < 1.
//	ErrBadCapacity           - capacity < 1.
//	ErrBadQuantity           - quantity < 1.
package template
