package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template validation. Callers branch on these via
// errors.Is; ValidationError additionally carries the offending path.
var (
	// ErrEmptyID indicates a step, resource, or track has an empty id.
	ErrEmptyID = errors.New("template: id is empty")

	// ErrDuplicateID indicates two entities of the same kind share an id.
	ErrDuplicateID = errors.New("template: duplicate id")

	// ErrUnknownStep indicates a dependency references a step that doesn't exist.
	ErrUnknownStep = errors.New("template: unknown predecessor step")

	// ErrUnknownResource indicates a resource need references an undeclared resource.
	ErrUnknownResource = errors.New("template: unknown resource")

	// ErrUnknownTrack indicates a step references an undeclared track.
	ErrUnknownTrack = errors.New("template: unknown track")

	// ErrSelfDependency indicates a step depends on itself.
	ErrSelfDependency = errors.New("template: step depends on itself")

	// ErrConflictingConstraint indicates both startTime and endTime are set.
	ErrConflictingConstraint = errors.New("template: startTime and endTime are mutually exclusive")

	// ErrBadDuration indicates durationMins < 1.
	ErrBadDuration = errors.New("template: durationMins must be >= 1")

	// ErrBadCapacity indicates capacity < 1.
	ErrBadCapacity = errors.New("template: capacity must be >= 1")

	// ErrBadQuantity indicates quantity < 1.
	ErrBadQuantity = errors.New("template: quantity must be >= 1")

	// ErrEmptyTemplateID indicates the Template itself has an empty id.
	ErrEmptyTemplateID = errors.New("template: template id is empty")
)

// ValidationError is one structured diagnostic produced by Validate. Path
// follows JSON-pointer spelling (e.g. "/steps/2/dependencies/0/predecessorStepId")
// so a caller can locate the offending field.
type ValidationError struct {
	PathValue string
	Err       error
}

// Path returns the JSON-pointer path to the offending field.
func (e *ValidationError) Path() string { return e.PathValue }

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.PathValue, e.Err)
}

// Unwrap allows errors.Is(err, ErrXxx) against the underlying sentinel.
func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(path string, err error) *ValidationError {
	return &ValidationError{PathValue: path, Err: err}
}
