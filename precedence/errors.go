package precedence

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGraphNil is returned when a nil *Graph is passed to TopoSort.
var ErrGraphNil = errors.New("precedence: graph is nil")

// CycleError reports a precedence cycle found during TopoSort. Cycle lists
// the step ids in order, closed (first id repeated as the last element);
// Error renders them joined by " -> ", e.g. "A -> B -> A".
type CycleError struct {
	Cycle []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("precedence: cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// IsCycleError reports whether err is a *CycleError, for callers that prefer
// a predicate over a type assertion.
func IsCycleError(err error) bool {
	_, ok := err.(*CycleError)
	return ok
}
