package resource

import (
	"errors"
	"fmt"
)

// ErrUnknownInventoryResource indicates an inventory override names a
// resource not present in the template.
var ErrUnknownInventoryResource = errors.New("resource: unknown inventory resource name")

// ErrNonPositiveInventoryValue indicates an inventory override supplied a
// zero or negative capacity.
var ErrNonPositiveInventoryValue = errors.New("resource: inventory override must be positive")

// InventoryOverrideError wraps the above sentinels with the offending
// resource name.
type InventoryOverrideError struct {
	Name string
	Err  error
}

func (e *InventoryOverrideError) Error() string {
	return fmt.Sprintf("resource: inventory override %q: %v", e.Name, e.Err)
}

func (e *InventoryOverrideError) Unwrap() error { return e.Err }
