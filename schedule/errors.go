package schedule

import (
	"fmt"
	"strings"

	"github.com/lanedorian/schedcore/template"
)

// InvalidTemplateError wraps every template.ValidationError raised by C1,
// surfaced to the caller as the InvalidTemplate response kind.
type InvalidTemplateError struct {
	Errors []*template.ValidationError
}

func (e *InvalidTemplateError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		parts[i] = ve.Error()
	}
	return fmt.Sprintf("schedcore: invalid template: %s", strings.Join(parts, "; "))
}
