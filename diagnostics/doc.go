// Package diagnostics implements the pre-solve validator: a
// dry pass that runs template.Validate and precedence.TopoSort, then
// enumerates advisory warnings without ever invoking the resource
// resolver. Validate never fails — it always returns a structured
// {Errors, Warnings} result, even when the template itself is invalid.
package diagnostics
