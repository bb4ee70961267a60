// Package validate cross-checks a specification against family constraints.
//
// Unlike the build path, which resolves codes, this package only inspects a
// finished specification (decoded from a plate, parsed from a model string,
// or produced by a build) and reports inconsistencies as structured
// diagnostics. It never mutates its inputs and has no side effects, so it
// can run on any goroutine against the shared master schema.
//
// An empty diagnostic list means the specification is fully consistent with
// the family; every model string accepted by the build path validates clean.
package validate
