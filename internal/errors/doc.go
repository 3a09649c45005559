// Package errors provides the sentinel errors returned by the notecipher
// commands.  Callers match them with errors.Is; the command layer wraps them
// with context using fmt.Errorf("...: %w", err).
//
// The cipher engine itself never returns errors: every string and every code
// is valid input.
package errors
