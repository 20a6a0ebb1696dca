// Package errs provides standardized error types for the order service.
// Every type unwraps to a sentinel so callers classify failures with errors.Is:
//
//   - ErrObjectNotFound: the order is absent, or it belongs to another user
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: bad caller input
//   - ErrInvalidTransition: a lifecycle status guard rejected the operation
//   - ErrVersionIsInvalid: a concurrent writer updated the order first
//   - ErrTransient: the store or network failed; retrying with the same input is safe
//
// Each error type follows the same pattern: a sentinel variable, a struct with
// detail fields, constructors with and without a cause, and Unwrap.
package errs
