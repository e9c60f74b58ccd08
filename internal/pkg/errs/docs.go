// Package errs provides standardized error types for the exchange application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two groups of error types live here. Generic validation errors used by
// constructors and repositories:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// And domain error kinds, one per user-visible failure of the exchange
// lifecycle:
//   - InvalidTransitionError: the status transition table rejects the change
//   - NotAuthorizedError: the actor is not a required participant/owner/admin
//   - AlreadyResolvedError: the state changed since the caller's last read
//   - DuplicateRatingError: the rater already rated the order
//   - NotEligibleError: rating preconditions do not hold
//   - StoreUnavailableError: the persistence collaborator failed (retryable)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrAlreadyResolved)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// No component swallows errors: every operation returns one of these kinds,
// and the HTTP adapter maps each kind to a distinct response. Only
// StoreUnavailableError may be treated as transient and retried as-is.
package errs
