// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
//   - Generic validation errors shared by value objects and commands:
//     ValueIsRequiredError, ValueIsInvalidError, ObjectNotFoundError.
//   - The engine's failure taxonomy, returned by domain aggregates and
//     command handlers: InsufficientAvailabilityError,
//     InvalidStateTransitionError, AlreadyClaimedError,
//     CapacityExceededError, OverPickError.
//
// Each error type follows the same pattern:
//
//   - A sentinel error variable (e.g. ErrInsufficientAvailability) that
//     callers match with errors.Is.
//   - A struct type carrying the failure details.
//   - Constructor functions, optionally with a cause.
//   - Error() for formatting and Unwrap() returning the sentinel.
//
// All operations that return these errors are transactional all-or-nothing:
// a returned error means persisted state is exactly as it was before the
// attempt.
package errs
