package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrAlreadyResolved   = errors.New("already resolved")
	ErrDuplicateRating   = errors.New("duplicate rating")
	ErrNotEligible       = errors.New("not eligible")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// sanitize strips newlines from values before they are embedded in error
// messages, so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeValue(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitizeValue keeps numeric values as-is and strips newlines from strings.
func sanitizeValue(v any) any {
	if s, ok := v.(string); ok {
		return strings.ReplaceAll(s, "\n", " ")
	}
	return v
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError indicates that the status transition table rejects
// a current-to-target change for an entity. Administrative overrides receive
// this error too: the table binds everyone.
type InvalidTransitionError struct {
	EntityType string
	From       string
	To         string
}

func NewInvalidTransitionError(entityType, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityType: entityType, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidTransition, e.EntityType, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotAuthorizedError indicates that the acting actor lacks the participant,
// owner, or administrator role an operation requires.
type NotAuthorizedError struct {
	ActorID string
	Action  string
}

func NewNotAuthorizedError(actorID, action string) *NotAuthorizedError {
	return &NotAuthorizedError{ActorID: actorID, Action: action}
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: actor %s may not %s", ErrNotAuthorized, e.ActorID, e.Action)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// AlreadyResolvedError indicates an optimistic-concurrency conflict: the
// entity's status changed between the caller's read and the attempted write.
// EntityType tells the caller whether the order or the underlying item moved.
type AlreadyResolvedError struct {
	EntityType string
	ID         string
	Status     string
}

func NewAlreadyResolvedError(entityType, id, status string) *AlreadyResolvedError {
	return &AlreadyResolvedError{EntityType: entityType, ID: id, Status: status}
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: %s %s is already %s", ErrAlreadyResolved, e.EntityType, e.ID, e.Status)
}

func (e *AlreadyResolvedError) Unwrap() error {
	return ErrAlreadyResolved
}

// DuplicateRatingError indicates that the acting actor already rated this order.
type DuplicateRatingError struct {
	OrderID string
	RaterID string
}

func NewDuplicateRatingError(orderID, raterID string) *DuplicateRatingError {
	return &DuplicateRatingError{OrderID: orderID, RaterID: raterID}
}

func (e *DuplicateRatingError) Error() string {
	return fmt.Sprintf("%s: actor %s already rated order %s", ErrDuplicateRating, e.RaterID, e.OrderID)
}

func (e *DuplicateRatingError) Unwrap() error {
	return ErrDuplicateRating
}

// NotEligibleError indicates that rating preconditions do not hold, or that
// an actor outside an order asked for its counterpart.
type NotEligibleError struct {
	Reason string
}

func NewNotEligibleError(reason string) *NotEligibleError {
	return &NotEligibleError{Reason: reason}
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotEligible, e.Reason)
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

// StoreUnavailableError wraps a persistence or network failure from the
// external store. It is the only error kind callers may treat as transient
// and retry as-is.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Op)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

// Override stages identify which half of the status-write/audit-write pair
// failed during an administrative override.
const (
	OverrideStageStatus = "status"
	OverrideStageAudit  = "audit"
	OverrideStageCommit = "commit"
)

// OverrideError composes a failure of the atomic override pair. Stage tells
// the caller whether retrying the status write is safe: a failed status write
// means retry both halves, a failed audit write means the status change was
// rolled back and must not be reapplied blindly.
type OverrideError struct {
	Stage string
	Cause error
}

func NewOverrideError(stage string, cause error) *OverrideError {
	return &OverrideError{Stage: stage, Cause: cause}
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("override failed at %s stage: %s", e.Stage, e.Cause)
}

func (e *OverrideError) Unwrap() error {
	return e.Cause
}
