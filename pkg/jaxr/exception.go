package jaxr

import (
	"errors"
	"fmt"
	"sync"
)

const defaultErrorText = "jaxr: registry exception"

var (
	// ErrInvalidState marks an InitCause on an exception that already has a cause.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument marks an InitCause that names the exception as its own cause.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Exception is the failure surfaced by registry operations. The zero value
// is an exception with neither a reason nor a cause. Exceptions hold a lock
// and must be used by pointer, as returned by New, Wrap and FromCause.
type Exception struct {
	reason    string
	hasReason bool

	mu    sync.Mutex
	cause error
}

// New returns an exception with reason and no cause.
func New(reason string) *Exception {
	return &Exception{
		reason:    reason,
		hasReason: true,
	}
}

// Wrap returns an exception with reason whose cause is already attached.
func Wrap(reason string, cause error) *Exception {
	return &Exception{
		reason:    reason,
		hasReason: true,
		cause:     knownCause(cause),
	}
}

// FromCause builds an exception whose reason is the text of cause.
func FromCause(cause error) *Exception {
	cause = knownCause(cause)
	if cause == nil {
		return &Exception{}
	}

	return &Exception{
		reason:    cause.Error(),
		hasReason: true,
		cause:     cause,
	}
}

// InitCause attaches cause to e. It may succeed at most once per exception,
// and never for exceptions built with Wrap or FromCause and a non-nil cause.
// A nil cause records that the cause is unknown and leaves the slot free.
func (e *Exception) InitCause(cause error) (*Exception, error) {
	cause = knownCause(cause)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cause != nil {
		return e, fmt.Errorf("can't override cause: %w", ErrInvalidState)
	}
	if c, ok := cause.(*Exception); ok && c == e {
		return e, fmt.Errorf("self-causation not permitted: %w", ErrInvalidArgument)
	}

	e.cause = cause

	return e, nil
}

// Cause returns the attached cause, or nil when there is none.
func (e *Exception) Cause() error {
	if e == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Exception) Unwrap() error {
	return e.Cause()
}

// Message returns the reason of e or, when e has none, the message of its
// cause. It returns "" when neither is present.
func (e *Exception) Message() string {
	message, _ := e.message()
	return message
}

// HasMessage reports whether Message has a value, even an empty one.
func (e *Exception) HasMessage() bool {
	_, ok := e.message()
	return ok
}

// Error returns Message, or a fixed text when there is no message.
func (e *Exception) Error() string {
	if message, ok := e.message(); ok {
		return message
	}

	return defaultErrorText
}

func (e *Exception) message() (string, bool) {
	var seen map[*Exception]struct{}
	current := e
	for current != nil {
		if current.hasReason {
			return current.reason, true
		}

		cause := current.Cause()
		if cause == nil {
			return "", false
		}

		next, ok := cause.(*Exception)
		if !ok {
			return cause.Error(), true
		}
		if next == nil {
			return "", false
		}

		if seen == nil {
			seen = make(map[*Exception]struct{})
		}
		seen[current] = struct{}{}
		if _, loop := seen[next]; loop {
			return "", false
		}
		current = next
	}

	return "", false
}

// knownCause maps a nil *Exception held in an error to a plain nil.
func knownCause(cause error) error {
	if e, ok := cause.(*Exception); ok && e == nil {
		return nil
	}

	return cause
}
