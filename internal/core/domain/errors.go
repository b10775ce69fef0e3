package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned from use cases and lookups.
var (
	ErrUnknownCode       = errors.New("unknown code")
	ErrMalformedResponse = errors.New("malformed response")
)

// UnknownCodeError is returned when a symbolic name or a wire code
// cannot be resolved inside a closed code set.
type UnknownCodeError struct {
	Set   string // set name, e.g. "heritage type"
	Value string // the name or code that failed to resolve
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown code: %q not found in %s set", e.Value, e.Set)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }

// MalformedResponseError is returned when the upstream XML cannot be
// parsed, a mandatory tag is missing, or a present date value does not
// match its wire layout. It is fatal for the request that produced it.
type MalformedResponseError struct {
	Reason string
	Err    error // underlying parse error, may be nil
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }

// NewMissingTagError reports a mandatory tag absent from a record element.
func NewMissingTagError(tag string) *MalformedResponseError {
	return &MalformedResponseError{Reason: fmt.Sprintf("mandatory tag <%s> is missing", tag)}
}
