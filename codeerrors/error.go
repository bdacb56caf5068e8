package codeerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error carries a machine-readable code next to a human message.
// Two Errors match under errors.Is when their codes are equal.
type Error struct {
	Code    string
	Message string
	Reason  error
}

// Error implements standard error interface
func (e Error) Error() string {
	if e.Reason != nil {
		return e.Reason.Error()
	}
	return e.Message + " (code=" + e.Code + ")"
}

// Cause implements errors.Causer
func (e Error) Cause() error {
	return e.Reason
}

// Unwrap provides compatibility with Go 1.13+ error chains
func (e Error) Unwrap() error {
	return e.Reason
}

// Is consults Go1.13+ errors.Is
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.Code == t.Code
	case *Error:
		return t != nil && e.Code == t.Code
	}
	return false
}

// WithMessage returns an error with formatted message
func (e Error) WithMessage(msg string, args ...interface{}) Error {
	e.Message = fmt.Sprintf(msg, args...)
	return e
}

// WithReason returns cloned error with given reason
func (e Error) WithReason(err error) Error {
	e.Reason = err
	return e
}

// Wrap returns cloned error with given reason appended to the existing one
func (e Error) Wrap(err error) error {
	if e.Reason == nil {
		e.Reason = err
	} else {
		e.Reason = errors.Wrap(err, e.Reason.Error())
	}
	return e
}

// CodeOf returns the code of the first Error found in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var cerr Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}
