// Package errors provides the coded error type shared by the engine, the
// record stores and the HTTP boundary.
//
// A code travels with the error through Wrap, so the boundary can pick a
// status from whatever the innermost layer decided. Metadata rides along the
// same way and ends up in the response details and the log line.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error so the boundary can translate it
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument covers client input: non-positive amounts,
	// unknown damage or defense tokens, malformed defense pairs.
	CodeInvalidArgument Code = "invalid_argument"

	CodeNotFound Code = "not_found"

	// CodeInternal is a broken record invariant or a failing dependency.
	CodeInternal Code = "internal"

	// CodeUnavailable means the store gave up for now, e.g. optimistic-lock
	// retries ran out.
	CodeUnavailable Code = "unavailable"
)

// MetaFields is the metadata key holding per-field validation failures
const MetaFields = "fields"

type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithMeta sets key on the error's metadata and returns the error for chaining.
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 1)
	}
	e.Meta[key] = value
	return e
}

func newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err. A coded cause keeps its code and a copy of its
// metadata, so WithMeta on the wrapper never writes through to the cause.
// Anything else becomes CodeUnknown. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if c := asCoded(err); c != nil {
		wrapped.Code = c.Code
		wrapped.Meta = maps.Clone(c.Meta)
	}
	return wrapped
}

func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code forced to code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return &Error{Code: CodeNotFound, Message: message} }

func NotFoundf(format string, args ...any) *Error { return newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

func InvalidArgumentf(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error { return &Error{Code: CodeInternal, Message: message} }

func Internalf(format string, args ...any) *Error { return newf(CodeInternal, format, args...) }

func Unavailablef(format string, args ...any) *Error {
	return newf(CodeUnavailable, format, args...)
}

// asCoded finds the outermost *Error in err's chain
func asCoded(err error) *Error {
	var coded *Error
	if errors.As(err, &coded) {
		return coded
	}
	return nil
}

// GetCode returns the code of the outermost coded error in the chain, or
// CodeUnknown when there is none.
func GetCode(err error) Code {
	if c := asCoded(err); c != nil {
		return c.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost coded error in the chain
func GetMeta(err error) map[string]any {
	if c := asCoded(err); c != nil {
		return c.Meta
	}
	return nil
}

func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
