package astrochart

import (
	"errors"
	"fmt"
	"maps"
)

// ErrorCode classifies chart errors.
type ErrorCode string

const (
	CodeObjectNotSupported ErrorCode = "OBJECT_NOT_SUPPORTED"
	CodeHousesUnavailable  ErrorCode = "HOUSES_UNAVAILABLE"
	CodeProviderFailure    ErrorCode = "PROVIDER_FAILURE"
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
)

// Context keys attached to errors.
const (
	CtxObject    = "object"
	CtxCross     = "cross"
	CtxHouse     = "house"
	CtxOperation = "operation"
	CtxProvider  = "provider"
)

// Error is the error type returned by every fallible operation in this
// package. Provider failures keep the provider's error in Err.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]any
}

var (
	// ErrObjectNotSupported matches queries for an object outside the chart's set.
	ErrObjectNotSupported = &Error{Code: CodeObjectNotSupported, Message: "object not supported in this chart"}

	// ErrHousesUnavailable matches house or cross queries on a chart built without a location.
	ErrHousesUnavailable = &Error{Code: CodeHousesUnavailable, Message: "house positions are not available"}

	// ErrProviderFailure matches errors propagated from the ephemeris provider.
	ErrProviderFailure = &Error{Code: CodeProviderFailure, Message: "ephemeris provider failed"}

	// ErrInvalidInput matches malformed arguments and out-of-range enumerations.
	ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "invalid input"}
)

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, ErrHousesUnavailable) works for any houses error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext returns a copy of e with key set in its context map. e is
// left unchanged, so the package sentinels can be used as templates.
func (e *Error) WithContext(key string, value any) *Error {
	out := *e
	out.Context = make(map[string]any, len(e.Context)+1)
	maps.Copy(out.Context, e.Context)
	out.Context[key] = value
	return &out
}

// IsCode reports whether err, or anything it wraps, is an *Error with code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func objectNotSupported(o Object) *Error {
	return (&Error{
		Code:    CodeObjectNotSupported,
		Message: fmt.Sprintf("%s not supported in this chart", o),
	}).WithContext(CtxObject, o.String())
}

func housesUnavailable(op string) *Error {
	return (&Error{
		Code:    CodeHousesUnavailable,
		Message: "house positions are not available; build the chart with a location",
	}).WithContext(CtxOperation, op)
}

func providerFailure(provider, op string, err error) *Error {
	return (&Error{
		Code:    CodeProviderFailure,
		Message: op + " failed",
		Err:     err,
	}).WithContext(CtxProvider, provider)
}

func invalidInput(format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}
