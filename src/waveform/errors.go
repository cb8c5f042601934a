package waveform

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected user action.
type ErrorKind int

const (
	InvalidNumber ErrorKind = iota + 1
	InvalidRange
	InsufficientPoints
)

var (
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidRange       = errors.New("invalid range")
	ErrInsufficientPoints = errors.New("insufficient points")
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "InvalidNumber"
	case InvalidRange:
		return "InvalidRange"
	case InsufficientPoints:
		return "InsufficientPoints"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidNumber:
		return ErrInvalidNumber
	case InvalidRange:
		return ErrInvalidRange
	case InsufficientPoints:
		return ErrInsufficientPoints
	default:
		return nil
	}
}

// ValidationError reports which field was rejected and why.
// errors.Is matches it against the sentinel of its Kind.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s %q", e.Field, msg, e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the ErrorKind carried by err, or 0 when err is not a validation error.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}
