// Package errors provides structured error handling for the chartview toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTransform indicates an invalid axis or unit transform operation,
	// typically a degenerate world range.
	KindTransform
	// KindLayout indicates a layout resolution error.
	KindLayout
	// KindConfig indicates a configuration loading error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the chartview toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "scale.NewAxisTransform").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error for the given operation.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf creates a structured error with a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
}
