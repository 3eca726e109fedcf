// Package infoerrors provides structured error handling for frameinfo with
// error categorization, key-value context, and stack traces.
//
// Errors fall into a small set of categories that callers can branch on:
//
//	err := infoerrors.New(infoerrors.ErrorTypeValidation, "head must be >= 0").
//	    WithDetail("field", "head").
//	    WithDetail("value", -1)
//
//	if infoerrors.IsType(err, infoerrors.ErrorTypeValidation) {
//	    // bad configuration, not a bad table
//	}
//
// Stack traces are captured at error creation points. Error instances are not
// safe for concurrent modification; add details before sharing.
package infoerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType categorizes an error for handling strategies and diagnostics.
type ErrorType string

const (
	// ErrorTypeValidation represents option values outside their documented domain
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeType represents an input that is not a recognized table
	ErrorTypeType ErrorType = "type"
	// ErrorTypeData represents malformed or unreadable tabular data
	ErrorTypeData ErrorType = "data"
	// ErrorTypeFile represents file access failures
	ErrorTypeFile ErrorType = "file"
	// ErrorTypeInternal represents internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// Error is a structured error carrying a category, an optional cause,
// key-value details, and the call stack at the point of creation.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame is a single frame in the captured call stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface, including the category and cause.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. Chainable.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message, capturing the
// call stack at the point of creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new error with a formatted message.
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error, preserving it as the cause. If the error is
// already a structured Error its stack trace is preserved. Returns nil when
// err is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType reports whether err (or any error in its chain) is a structured
// Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// captureStack records the call stack up to maxFrames deep, skipping the
// given number of leading frames.
func captureStack(skip int) []StackFrame {
	const maxFrames = 16
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		name := "unknown"
		if fn != nil {
			name = fn.Name()
		}
		frames = append(frames, StackFrame{
			Function: name,
			File:     file,
			Line:     line,
		})
	}

	return frames
}
