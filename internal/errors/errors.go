package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrEnv    = "ENV"
	ErrTerm   = "TERM"
	ErrGit    = "GIT"
	ErrRender = "RENDER"
)

// maxStackDepth bounds how many frames are captured per error.
const maxStackDepth = 32

// Error represents a structured error with code, message, suggestion, and optional cause.
// The rendered form is:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error

	pcs []uintptr
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		pcs:        callers(),
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrRender code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrRender,
		Message: message,
		Cause:   err,
		pcs:     callers(),
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
		pcs:        callers(),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Stack returns the call stack captured when the error was created,
// one "function\n\tfile:line" entry per frame, innermost first.
func (e *Error) Stack() string {
	if len(e.pcs) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.pcs)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var promptErr *Error
	if errors.As(err, &promptErr) {
		return promptErr.Code == code
	}
	return false
}

// StackOf returns the captured stack of the outermost structured error in
// err's chain, or an empty string when there is none.
func StackOf(err error) string {
	var promptErr *Error
	if errors.As(err, &promptErr) {
		return promptErr.Stack()
	}
	return ""
}

// callers skips runtime.Callers, callers and the constructor.
func callers() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}
