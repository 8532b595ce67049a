package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrEnv,
		ErrTerm,
		ErrGit,
		ErrRender,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid config in ~/.config/shell_prompt.conf",
			suggestion: "Check the JSON syntax",
		},
		{
			name:       "env error",
			code:       ErrEnv,
			message:    "USER is not set",
			suggestion: "Export USER in your shell profile",
		},
		{
			name:       "term error",
			code:       ErrTerm,
			message:    "Cannot read terminal size",
			suggestion: "Pass --columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check shell_prompt.conf"),
			expectedParts: []string{"✗ Invalid configuration", "Check shell_prompt.conf"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrEnv, "HOME is not set", ""),
			expectedParts: []string{"HOME is not set"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, "Render failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrRender, wrapped.Code, "Wrap should default to ErrRender code")
	assert.Equal(t, "Render failed", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to read config", "Check the JSON syntax")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Check the JSON syntax", wrapped.Suggestion)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrGit))
	assert.True(t, IsCode(fmt.Errorf("outer: %w", err), ErrConfig))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestStack(t *testing.T) {
	err := New(ErrTerm, "size", "")

	stack := err.Stack()
	require.NotEmpty(t, stack)
	first := strings.SplitN(stack, "\n", 2)[0]
	assert.Contains(t, first, "TestStack", "innermost frame should be the caller of New")
	assert.Contains(t, stack, "errors_test.go:")
}

func TestStackOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", WrapWithCode(errors.New("x"), ErrEnv, "env", ""))

	assert.Contains(t, StackOf(err), "TestStackOf")
	assert.Empty(t, StackOf(errors.New("plain")))
	assert.Empty(t, (&Error{Message: "literal"}).Stack())
}
