package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config is broken", "Fix the config")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config is broken", err.Message)
	assert.Equal(t, "Fix the config", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrState, "Something failed", ""),
			contains: []string{"✗ Something failed"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrState, "Something failed", "Try this instead"),
			contains: []string{"✗ Something failed", "Try this instead"},
		},
		{
			name:     "message, cause, and suggestion",
			err:      WrapWithCode(fmt.Errorf("underlying problem"), ErrState, "Something failed", "Try this instead"),
			contains: []string{"✗ Something failed", "underlying problem", "Try this instead"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestWrap_DefaultsToStateCode(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(cause, "Couldn't read the index")

	assert.Equal(t, ErrState, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := WrapWithCode(cause, ErrCLI, "wrapper", "")

	require.NotNil(t, err.Unwrap())
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrMachineNotFound, "no such machine", ""),
			code: ErrMachineNotFound,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrMachineNotFound, "no such machine", ""),
			code: ErrNoMatch,
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("outer: %w", New(ErrProviderConflict, "conflict", "")),
			code: ErrProviderConflict,
			want: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: ErrConfig,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrConfig,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}
