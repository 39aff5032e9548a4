package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebuggerNotReadyError(t *testing.T) {
	err := fmt.Errorf("configure: %w", &DebuggerNotReadyError{Args: []string{"-S", ".", "-B", "build"}})
	assert.EqualError(t, err, "configure: cmake exited before the debugger was ready: cmake -S . -B build")
	assert.False(t, IsBadRequest(err))

	l, ok := AsLocalizable(err)
	require.True(t, ok)
	assert.Equal(t, KeyDebuggerNotReady, l.MessageKey())
	assert.Empty(t, l.MessageArgs())

	assert.EqualError(t, &DebuggerNotReadyError{}, "cmake exited before the debugger was ready")
}

func TestUnsupportedVersionError(t *testing.T) {
	err := &UnsupportedVersionError{Version: "3.22.1", Minimum: "3.27.0"}
	assert.EqualError(t, err, "cmake 3.22.1 does not support debugging, 3.27.0 or newer is required")
	assert.Equal(t, KeyVersionUnsupported, err.MessageKey())
	assert.Equal(t, []interface{}{"3.22.1", "3.27.0"}, err.MessageArgs())
}
