package errors

import (
	"fmt"
	"strings"
)

// Message catalog keys for CMake launch failures.
const (
	KeyDebuggerNotReady   = "cmake.debugger.not.ready"
	KeyVersionUnsupported = "cmake.version.unsupported"
)

// DebuggerNotReadyError indicates that CMake exited without ever listening on the debugger pipe.
type DebuggerNotReadyError struct {
	Args []string
}

// Error is an implementation of the error interface.
func (e *DebuggerNotReadyError) Error() string {
	if len(e.Args) == 0 {
		return "cmake exited before the debugger was ready"
	}
	return fmt.Sprintf("cmake exited before the debugger was ready: cmake %s", strings.Join(e.Args, " "))
}

// MessageKey implements Localizable.
func (e *DebuggerNotReadyError) MessageKey() string { return KeyDebuggerNotReady }

// MessageArgs implements Localizable.
func (e *DebuggerNotReadyError) MessageArgs() []interface{} { return nil }

// UnsupportedVersionError indicates a CMake binary older than the first release with a debugger.
type UnsupportedVersionError struct {
	Version string
	Minimum string
}

// Error is an implementation of the error interface.
func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("cmake %s does not support debugging, %s or newer is required", e.Version, e.Minimum)
}

// MessageKey implements Localizable.
func (e *UnsupportedVersionError) MessageKey() string { return KeyVersionUnsupported }

// MessageArgs implements Localizable.
func (e *UnsupportedVersionError) MessageArgs() []interface{} {
	return []interface{}{e.Version, e.Minimum}
}
