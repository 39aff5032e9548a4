package errors

import "fmt"

// Message catalog keys for request validation failures.
const (
	KeyOnlyLaunchSupported  = "cmake.debug.only.launch.supported"
	KeyMustDefineDebugType  = "cmake.debug.must.define.debugType"
	KeyScriptRequiresPath   = "cmake.debug.script.requires.scriptPath"
	KeyExternalRequiresPipe = "cmake.debug.external.requires.pipeName"
)

// UnsupportedRequestKindError indicates a debug request other than "launch".
type UnsupportedRequestKindError struct {
	Request string
}

// Error is an implementation of the error interface.
func (e *UnsupportedRequestKindError) Error() string {
	return fmt.Sprintf("'cmake' debug type only supports the 'launch' request, got %q", e.Request)
}

// MessageKey implements Localizable.
func (e *UnsupportedRequestKindError) MessageKey() string { return KeyOnlyLaunchSupported }

// MessageArgs implements Localizable.
func (e *UnsupportedRequestKindError) MessageArgs() []interface{} { return nil }

// MissingDebugTypeError indicates that cmakeDebugType was not set.
type MissingDebugTypeError struct{}

// Error is an implementation of the error interface.
func (e *MissingDebugTypeError) Error() string {
	return "the 'cmake' debug type requires 'cmakeDebugType' to be one of 'configure', 'external' or 'script'"
}

// MessageKey implements Localizable.
func (e *MissingDebugTypeError) MessageKey() string { return KeyMustDefineDebugType }

// MessageArgs implements Localizable.
func (e *MissingDebugTypeError) MessageArgs() []interface{} { return nil }

// MissingScriptPathError indicates a script session without scriptPath.
type MissingScriptPathError struct{}

// Error is an implementation of the error interface.
func (e *MissingScriptPathError) Error() string {
	return "'cmakeDebugType' set to 'script' requires 'scriptPath'"
}

// MessageKey implements Localizable.
func (e *MissingScriptPathError) MessageKey() string { return KeyScriptRequiresPath }

// MessageArgs implements Localizable.
func (e *MissingScriptPathError) MessageArgs() []interface{} { return nil }

// MissingPipeNameError indicates an external session without pipeName.
type MissingPipeNameError struct{}

// Error is an implementation of the error interface.
func (e *MissingPipeNameError) Error() string {
	return "'cmakeDebugType' set to 'external' requires 'pipeName'"
}

// MessageKey implements Localizable.
func (e *MissingPipeNameError) MessageKey() string { return KeyExternalRequiresPipe }

// MessageArgs implements Localizable.
func (e *MissingPipeNameError) MessageArgs() []interface{} { return nil }
