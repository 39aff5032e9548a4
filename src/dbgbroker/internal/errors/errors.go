package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// Localizable is implemented by errors that carry a message catalog key.
type Localizable interface {
	error
	MessageKey() string
	MessageArgs() []interface{}
}

// IsBadRequest reports whether the error was caused by an invalid session request.
func IsBadRequest(e error) bool {
	var (
		unsupported *UnsupportedRequestKindError
		noType      *MissingDebugTypeError
		noScript    *MissingScriptPathError
		noPipe      *MissingPipeNameError
	)
	return stderr.As(e, &unsupported) || stderr.As(e, &noType) || stderr.As(e, &noScript) || stderr.As(e, &noPipe)
}

// AsLocalizable returns the first Localizable error in the chain.
func AsLocalizable(e error) (Localizable, bool) {
	var l Localizable
	if !stderr.As(e, &l) {
		return nil, false
	}
	return l, true
}
