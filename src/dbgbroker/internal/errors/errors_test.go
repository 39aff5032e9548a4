package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBadRequest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unsupported request",
			err:  &UnsupportedRequestKindError{Request: "attach"},
			want: true,
		},
		{
			name: "missing debug type",
			err:  &MissingDebugTypeError{},
			want: true,
		},
		{
			name: "missing script path wrapped",
			err:  fmt.Errorf("resolving: %w", &MissingScriptPathError{}),
			want: true,
		},
		{
			name: "missing pipe name",
			err:  &MissingPipeNameError{},
			want: true,
		},
		{
			name: "not bad request",
			err:  New("cmake exited"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBadRequest(tt.err))
		})
	}
}

func TestAsLocalizable(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOK  bool
		wantKey string
	}{
		{
			name:    "unsupported request",
			err:     fmt.Errorf("outer: %w", &UnsupportedRequestKindError{Request: "attach"}),
			wantOK:  true,
			wantKey: KeyOnlyLaunchSupported,
		},
		{
			name:    "missing debug type",
			err:     &MissingDebugTypeError{},
			wantOK:  true,
			wantKey: KeyMustDefineDebugType,
		},
		{
			name:    "missing script path",
			err:     &MissingScriptPathError{},
			wantOK:  true,
			wantKey: KeyScriptRequiresPath,
		},
		{
			name:    "missing pipe name",
			err:     &MissingPipeNameError{},
			wantOK:  true,
			wantKey: KeyExternalRequiresPipe,
		},
		{
			name:   "plain error",
			err:    New("plain"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			l, ok := AsLocalizable(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantKey, l.MessageKey())
				assert.True(t, len(l.Error()) > 0)
			}
		})
	}
}

func TestUnsupportedRequestKindMessage(t *testing.T) {
	err := &UnsupportedRequestKindError{Request: "attach"}
	assert.Equal(t, `'cmake' debug type only supports the 'launch' request, got "attach"`, err.Error())
}
