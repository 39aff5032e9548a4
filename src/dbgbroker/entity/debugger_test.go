package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDebugType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    DebugType
		wantErr bool
	}{
		{name: "empty", value: "", want: DebugTypeUnset},
		{name: "configure", value: "configure", want: DebugTypeConfigure},
		{name: "script", value: "script", want: DebugTypeScript},
		{name: "external", value: "external", want: DebugTypeExternal},
		{name: "unknown", value: "attach", want: DebugTypeUnset, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDebugType(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			if tt.value != "" && !tt.wantErr {
				assert.Equal(t, tt.value, got.String())
			}
		})
	}
}

func TestConfigureMode(t *testing.T) {
	tests := []struct {
		clean bool
		all   bool
		want  ConfigureMode
		name  string
	}{
		{clean: false, all: false, want: ConfigureModeSingle, name: "configure"},
		{clean: false, all: true, want: ConfigureModeAll, name: "configureAll"},
		{clean: true, all: false, want: ConfigureModeCleanSingle, name: "cleanConfigure"},
		{clean: true, all: true, want: ConfigureModeCleanAll, name: "cleanConfigureAll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SessionRequest{Clean: tt.clean, ConfigureAll: tt.all}
			assert.Equal(t, tt.want, r.ConfigureMode())
			assert.Equal(t, tt.name, tt.want.String())
		})
	}
}

func TestScriptEnvironment(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		r := SessionRequest{ScriptEnv: []EnvironmentVariable{
			{Name: "A", Value: "1"},
			{Name: "B", Value: "x"},
			{Name: "A", Value: "2"},
		}}
		assert.Equal(t, map[string]string{"A": "2", "B": "x"}, r.ScriptEnvironment())
	})

	t.Run("empty", func(t *testing.T) {
		r := SessionRequest{}
		assert.Empty(t, r.ScriptEnvironment())
	})
}

func TestDebuggerIsReady(t *testing.T) {
	calls := 0
	info := &DebuggerInformation{Ready: func() { calls++ }}
	info.DebuggerIsReady()
	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() {
		(&DebuggerInformation{}).DebuggerIsReady()
		var nilInfo *DebuggerInformation
		nilInfo.DebuggerIsReady()
	})
}
