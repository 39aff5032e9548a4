package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"github.com/uber/dbgbroker/src/dbgbroker/factory"
	"go.lsp.dev/jsonrpc2"
)

func TestRequestToSessionRequest(t *testing.T) {
	tests := []struct {
		name        string
		params      interface{}
		expected    *entity.SessionRequest
		errContains string
	}{
		{
			name: "configure",
			params: map[string]interface{}{
				"request":        "launch",
				"cmakeDebugType": "configure",
				"clean":          true,
				"configureAll":   true,
				"dapLog":         "file:///tmp/dap.log",
			},
			expected: &entity.SessionRequest{
				Request:      "launch",
				DebugType:    entity.DebugTypeConfigure,
				Clean:        true,
				ConfigureAll: true,
				DAPLog:       "/tmp/dap.log",
			},
		},
		{
			name: "script",
			params: map[string]interface{}{
				"request":        "launch",
				"cmakeDebugType": "script",
				"scriptPath":     "file:///ws/cmake/run.cmake",
				"scriptArgs":     []string{"-DX=1"},
				"scriptEnv": []map[string]string{
					{"name": "A", "value": "1"},
					{"name": "A", "value": "2"},
				},
			},
			expected: &entity.SessionRequest{
				Request:    "launch",
				DebugType:  entity.DebugTypeScript,
				ScriptPath: "/ws/cmake/run.cmake",
				ScriptArgs: []string{"-DX=1"},
				ScriptEnv:  []entity.EnvironmentVariable{{Name: "A", Value: "1"}, {Name: "A", Value: "2"}},
			},
		},
		{
			name: "external keeps plain paths",
			params: map[string]interface{}{
				"request":        "launch",
				"cmakeDebugType": "external",
				"pipeName":       "foo-pipe",
				"externalLaunch": true,
				"fromCommand":    true,
				"dapLog":         "relative/dap.log",
			},
			expected: &entity.SessionRequest{
				Request:        "launch",
				DebugType:      entity.DebugTypeExternal,
				PipeName:       "foo-pipe",
				ExternalLaunch: true,
				FromCommand:    true,
				DAPLog:         "relative/dap.log",
			},
		},
		{
			name:     "missing debug type is left for validation",
			params:   map[string]interface{}{"request": "attach"},
			expected: &entity.SessionRequest{Request: "attach"},
		},
		{
			name:        "unknown debug type",
			params:      map[string]interface{}{"request": "launch", "cmakeDebugType": "build"},
			errContains: `JSON RPC invalid params: unknown cmakeDebugType "build"`,
		},
		{
			name:        "malformed params",
			params:      []int{1, 2},
			errContains: "JSON RPC parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequestToSessionRequest(factory.JSONRPCRequest("debugger/resolveTransport", tt.params))
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSessionRequestToParams(t *testing.T) {
	t.Run("round trips through the wire form", func(t *testing.T) {
		req := &entity.SessionRequest{
			Request:     entity.RequestLaunch,
			DebugType:   entity.DebugTypeScript,
			PipeName:    "/tmp/cmake-debugger-pipe-1",
			FromCommand: true,
			ScriptPath:  "/ws/run.cmake",
		}
		got, err := ParamsToSessionRequest(SessionRequestToParams(req))
		require.NoError(t, err)
		assert.Equal(t, req, got)
	})

	t.Run("unset debug type is omitted", func(t *testing.T) {
		p := SessionRequestToParams(&entity.SessionRequest{Request: entity.RequestLaunch})
		assert.Empty(t, p.CMakeDebugType)
	})
}

func TestRequestToLaunchCommand(t *testing.T) {
	t.Run("configure", func(t *testing.T) {
		req := factory.JSONRPCRequest("debugger/configureWithDebugger", map[string]interface{}{
			"clean":  true,
			"dapLog": "file:///tmp/dap.log",
		})
		got, err := RequestToLaunchCommand(req, entity.DebugTypeConfigure)
		require.NoError(t, err)
		assert.Equal(t, &entity.LaunchCommand{
			DebugType: entity.DebugTypeConfigure,
			Clean:     true,
			DAPLog:    "/tmp/dap.log",
		}, got)
	})

	t.Run("no params", func(t *testing.T) {
		req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), "debugger/configureWithDebugger", nil)
		require.NoError(t, err)
		got, err := RequestToLaunchCommand(req, entity.DebugTypeConfigure)
		require.NoError(t, err)
		assert.Equal(t, &entity.LaunchCommand{DebugType: entity.DebugTypeConfigure}, got)
	})

	t.Run("script", func(t *testing.T) {
		req := factory.JSONRPCRequest("debugger/executeScriptWithDebugger", map[string]interface{}{
			"scriptPath": "/ws/run.cmake",
			"scriptArgs": []string{"a"},
			"scriptEnv":  []map[string]string{{"name": "K", "value": "V"}},
		})
		got, err := RequestToLaunchCommand(req, entity.DebugTypeScript)
		require.NoError(t, err)
		assert.Equal(t, &entity.LaunchCommand{
			DebugType:  entity.DebugTypeScript,
			ScriptPath: "/ws/run.cmake",
			ScriptArgs: []string{"a"},
			ScriptEnv:  []entity.EnvironmentVariable{{Name: "K", Value: "V"}},
		}, got)
	})

	t.Run("malformed params", func(t *testing.T) {
		req := factory.JSONRPCRequest("debugger/executeScriptWithDebugger", "nope")
		got, err := RequestToLaunchCommand(req, entity.DebugTypeScript)
		assert.ErrorContains(t, err, "JSON RPC parse error")
		assert.Nil(t, got)
	})
}

func TestLaunchCommandToSessionRequest(t *testing.T) {
	got := LaunchCommandToSessionRequest(&entity.LaunchCommand{
		DebugType:    entity.DebugTypeConfigure,
		Clean:        true,
		ConfigureAll: true,
		DAPLog:       "/tmp/dap.log",
	})
	assert.Equal(t, &entity.SessionRequest{
		Request:      entity.RequestLaunch,
		DebugType:    entity.DebugTypeConfigure,
		Clean:        true,
		ConfigureAll: true,
		DAPLog:       "/tmp/dap.log",
	}, got)
}
