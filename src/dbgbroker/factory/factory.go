package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// ConfigureRequest is a factory for a launch request of the configure debug type.
func ConfigureRequest(clean, all bool) *entity.SessionRequest {
	return &entity.SessionRequest{
		Request:      entity.RequestLaunch,
		DebugType:    entity.DebugTypeConfigure,
		Clean:        clean,
		ConfigureAll: all,
	}
}

// ScriptRequest is a factory for a launch request of the script debug type.
func ScriptRequest(path string, args []string, env ...entity.EnvironmentVariable) *entity.SessionRequest {
	return &entity.SessionRequest{
		Request:    entity.RequestLaunch,
		DebugType:  entity.DebugTypeScript,
		ScriptPath: path,
		ScriptArgs: args,
		ScriptEnv:  env,
	}
}

// ExternalRequest is a factory for a launch request attaching to an already running debuggee.
func ExternalRequest(pipeName string) *entity.SessionRequest {
	return &entity.SessionRequest{
		Request:   entity.RequestLaunch,
		DebugType: entity.DebugTypeExternal,
		PipeName:  pipeName,
	}
}
