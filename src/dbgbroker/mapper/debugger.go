package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
)

const _fileScheme = uri.FileScheme + "://"

// SessionRequestParams is the JSON-RPC form of a debug session request.
type SessionRequestParams struct {
	Request        string                       `json:"request"`
	CMakeDebugType string                       `json:"cmakeDebugType,omitempty"`
	PipeName       string                       `json:"pipeName,omitempty"`
	DAPLog         string                       `json:"dapLog,omitempty"`
	ExternalLaunch bool                         `json:"externalLaunch,omitempty"`
	FromCommand    bool                         `json:"fromCommand,omitempty"`
	Clean          bool                         `json:"clean,omitempty"`
	ConfigureAll   bool                         `json:"configureAll,omitempty"`
	ScriptPath     string                       `json:"scriptPath,omitempty"`
	ScriptArgs     []string                     `json:"scriptArgs,omitempty"`
	ScriptEnv      []entity.EnvironmentVariable `json:"scriptEnv,omitempty"`
}

// LaunchParams is the JSON-RPC form of an internal configure or script command.
type LaunchParams struct {
	Clean        bool                         `json:"clean,omitempty"`
	ConfigureAll bool                         `json:"configureAll,omitempty"`
	DAPLog       string                       `json:"dapLog,omitempty"`
	ScriptPath   string                       `json:"scriptPath,omitempty"`
	ScriptArgs   []string                     `json:"scriptArgs,omitempty"`
	ScriptEnv    []entity.EnvironmentVariable `json:"scriptEnv,omitempty"`
}

// RequestToSessionRequest decodes the params of a JSON-RPC request into a SessionRequest.
func RequestToSessionRequest(req jsonrpc2.Request) (*entity.SessionRequest, error) {
	var params SessionRequestParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return ParamsToSessionRequest(&params)
}

// ParamsToSessionRequest maps wire params onto a SessionRequest.
// File URIs in path fields are converted to local paths.
func ParamsToSessionRequest(p *SessionRequestParams) (*entity.SessionRequest, error) {
	debugType, err := entity.ParseDebugType(p.CMakeDebugType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jsonrpc2.ErrInvalidParams, err)
	}

	return &entity.SessionRequest{
		Request:        p.Request,
		DebugType:      debugType,
		PipeName:       p.PipeName,
		DAPLog:         toFilename(p.DAPLog),
		ExternalLaunch: p.ExternalLaunch,
		FromCommand:    p.FromCommand,
		Clean:          p.Clean,
		ConfigureAll:   p.ConfigureAll,
		ScriptPath:     toFilename(p.ScriptPath),
		ScriptArgs:     p.ScriptArgs,
		ScriptEnv:      p.ScriptEnv,
	}, nil
}

// SessionRequestToParams maps a SessionRequest onto its wire form.
func SessionRequestToParams(r *entity.SessionRequest) *SessionRequestParams {
	p := &SessionRequestParams{
		Request:        r.Request,
		PipeName:       r.PipeName,
		DAPLog:         r.DAPLog,
		ExternalLaunch: r.ExternalLaunch,
		FromCommand:    r.FromCommand,
		Clean:          r.Clean,
		ConfigureAll:   r.ConfigureAll,
		ScriptPath:     r.ScriptPath,
		ScriptArgs:     r.ScriptArgs,
		ScriptEnv:      r.ScriptEnv,
	}
	if r.DebugType != entity.DebugTypeUnset {
		p.CMakeDebugType = r.DebugType.String()
	}
	return p
}

// RequestToLaunchCommand decodes the params of a configure or script command.
func RequestToLaunchCommand(req jsonrpc2.Request, debugType entity.DebugType) (*entity.LaunchCommand, error) {
	var params LaunchParams
	if len(req.Params()) > 0 {
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return nil, wrapErrParse(err)
		}
	}

	return &entity.LaunchCommand{
		DebugType:    debugType,
		Clean:        params.Clean,
		ConfigureAll: params.ConfigureAll,
		DAPLog:       toFilename(params.DAPLog),
		ScriptPath:   toFilename(params.ScriptPath),
		ScriptArgs:   params.ScriptArgs,
		ScriptEnv:    params.ScriptEnv,
	}, nil
}

func toFilename(s string) string {
	if !strings.HasPrefix(s, _fileScheme) {
		return s
	}
	u, err := uri.Parse(s)
	if err != nil {
		return s
	}
	return u.Filename()
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
}

// LaunchCommandToSessionRequest builds the launch request an internal command stands for.
func LaunchCommandToSessionRequest(cmd *entity.LaunchCommand) *entity.SessionRequest {
	return &entity.SessionRequest{
		Request:      entity.RequestLaunch,
		DebugType:    cmd.DebugType,
		DAPLog:       cmd.DAPLog,
		Clean:        cmd.Clean,
		ConfigureAll: cmd.ConfigureAll,
		ScriptPath:   cmd.ScriptPath,
		ScriptArgs:   cmd.ScriptArgs,
		ScriptEnv:    cmd.ScriptEnv,
	}
}
