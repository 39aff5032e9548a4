// Package pipename derives the named pipe a CMake debugger listens on.
package pipename

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/gofrs/uuid"
	"go.uber.org/config"
	"go.uber.org/fx"
)

//go:generate mockgen -destination=pipenamemock/pipename_mock.go -package=pipenamemock github.com/uber/dbgbroker/src/dbgbroker/internal/pipename Resolver

const (
	_configKeyDebugger = "debugger"

	_defaultPrefix      = "cmake-debugger-pipe"
	_windowsPipeRoot    = `\\.\pipe\`
	_windowsGOOS        = "windows"
	_errGeneratingUUID  = "generating pipe id: %w"
	_errReadingSettings = "getting config field %q: %w"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Resolver picks the transport address for a debug session.
type Resolver interface {
	// Resolve returns explicit when it is set and a freshly derived name otherwise.
	Resolve(explicit string) (string, error)
	// Derive returns a new pipe name that no other session uses.
	Derive() (string, error)
}

type settings struct {
	PipeDirectory string `yaml:"pipeDirectory"`
	PipePrefix    string `yaml:"pipePrefix"`
}

type resolver struct {
	directory string
	prefix    string
	goos      string
	newID     func() (uuid.UUID, error)
}

// Params define values to be used by Resolver.
type Params struct {
	fx.In

	Config config.Provider
}

// New creates a Resolver from the debugger config block.
func New(p Params) (Resolver, error) {
	var s settings
	if p.Config != nil {
		if err := p.Config.Get(_configKeyDebugger).Populate(&s); err != nil {
			return nil, fmt.Errorf(_errReadingSettings, _configKeyDebugger, err)
		}
	}

	return newResolver(s, runtime.GOOS, uuid.NewV4), nil
}

func newResolver(s settings, goos string, newID func() (uuid.UUID, error)) *resolver {
	r := &resolver{
		directory: s.PipeDirectory,
		prefix:    s.PipePrefix,
		goos:      goos,
		newID:     newID,
	}
	if r.prefix == "" {
		r.prefix = _defaultPrefix
	}
	if r.directory == "" && goos != _windowsGOOS {
		// CMake's pipe path length is limited on macOS, so stay in /tmp rather than $TMPDIR.
		r.directory = "/tmp"
	}
	return r
}

func (r *resolver) Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return r.Derive()
}

func (r *resolver) Derive() (string, error) {
	id, err := r.newID()
	if err != nil {
		return "", fmt.Errorf(_errGeneratingUUID, err)
	}

	if r.goos == _windowsGOOS {
		return _windowsPipeRoot + r.prefix + `\` + id.String(), nil
	}
	return filepath.Join(r.directory, fmt.Sprintf("%s-%s", r.prefix, id.String())), nil
}
