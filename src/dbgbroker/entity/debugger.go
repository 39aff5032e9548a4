// Package entity contains the domain types for the dbgbroker service.
package entity

import "fmt"

// RequestLaunch is the only debug request kind the broker serves.
const RequestLaunch = "launch"

// DebugType selects how the debuggee is started.
type DebugType int

const (
	// DebugTypeUnset indicates that the request did not name a debug type.
	DebugTypeUnset DebugType = iota
	// DebugTypeConfigure debugs a CMake configure run.
	DebugTypeConfigure
	// DebugTypeScript debugs a CMake script run with `cmake -P`.
	DebugTypeScript
	// DebugTypeExternal attaches to a CMake process started outside of the broker.
	DebugTypeExternal
)

var _debugTypeNames = map[DebugType]string{
	DebugTypeConfigure: "configure",
	DebugTypeScript:    "script",
	DebugTypeExternal:  "external",
}

// String implements fmt.Stringer.
func (t DebugType) String() string {
	if name, ok := _debugTypeNames[t]; ok {
		return name
	}
	return "unset"
}

// ParseDebugType maps a wire value onto a DebugType. An empty value maps to DebugTypeUnset.
func ParseDebugType(s string) (DebugType, error) {
	if s == "" {
		return DebugTypeUnset, nil
	}
	for t, name := range _debugTypeNames {
		if name == s {
			return t, nil
		}
	}
	return DebugTypeUnset, fmt.Errorf("unknown cmakeDebugType %q", s)
}

// ConfigureMode is one cell of the clean x configure-all matrix.
type ConfigureMode int

const (
	// ConfigureModeSingle configures the active project.
	ConfigureModeSingle ConfigureMode = iota
	// ConfigureModeAll configures every known project.
	ConfigureModeAll
	// ConfigureModeCleanSingle cleans and then configures the active project.
	ConfigureModeCleanSingle
	// ConfigureModeCleanAll cleans and then configures every known project.
	ConfigureModeCleanAll
)

// NewConfigureMode derives the mode from the request flags.
func NewConfigureMode(clean bool, all bool) ConfigureMode {
	switch {
	case clean && all:
		return ConfigureModeCleanAll
	case clean:
		return ConfigureModeCleanSingle
	case all:
		return ConfigureModeAll
	default:
		return ConfigureModeSingle
	}
}

// String implements fmt.Stringer.
func (m ConfigureMode) String() string {
	switch m {
	case ConfigureModeSingle:
		return "configure"
	case ConfigureModeAll:
		return "configureAll"
	case ConfigureModeCleanSingle:
		return "cleanConfigure"
	case ConfigureModeCleanAll:
		return "cleanConfigureAll"
	}
	return fmt.Sprintf("ConfigureMode(%d)", int(m))
}

// EnvironmentVariable is a single name/value pair of a script environment.
type EnvironmentVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SessionRequest is a debug session request as received from the IDE.
type SessionRequest struct {
	Request   string    `json:"request" zap:"request"`
	DebugType DebugType `json:"-" zap:"debugType"`
	PipeName  string    `json:"pipeName,omitempty" zap:"pipeName"`
	DAPLog    string    `json:"dapLog,omitempty" zap:"dapLog"`
	// ExternalLaunch reports that the debuggee runs in a process the broker cannot configure.
	ExternalLaunch bool `json:"externalLaunch,omitempty" zap:"externalLaunch"`
	// FromCommand is set when an internal command already started the debuggee.
	FromCommand bool `json:"fromCommand,omitempty" zap:"fromCommand"`

	Clean        bool `json:"clean,omitempty" zap:"clean"`
	ConfigureAll bool `json:"configureAll,omitempty" zap:"configureAll"`

	ScriptPath string                `json:"scriptPath,omitempty" zap:"scriptPath"`
	ScriptArgs []string              `json:"scriptArgs,omitempty" zap:"-"`
	ScriptEnv  []EnvironmentVariable `json:"scriptEnv,omitempty" zap:"-"`
}

// ConfigureMode returns the matrix cell selected by Clean and ConfigureAll.
func (r *SessionRequest) ConfigureMode() ConfigureMode {
	return NewConfigureMode(r.Clean, r.ConfigureAll)
}

// ScriptEnvironment folds ScriptEnv into a map. Later entries replace earlier ones with the same name.
func (r *SessionRequest) ScriptEnvironment() map[string]string {
	env := make(map[string]string, len(r.ScriptEnv))
	for _, e := range r.ScriptEnv {
		env[e.Name] = e.Value
	}
	return env
}

// DebuggerInformation is handed to whichever collaborator starts the debuggee.
// Ready must be called once CMake listens on PipeName; calling it again has no effect.
type DebuggerInformation struct {
	PipeName string
	DAPLog   string
	Ready    func()
}

// DebuggerIsReady invokes Ready when it is set.
func (d *DebuggerInformation) DebuggerIsReady() {
	if d != nil && d.Ready != nil {
		d.Ready()
	}
}

// TransportDescriptor tells the IDE where to connect its debug adapter client.
type TransportDescriptor struct {
	PipeName string `json:"pipeName"`
}

// LaunchCommand is an internal request to start a debuggee before any debug session exists.
type LaunchCommand struct {
	DebugType    DebugType
	Clean        bool
	ConfigureAll bool
	DAPLog       string
	ScriptPath   string
	ScriptArgs   []string
	ScriptEnv    []EnvironmentVariable
}

// Project is a CMake source tree and the build tree it configures into.
type Project struct {
	SourceDirectory string `yaml:"sourceDirectory" json:"sourceDirectory"`
	BuildDirectory  string `yaml:"buildDirectory" json:"buildDirectory"`
}
