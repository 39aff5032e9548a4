// Package cmake starts CMake configure and script runs with the CMake debugger enabled.
package cmake

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	ideclient "github.com/uber/dbgbroker/src/dbgbroker/gateway/ide-client"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/cmakeproject"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/executor"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
	"golang.org/x/mod/semver"
)

//go:generate mockgen -destination=cmakemock/cmake_mock.go -package=cmakemock github.com/uber/dbgbroker/src/dbgbroker/gateway/cmake Configurer,ScriptRunner

const (
	_configKey = "cmake"

	// CMake prints this once it listens on the debugger pipe.
	_readyLine = "Waiting for debugger client to connect..."

	_minimumVersion = "3.27.0"
	_versionPrefix  = "cmake version "
	_outputPrefix   = "cmake"

	_cacheFile      = "CMakeCache.txt"
	_cacheDirectory = "CMakeFiles"
)

// Configurer runs CMake configure steps with the debugger enabled.
// Each method returns once CMake exits and calls info.DebuggerIsReady as soon as CMake listens on info.PipeName.
type Configurer interface {
	ConfigureWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error
	ConfigureAllWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error
	CleanConfigureWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error
	CleanConfigureAllWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error
}

// ScriptRunner runs CMake scripts with the debugger enabled.
type ScriptRunner interface {
	ExecuteScriptWithDebugger(ctx context.Context, scriptPath string, args []string, env map[string]string, info *entity.DebuggerInformation) error
}

// Gateway is both a Configurer and a ScriptRunner.
type Gateway interface {
	Configurer
	ScriptRunner
}

// Params are the inputs used to build the CMake gateway.
type Params struct {
	fx.In

	Config   config.Provider
	Executor executor.Executor
	FS       fs.BrokerFS
	IDE      ideclient.Gateway
	Logger   *zap.SugaredLogger
}

// Module provides the CMake gateway under each of its interfaces.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(
		func(g Gateway) Configurer { return g },
		func(g Gateway) ScriptRunner { return g },
	),
)

type settings struct {
	Path            string           `yaml:"path"`
	SourceDirectory string           `yaml:"sourceDirectory"`
	BuildDirectory  string           `yaml:"buildDirectory"`
	ConfigureArgs   []string         `yaml:"configureArgs"`
	ProjectsFile    string           `yaml:"projectsFile"`
	Projects        []entity.Project `yaml:"projects"`
}

type gateway struct {
	settings settings
	executor executor.Executor
	fs       fs.BrokerFS
	loader   *cmakeproject.Loader
	ide      ideclient.Gateway
	logger   *zap.SugaredLogger
	environ  func() []string

	versionOnce sync.Once
	versionErr  error
}

// New creates the CMake gateway.
func New(p Params) (Gateway, error) {
	var s settings
	if err := p.Config.Get(_configKey).Populate(&s); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if s.Path == "" {
		s.Path = "cmake"
	}
	if s.SourceDirectory == "" {
		s.SourceDirectory = "."
	}
	if s.BuildDirectory == "" {
		s.BuildDirectory = filepath.Join(s.SourceDirectory, "build")
	}

	return &gateway{
		settings: s,
		executor: p.Executor,
		fs:       p.FS,
		loader:   cmakeproject.NewLoader(p.FS),
		ide:      p.IDE,
		logger:   p.Logger,
		environ:  os.Environ,
	}, nil
}

func (g *gateway) ConfigureWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error {
	return g.configure(ctx, g.activeProject(), info)
}

func (g *gateway) ConfigureAllWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error {
	projects, err := g.allProjects()
	if err != nil {
		return err
	}
	for _, project := range projects {
		if err := g.configure(ctx, project, info); err != nil {
			return err
		}
	}
	return nil
}

func (g *gateway) CleanConfigureWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error {
	project := g.activeProject()
	if err := g.clean(project); err != nil {
		return err
	}
	return g.configure(ctx, project, info)
}

func (g *gateway) CleanConfigureAllWithDebugger(ctx context.Context, info *entity.DebuggerInformation) error {
	projects, err := g.allProjects()
	if err != nil {
		return err
	}
	for _, project := range projects {
		if err := g.clean(project); err != nil {
			return err
		}
	}
	for _, project := range projects {
		if err := g.configure(ctx, project, info); err != nil {
			return err
		}
	}
	return nil
}

func (g *gateway) ExecuteScriptWithDebugger(ctx context.Context, scriptPath string, args []string, env map[string]string, info *entity.DebuggerInformation) error {
	// CMake runs in the script's directory, so a relative path would no longer point at it.
	scriptPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolving script path: %w", err)
	}
	cmdArgs := append([]string{"-P", scriptPath}, args...)

	// Request entries follow the inherited environment so they take precedence.
	cmdEnv := g.environ()
	for _, name := range slices.Sorted(maps.Keys(env)) {
		cmdEnv = append(cmdEnv, name+"="+env[name])
	}

	return g.runWithDebugger(ctx, filepath.Dir(scriptPath), cmdArgs, cmdEnv, info)
}

func (g *gateway) configure(ctx context.Context, project entity.Project, info *entity.DebuggerInformation) error {
	args := append([]string{"-S", project.SourceDirectory, "-B", project.BuildDirectory}, g.settings.ConfigureArgs...)
	return g.runWithDebugger(ctx, "", args, g.environ(), info)
}

// clean removes the cache of a build tree so the next configure starts from scratch.
func (g *gateway) clean(project entity.Project) error {
	g.logger.Infow("cleaning build tree", "buildDirectory", project.BuildDirectory)
	err := multierr.Combine(
		g.fs.Remove(filepath.Join(project.BuildDirectory, _cacheFile)),
		g.fs.RemoveAll(filepath.Join(project.BuildDirectory, _cacheDirectory)),
	)
	if err != nil {
		return fmt.Errorf("cleaning %s: %w", project.BuildDirectory, err)
	}
	return nil
}

func (g *gateway) activeProject() entity.Project {
	return entity.Project{
		SourceDirectory: g.settings.SourceDirectory,
		BuildDirectory:  g.settings.BuildDirectory,
	}
}

// allProjects lists the configured projects followed by those of the projects file.
// Only the active project is used when neither is set.
func (g *gateway) allProjects() ([]entity.Project, error) {
	projects := slices.Clone(g.settings.Projects)
	if g.settings.ProjectsFile != "" {
		loaded, err := g.loader.Load(g.settings.ProjectsFile)
		if err != nil {
			return nil, err
		}
		projects = append(projects, loaded...)
	}
	if len(projects) == 0 {
		projects = append(projects, g.activeProject())
	}
	return projects, nil
}

func (g *gateway) runWithDebugger(ctx context.Context, dir string, args []string, env []string, info *entity.DebuggerInformation) error {
	if err := g.checkVersion(); err != nil {
		return err
	}

	args = append(debuggerArgs(info), args...)
	cmd := exec.CommandContext(ctx, g.settings.Path, args...)
	cmd.Dir = dir

	stdout, closeStdout := g.output(ctx)
	defer closeStdout()
	stderr, closeStderr := g.output(ctx)
	defer closeStderr()
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	ready := false
	err := g.executor.RunStreaming(cmd, env, func(line string) {
		if strings.Contains(line, _readyLine) {
			ready = true
			info.DebuggerIsReady()
		}
	})
	if err != nil {
		return fmt.Errorf("running cmake %s: %w", strings.Join(args, " "), err)
	}
	if !ready {
		return &errors.DebuggerNotReadyError{Args: args}
	}
	return nil
}

func debuggerArgs(info *entity.DebuggerInformation) []string {
	args := []string{"--debugger", "--debugger-pipe", info.PipeName}
	if info.DAPLog != "" {
		args = append(args, "--debugger-dap-log", info.DAPLog)
	}
	return args
}

// output forwards CMake output to the IDE that asked for the run, or to the log when there is none.
func (g *gateway) output(ctx context.Context) (io.Writer, func()) {
	fallback := &zapio.Writer{
		Log:   g.logger.Desugar().With(zap.String("source", _outputPrefix)),
		Level: zapcore.InfoLevel,
	}
	closeFallback := func() { fallback.Close() }

	w, err := g.ide.GetLogMessageWriter(ctx, _outputPrefix)
	if err != nil {
		return fallback, closeFallback
	}
	return &ideOutput{ide: w, fallback: fallback, logger: g.logger}, closeFallback
}

// ideOutput sends output to the IDE until a send fails, then logs it instead.
// It never fails a write: an error here would close the pipe CMake writes to
// and kill a run that outlives the IDE connection.
type ideOutput struct {
	ide      io.Writer
	fallback io.Writer
	logger   *zap.SugaredLogger
	failed   bool
}

func (w *ideOutput) Write(p []byte) (int, error) {
	if !w.failed {
		_, err := w.ide.Write(p)
		if err == nil {
			return len(p), nil
		}
		w.failed = true
		w.logger.Warnw("forwarding cmake output to IDE failed, logging it instead", "error", err)
	}
	if _, err := w.fallback.Write(p); err != nil {
		w.logger.Warnw("logging cmake output failed", "error", err)
	}
	return len(p), nil
}

// checkVersion runs `cmake --version` once and rejects releases without debugger support.
func (g *gateway) checkVersion() error {
	g.versionOnce.Do(func() {
		stdout, _, _, err := g.executor.Run(exec.Command(g.settings.Path, "--version"))
		if err != nil {
			g.versionErr = fmt.Errorf("checking cmake version: %w", err)
			return
		}

		version := parseVersion(stdout)
		if !semver.IsValid("v" + version) {
			g.logger.Warnw("unable to parse cmake version, skipping check", "output", stdout)
			return
		}
		if semver.Compare("v"+version, "v"+_minimumVersion) < 0 {
			g.versionErr = &errors.UnsupportedVersionError{Version: version, Minimum: _minimumVersion}
		}
	})
	return g.versionErr
}

func parseVersion(output string) string {
	firstLine, _, _ := strings.Cut(output, "\n")
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(firstLine), _versionPrefix))
}
