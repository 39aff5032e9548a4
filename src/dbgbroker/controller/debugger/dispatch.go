package debugger

import (
	"context"
	"fmt"
	"time"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/readiness"
)

type launchFunc func(ctx context.Context, info *entity.DebuggerInformation) error

var errStopped = errors.New("debugger controller stopped")

// dispatch starts at most one debuggee for req and returns once it listens on info.PipeName.
func (c *controller) dispatch(ctx context.Context, req *entity.SessionRequest, info *entity.DebuggerInformation) error {
	switch req.DebugType {
	case entity.DebugTypeConfigure:
		mode := req.ConfigureMode()
		return c.launchAndWait(ctx, mode.String(), info, c.configureEntryPoint(mode))

	case entity.DebugTypeScript:
		if req.ScriptPath == "" {
			return &errors.MissingScriptPathError{}
		}
		env := req.ScriptEnvironment()
		return c.launchAndWait(ctx, "script", info, func(ctx context.Context, info *entity.DebuggerInformation) error {
			return c.scriptRunner.ExecuteScriptWithDebugger(ctx, req.ScriptPath, req.ScriptArgs, env, info)
		})

	case entity.DebugTypeExternal:
		// Someone else started CMake, so only its address is needed.
		if req.PipeName == "" {
			return &errors.MissingPipeNameError{}
		}
		return nil
	}
	return &errors.MissingDebugTypeError{}
}

func (c *controller) configureEntryPoint(mode entity.ConfigureMode) launchFunc {
	switch mode {
	case entity.ConfigureModeAll:
		return c.configurer.ConfigureAllWithDebugger
	case entity.ConfigureModeCleanSingle:
		return c.configurer.CleanConfigureWithDebugger
	case entity.ConfigureModeCleanAll:
		return c.configurer.CleanConfigureAllWithDebugger
	default:
		return c.configurer.ConfigureWithDebugger
	}
}

// launchAndWait runs launch in its own goroutine and blocks until the debuggee is ready,
// launch fails before that, or ctx ends.
// The launch outlives this call once ready and only stops with the controller.
func (c *controller) launchAndWait(ctx context.Context, operation string, info *entity.DebuggerInformation, launch launchFunc) error {
	if !c.register() {
		return fmt.Errorf("%s with debugger: %w", operation, errStopped)
	}

	gate, signal := readiness.New()
	info.Ready = signal

	launchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stopWithController := context.AfterFunc(c.baseCtx, cancel)

	finished := make(chan error)
	abandoned := make(chan struct{})
	defer close(abandoned)

	c.stats.Gauge(_metricPending).Update(float64(c.pending.Add(1)))
	defer func() { c.stats.Gauge(_metricPending).Update(float64(c.pending.Add(-1))) }()

	start := time.Now()
	go func() {
		defer c.wg.Done()
		defer cancel()
		defer stopWithController()

		err := launch(launchCtx, info)
		select {
		case finished <- err:
		case <-abandoned:
			c.logFinished(operation, info.PipeName, err)
		}
	}()

	select {
	case <-gate.Done():
		c.stats.Timer(_metricReady).Record(time.Since(start))
		return nil

	case err := <-finished:
		if gate.Satisfied() {
			// Ready and finished at the same time, the debuggee still counts as started.
			c.logFinished(operation, info.PipeName, err)
			return nil
		}
		if err == nil {
			err = &errors.DebuggerNotReadyError{}
		}
		return fmt.Errorf("%s with debugger: %w", operation, err)

	case <-ctx.Done():
		cancel()
		return fmt.Errorf("waiting for debugger on %q: %w", info.PipeName, ctx.Err())
	}
}

// register counts a new launch in wg unless the controller already stopped.
func (c *controller) register() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.baseCtx.Err() != nil {
		return false
	}
	c.wg.Add(1)
	return true
}

func (c *controller) logFinished(operation, pipeName string, err error) {
	if err != nil {
		c.logger.Warnw("debuggee launch ended with error", "operation", operation, "pipeName", pipeName, "error", err)
		return
	}
	c.logger.Infow("debuggee launch finished", "operation", operation, "pipeName", pipeName)
}
