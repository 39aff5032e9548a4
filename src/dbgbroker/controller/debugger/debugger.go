// Package debugger resolves where an IDE debug adapter connects to a CMake debuggee.
package debugger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	tally "github.com/uber-go/tally"
	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"github.com/uber/dbgbroker/src/dbgbroker/gateway/cmake"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/localize"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/pipename"
	"github.com/uber/dbgbroker/src/dbgbroker/mapper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=debuggermock/debugger_mock.go -package=debuggermock github.com/uber/dbgbroker/src/dbgbroker/controller/debugger Controller

const (
	_metricResolutions = "resolutions"
	_metricBypassed    = "bypassed"
	_metricErrors      = "errors"
	_metricReady       = "ready_latency"
	_metricPending     = "pending_resolutions"

	_tagDebugType = "debug_type"
	_tagKind      = "kind"
)

// ReadyFunc is called once a debuggee started by LaunchWithDebugger listens on its pipe.
// The request carries FromCommand so that resolving it does not start a second debuggee.
type ReadyFunc func(ctx context.Context, req *entity.SessionRequest) error

// Controller orchestrates debug transport resolution.
type Controller interface {
	// ResolveDebugTransport validates req, starts the debuggee it asks for and
	// returns the address to connect to once the debuggee listens there.
	ResolveDebugTransport(ctx context.Context, req *entity.SessionRequest) (*entity.TransportDescriptor, error)
	// LaunchWithDebugger starts a configure or script run on a fresh pipe and calls onReady once it listens.
	LaunchWithDebugger(ctx context.Context, cmd *entity.LaunchCommand, onReady ReadyFunc) (*entity.TransportDescriptor, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	Pipes        pipename.Resolver
	Localizer    localize.Localizer
	Configurer   cmake.Configurer
	ScriptRunner cmake.ScriptRunner
}

type controller struct {
	logger       *zap.SugaredLogger
	stats        tally.Scope
	pipes        pipename.Resolver
	localizer    localize.Localizer
	configurer   cmake.Configurer
	scriptRunner cmake.ScriptRunner

	// Canceled on stop, which cancels every launch still running.
	baseCtx context.Context
	stop    context.CancelFunc
	// Held while launches register with wg so none is added once stop began waiting.
	mu      sync.Mutex
	wg      sync.WaitGroup
	pending atomic.Int64
}

// New constructs the debugger controller.
func New(p Params) Controller {
	baseCtx, stop := context.WithCancel(context.Background())
	c := &controller{
		logger:       p.Logger,
		stats:        p.Stats.SubScope("debugger"),
		pipes:        p.Pipes,
		localizer:    p.Localizer,
		configurer:   p.Configurer,
		scriptRunner: p.ScriptRunner,
		baseCtx:      baseCtx,
		stop:         stop,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.onStop,
	})
	return c
}

func (c *controller) ResolveDebugTransport(ctx context.Context, req *entity.SessionRequest) (*entity.TransportDescriptor, error) {
	if err := validate(req); err != nil {
		c.countError(err)
		return nil, err
	}
	c.stats.Tagged(map[string]string{_tagDebugType: req.DebugType.String()}).Counter(_metricResolutions).Inc(1)

	pipeName, err := c.pipes.Resolve(req.PipeName)
	if err != nil {
		c.countError(err)
		return nil, fmt.Errorf("resolving debugger pipe: %w", err)
	}

	if req.FromCommand {
		// The command that set the flag already started the debuggee on this pipe.
		c.stats.Counter(_metricBypassed).Inc(1)
		return c.descriptor(pipeName), nil
	}

	info := &entity.DebuggerInformation{
		PipeName: pipeName,
		DAPLog:   dapLog(req),
	}
	if err := c.dispatch(ctx, req, info); err != nil {
		c.countError(err)
		return nil, err
	}
	return c.descriptor(pipeName), nil
}

func (c *controller) LaunchWithDebugger(ctx context.Context, cmd *entity.LaunchCommand, onReady ReadyFunc) (*entity.TransportDescriptor, error) {
	if cmd.DebugType != entity.DebugTypeConfigure && cmd.DebugType != entity.DebugTypeScript {
		return nil, fmt.Errorf("debug type %q cannot be launched by a command", cmd.DebugType)
	}

	req := mapper.LaunchCommandToSessionRequest(cmd)
	pipeName, err := c.pipes.Derive()
	if err != nil {
		c.countError(err)
		return nil, fmt.Errorf("deriving debugger pipe: %w", err)
	}

	info := &entity.DebuggerInformation{
		PipeName: pipeName,
		DAPLog:   req.DAPLog,
	}
	if err := c.dispatch(ctx, req, info); err != nil {
		c.countError(err)
		return nil, err
	}

	// Sessions resolved from here skip the launch, the debuggee is already waiting.
	attach := &entity.SessionRequest{
		Request:     entity.RequestLaunch,
		DebugType:   req.DebugType,
		PipeName:    pipeName,
		FromCommand: true,
	}
	if onReady != nil {
		if err := onReady(ctx, attach); err != nil {
			return nil, fmt.Errorf("starting debug session: %w", err)
		}
	}
	return c.descriptor(pipeName), nil
}

// descriptor assembles the transport descriptor and records the connection attempt.
func (c *controller) descriptor(pipeName string) *entity.TransportDescriptor {
	c.logger.Infow(c.localizer.Sprintf(localize.KeyCreateDescriptor, pipeName), "pipeName", pipeName)
	return &entity.TransportDescriptor{PipeName: pipeName}
}

func (c *controller) onStop(ctx context.Context) error {
	c.mu.Lock()
	c.stop()
	c.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for debuggee launches to stop: %w", ctx.Err())
	}
}

// dapLog returns the DAP log path to hand to CMake. Debuggees running out of process never get one.
func dapLog(req *entity.SessionRequest) string {
	if req.ExternalLaunch || req.DebugType == entity.DebugTypeExternal {
		return ""
	}
	return req.DAPLog
}
