package debugger

import (
	"context"
	stderr "errors"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	controller "github.com/uber/dbgbroker/src/dbgbroker/controller/debugger"
	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	ideclient "github.com/uber/dbgbroker/src/dbgbroker/gateway/ide-client"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/localize"
	"github.com/uber/dbgbroker/src/dbgbroker/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	// MethodResolveTransport resolves where a debug adapter for a new session connects.
	MethodResolveTransport = "debugger/resolveTransport"
	// MethodConfigureWithDebugger starts a configure run under the debugger and opens a session for it.
	MethodConfigureWithDebugger = "debugger/configureWithDebugger"
	// MethodExecuteScriptWithDebugger starts a `cmake -P` run under the debugger and opens a session for it.
	MethodExecuteScriptWithDebugger = "debugger/executeScriptWithDebugger"
)

const (
	_metricLatency = "latency"
	_metricErrors  = "errors"
	_tagMethod     = "method"
)

type jsonRPCRouter struct {
	ctrl      controller.Controller
	ide       ideclient.Gateway
	uuid      uuid.UUID
	connCtx   context.Context
	stats     tally.Scope
	logger    *zap.SugaredLogger
	localizer localize.Localizer
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.SessionUUIDToContext(ctx, r.uuid)

	switch req.Method() {
	case MethodResolveTransport:
		return r.ResolveTransport(ctx, reply, req)

	case MethodConfigureWithDebugger:
		return r.launch(ctx, reply, req, entity.DebugTypeConfigure)

	case MethodExecuteScriptWithDebugger:
		return r.launch(ctx, reply, req, entity.DebugTypeScript)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// ResolveTransport replies with the transport descriptor once the requested debuggee listens.
func (r *jsonRPCRouter) ResolveTransport(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	sessionReq, err := mapper.RequestToSessionRequest(req)
	if err != nil {
		return reply(ctx, nil, r.replyError(err))
	}

	r.async(ctx, req.Method(), reply, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.ResolveDebugTransport(ctx, sessionReq)
	})
	return nil
}

// launch starts a debuggee for an internal command and asks the IDE to attach once it listens.
func (r *jsonRPCRouter) launch(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, debugType entity.DebugType) error {
	cmd, err := mapper.RequestToLaunchCommand(req, debugType)
	if err != nil {
		return reply(ctx, nil, r.replyError(err))
	}

	r.async(ctx, req.Method(), reply, func(ctx context.Context) (interface{}, error) {
		descriptor, err := r.ctrl.LaunchWithDebugger(ctx, cmd, r.ide.StartDebugging)
		if err != nil {
			r.showError(ctx, err)
			return nil, err
		}
		return descriptor, nil
	})
	return nil
}

// async runs call off the connection's read loop, since a resolution blocks until CMake is ready.
// call is canceled when the connection closes.
func (r *jsonRPCRouter) async(ctx context.Context, method string, reply jsonrpc2.Replier, call func(ctx context.Context) (interface{}, error)) {
	go func() {
		callCtx, cancel := context.WithCancel(ctx)
		stop := context.AfterFunc(r.connCtx, cancel)
		defer func() {
			stop()
			cancel()
		}()

		scope := r.stats.Tagged(map[string]string{_tagMethod: method})
		start := time.Now()
		result, err := call(callCtx)
		scope.Timer(_metricLatency).Record(time.Since(start))

		if err != nil {
			scope.Counter(_metricErrors).Inc(1)
			r.logger.Warnw("request failed", "method", method, zap.Stringer("uuid", r.uuid), zap.Error(err))
			result = nil
			err = r.replyError(err)
		}
		if replyErr := reply(ctx, result, err); replyErr != nil {
			r.logger.Warnw("replying to IDE", "method", method, zap.Stringer("uuid", r.uuid), zap.Error(replyErr))
		}
	}()
}

// replyError maps err onto a JSON-RPC error carrying the localized message.
func (r *jsonRPCRouter) replyError(err error) error {
	code := jsonrpc2.InternalError
	if errors.IsBadRequest(err) || stderr.Is(err, jsonrpc2.ErrInvalidParams) || stderr.Is(err, jsonrpc2.ErrParse) {
		code = jsonrpc2.InvalidParams
	}
	return jsonrpc2.NewError(code, r.localizer.Error(err))
}

func (r *jsonRPCRouter) showError(ctx context.Context, err error) {
	params := &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeError,
		Message: r.localizer.Error(err),
	}
	if showErr := r.ide.ShowMessage(ctx, params); showErr != nil {
		r.logger.Warnw("showing error in IDE", zap.Stringer("uuid", r.uuid), zap.Error(showErr))
	}
}
