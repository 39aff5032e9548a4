// Package debugger serves the broker's debugger methods to IDE extensions over JSON-RPC.
package debugger

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	controller "github.com/uber/dbgbroker/src/dbgbroker/controller/debugger"
	"github.com/uber/dbgbroker/src/dbgbroker/factory"
	ideclient "github.com/uber/dbgbroker/src/dbgbroker/gateway/ide-client"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/jsonrpcfx"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/localize"
	"github.com/uber/dbgbroker/src/dbgbroker/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler keeps track of IDE connections and hands each one a router for the debugger methods.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// Params are inbound parameters to initialize a new handler.
type Params struct {
	fx.In

	Controller controller.Controller
	JSONRPC    jsonrpcfx.JSONRPCModule
	IDE        ideclient.Gateway
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
	Localizer  localize.Localizer
}

type jsonRPCConnectionManager struct {
	ctrl      controller.Controller
	ide       ideclient.Gateway
	stats     tally.Scope
	logger    *zap.SugaredLogger
	localizer localize.Localizer

	mu sync.Mutex
	// Cancels the work still running for a connection once it closes.
	closers map[uuid.UUID]context.CancelFunc
}

// New constructs a new debugger Handler and registers it with the JSON-RPC inbound.
func New(p Params) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:      p.Controller,
		ide:       p.IDE,
		stats:     p.Stats.SubScope("json_rpc"),
		logger:    p.Logger,
		localizer: p.Localizer,
		closers:   make(map[uuid.UUID]context.CancelFunc),
	}
	if err := p.JSONRPC.RegisterConnectionManager(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewConnection registers the client with the IDE gateway and returns a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id := factory.UUID()
	ctx = mapper.SessionUUIDToContext(ctx, id)
	if err := c.ide.RegisterClient(ctx, id, conn); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	connCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.closers[id] = cancel
	c.mu.Unlock()

	return &jsonRPCRouter{
		ctrl:      c.ctrl,
		ide:       c.ide,
		uuid:      id,
		connCtx:   connCtx,
		stats:     c.stats,
		logger:    c.logger,
		localizer: c.localizer,
	}, nil
}

// RemoveConnection cancels whatever the closed connection was waiting on and forgets its client.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	c.mu.Lock()
	if cancel, ok := c.closers[id]; ok {
		cancel()
		delete(c.closers, id)
	}
	c.mu.Unlock()

	ctx = mapper.SessionUUIDToContext(ctx, id)
	if err := c.ide.DeregisterClient(ctx, id); err != nil {
		c.logger.Warnw("removing IDE client", zap.Stringer("uuid", id), zap.Error(err))
	}
}
