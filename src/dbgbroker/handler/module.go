package handler

import (
	controller "github.com/uber/dbgbroker/src/dbgbroker/controller"
	handler "github.com/uber/dbgbroker/src/dbgbroker/handler/debugger"
	"go.uber.org/fx"
)

// Module provides the debugger JSON-RPC handler into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(handler.New),
	fx.Invoke(func(h handler.Handler) {}),
)
