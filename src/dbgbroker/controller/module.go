package controller

import (
	"github.com/uber/dbgbroker/src/dbgbroker/controller/debugger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(debugger.New),
)
