package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally"
	"github.com/uber/dbgbroker/src/dbgbroker/gateway"
	ideclient "github.com/uber/dbgbroker/src/dbgbroker/gateway/ide-client"
	"github.com/uber/dbgbroker/src/dbgbroker/handler"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/core"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/executor"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/fs"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/jsonrpcfx"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/localize"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/pipename"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the dbgbroker application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	localize.Module,
	pipename.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(ideclient.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "dbgbroker",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
