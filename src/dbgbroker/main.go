package main

import (
	"github.com/uber/dbgbroker/src/dbgbroker/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
