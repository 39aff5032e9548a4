package gateway

import (
	"github.com/uber/dbgbroker/src/dbgbroker/gateway/cmake"
	"go.uber.org/fx"
)

// Module provides the outbound gateways into an Fx application.
var Module = fx.Options(
	cmake.Module,
)
