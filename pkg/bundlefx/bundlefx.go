// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/ericjank/hyperf/pkg/middleware/logger"
	"github.com/ericjank/hyperf/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provided to fx
var Module = fx.Options(
	logger.Module,
	metrics.Module,
)
