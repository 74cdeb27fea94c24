package infrastructure

import (
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/infrastructure/metrics"
	"gametrack.gg/stats-api/app/infrastructure/renderer"
	"github.com/google/wire"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	metrics.NewMetrics,
	renderer.NewProcessEngine,
)
