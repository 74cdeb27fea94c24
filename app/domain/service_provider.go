package domain

import (
	"gametrack.gg/stats-api/app/domain/admission"
	"gametrack.gg/stats-api/app/domain/alliance"
	"gametrack.gg/stats-api/app/domain/auth"
	"gametrack.gg/stats-api/app/domain/cron"
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/history"
	"gametrack.gg/stats-api/app/domain/liveops"
	"gametrack.gg/stats-api/app/domain/maprender"
	"gametrack.gg/stats-api/app/domain/player"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/infrastructure/renderer"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
	"gametrack.gg/stats-api/app/utils/httpclients/olap"
	"github.com/google/wire"
)

// Adapter providers narrowing infrastructure types to the interfaces the
// domain services consume.

func ProvideStore(cacheService cache.CacheService) statcache.Store {
	return cacheService
}

func ProvideCastleSource(client *gamews.GameWsClient) liveops.CastleSource {
	return client
}

func ProvideOlapSource(client *olap.OlapClient) history.OlapSource {
	return client
}

func ProvideEngine(engine *renderer.ProcessEngine) renderer.Engine {
	return engine
}

var ServiceProvider = wire.NewSet(
	ProvideStore,
	ProvideCastleSource,
	ProvideOlapSource,
	ProvideEngine,
	gamews.NewGameWsClient,
	olap.NewOlapClient,
	statcache.NewVersions,
	statcache.NewAccessor,
	admission.NewQueue,
	auth.NewAuthService,
	gameserver.NewService,
	player.NewService,
	alliance.NewService,
	history.NewService,
	liveops.NewService,
	maprender.NewService,
	cron.NewService,
)
