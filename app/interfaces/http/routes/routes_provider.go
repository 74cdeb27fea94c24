package routes

import (
	v1 "gametrack.gg/stats-api/app/interfaces/http/routes/v1"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/admin"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/alliances"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/castles"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/history"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/maps"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/players"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/servers"
	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	servers.NewServersRoute,
	players.NewPlayersRoute,
	alliances.NewAlliancesRoute,
	history.NewHistoryRoute,
	castles.NewCastlesRoute,
	maps.NewMapsRoute,
	admin.NewAdminRoute,
	v1.NewV1Route,
)
