package v1

import (
	"net/http"

	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/admin"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/alliances"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/castles"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/history"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/maps"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/players"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/servers"
	"gametrack.gg/stats-api/config"
	"github.com/gin-gonic/gin"
)

type V1Route struct {
	serversRoute   *servers.ServersRoute
	playersRoute   *players.PlayersRoute
	alliancesRoute *alliances.AlliancesRoute
	historyRoute   *history.HistoryRoute
	castlesRoute   *castles.CastlesRoute
	mapsRoute      *maps.MapsRoute
	adminRoute     *admin.AdminRoute
}

func NewV1Route(
	serversRoute *servers.ServersRoute,
	playersRoute *players.PlayersRoute,
	alliancesRoute *alliances.AlliancesRoute,
	historyRoute *history.HistoryRoute,
	castlesRoute *castles.CastlesRoute,
	mapsRoute *maps.MapsRoute,
	adminRoute *admin.AdminRoute,
) *V1Route {
	return &V1Route{
		serversRoute,
		playersRoute,
		alliancesRoute,
		historyRoute,
		castlesRoute,
		mapsRoute,
		adminRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.serversRoute.RegisterRouter(v1Router)
	v1Route.playersRoute.RegisterRouter(v1Router)
	v1Route.alliancesRoute.RegisterRouter(v1Router)
	v1Route.historyRoute.RegisterRouter(v1Router)
	v1Route.castlesRoute.RegisterRouter(v1Router)
	v1Route.mapsRoute.RegisterRouter(v1Router)
	v1Route.adminRoute.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary     Get API build version
// @Description Returns the current build version of the API server.
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string "version info"
// @Router      /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
