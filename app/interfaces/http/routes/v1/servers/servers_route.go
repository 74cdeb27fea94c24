package servers

import (
	"net/http"

	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type ServersRoute struct {
	gameServerService *gameserver.Service
}

func NewServersRoute(gameServerService *gameserver.Service) *ServersRoute {
	return &ServersRoute{
		gameServerService: gameServerService,
	}
}

func (route *ServersRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/servers", route.listServersHandler)
}

// ListServers
// @Summary List game servers
// @Description Returns every enabled game world in the registry.
// @Tags Servers
// @Produce json
// @Success 200 {object} responses.GeneralResponse[[]gameserver.ServerInfo]
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/servers [get]
func (route *ServersRoute) listServersHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	servers, err := route.gameServerService.ListServers(ctx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "9c5e7a1b-2d8f-4c3a-b6d0-ff1a65aa7001",
			Error: "failed to list servers",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[[]gameserver.ServerInfo]{
		Status: "ok",
		Result: servers,
	})
}
