package history

import (
	"net/http"
	"strconv"

	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/history"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type HistoryRoute struct {
	historyService    *history.Service
	gameServerService *gameserver.Service
}

func NewHistoryRoute(historyService *history.Service, gameServerService *gameserver.Service) *HistoryRoute {
	return &HistoryRoute{
		historyService:    historyService,
		gameServerService: gameServerService,
	}
}

func (route *HistoryRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/history/players/:server/:id", route.playerHistoryHandler)
	router.GET("/history/servers/:server", route.serverHistoryHandler)
}

// PlayerHistory
// @Summary Player daily history
// @Description Returns the daily aggregate series for one player from the OLAP store.
// @Tags History
// @Produce json
// @Param server path string true "Server code"
// @Param id path int true "In-game player ID"
// @Param days query int false "Number of days" default(90)
// @Success 200 {object} history.PlayerSeries
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/history/players/{server}/{id} [get]
func (route *HistoryRoute) playerHistoryHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Param("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}

	playerID, err := strconv.ParseInt(reqCtx.Param("id"), 10, 64)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "0c4e6a8b-2d9f-4e5a-b7c1-ff1a65aa7006",
			Error: "invalid player id",
		})
		return
	}
	days, _ := strconv.Atoi(reqCtx.DefaultQuery("days", "0"))

	series, seriesErr := route.historyService.PlayerHistory(ctx, server, playerID, days)
	if seriesErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  seriesErr.GetCode(),
			Error: "failed to load history",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, series)
}

// ServerHistory
// @Summary Server daily history
// @Description Returns the server-wide daily aggregate series from the OLAP store.
// @Tags History
// @Produce json
// @Param server path string true "Server code"
// @Param days query int false "Number of days" default(90)
// @Success 200 {object} history.ServerSeries
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/history/servers/{server} [get]
func (route *HistoryRoute) serverHistoryHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Param("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}
	days, _ := strconv.Atoi(reqCtx.DefaultQuery("days", "0"))

	series, seriesErr := route.historyService.ServerHistory(ctx, server, days)
	if seriesErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  seriesErr.GetCode(),
			Error: "failed to load history",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, series)
}
