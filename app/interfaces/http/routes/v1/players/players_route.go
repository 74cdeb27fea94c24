package players

import (
	"net/http"
	"strconv"

	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/player"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type PlayersRoute struct {
	playerService     *player.Service
	gameServerService *gameserver.Service
}

func NewPlayersRoute(playerService *player.Service, gameServerService *gameserver.Service) *PlayersRoute {
	return &PlayersRoute{
		playerService:     playerService,
		gameServerService: gameServerService,
	}
}

func (route *PlayersRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/players", route.listPlayersHandler)
	router.GET("/players/:server/:id", route.getPlayerHandler)
}

// ListPlayers
// @Summary Player leaderboard
// @Description Returns one page of the might leaderboard for a server.
// @Tags Players
// @Produce json
// @Param server query string true "Server code, e.g. DE1"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Param search query string false "Filter by player name"
// @Success 200 {object} player.LeaderboardPage
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/players [get]
func (route *PlayersRoute) listPlayersHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Query("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}

	pagination, err := query.GetPaginationFromQuery(reqCtx)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "2a6c8e0d-4f1b-4d7e-9a3c-ff1a65aa7002",
			Error: err.Error(),
		})
		return
	}

	page, pageErr := route.playerService.ListPlayers(ctx, server, pagination, reqCtx.Query("search"))
	if pageErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  pageErr.GetCode(),
			Error: "failed to load leaderboard",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, page)
}

// GetPlayer
// @Summary Player detail
// @Description Returns the latest tracked state of one player.
// @Tags Players
// @Produce json
// @Param server path string true "Server code"
// @Param id path int true "In-game player ID"
// @Success 200 {object} player.LeaderboardEntry
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 404 {object} responses.ErrorResponse "Not tracked"
// @Router /v1/players/{server}/{id} [get]
func (route *PlayersRoute) getPlayerHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Param("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}

	gameID, err := strconv.ParseInt(reqCtx.Param("id"), 10, 64)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "4c8e0a2f-6d3b-4f9a-b5e1-ff1a65aa7003",
			Error: "invalid player id",
		})
		return
	}

	entry, entryErr := route.playerService.GetPlayer(ctx, server, gameID)
	if entryErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  entryErr.GetCode(),
			Error: "player not tracked",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, entry)
}
