package alliances

import (
	"net/http"
	"strconv"

	"gametrack.gg/stats-api/app/domain/alliance"
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type AlliancesRoute struct {
	allianceService   *alliance.Service
	gameServerService *gameserver.Service
}

func NewAlliancesRoute(allianceService *alliance.Service, gameServerService *gameserver.Service) *AlliancesRoute {
	return &AlliancesRoute{
		allianceService:   allianceService,
		gameServerService: gameServerService,
	}
}

func (route *AlliancesRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/alliances", route.listAlliancesHandler)
	router.GET("/alliances/:server/:id", route.getAllianceHandler)
}

// ListAlliances
// @Summary Alliance leaderboard
// @Description Returns one page of the alliance might leaderboard for a server.
// @Tags Alliances
// @Produce json
// @Param server query string true "Server code, e.g. DE1"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Param search query string false "Filter by alliance name"
// @Success 200 {object} alliance.LeaderboardPage
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/alliances [get]
func (route *AlliancesRoute) listAlliancesHandler(reqCtx *gin.Context) {
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
			Code:  "6e0a2c4b-8f5d-4a1c-9d7e-ff1a65aa7004",
			Error: err.Error(),
		})
		return
	}

	page, pageErr := route.allianceService.ListAlliances(ctx, server, pagination, reqCtx.Query("search"))
	if pageErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  pageErr.GetCode(),
			Error: "failed to load leaderboard",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, page)
}

// GetAlliance
// @Summary Alliance detail
// @Description Returns the latest tracked state of one alliance.
// @Tags Alliances
// @Produce json
// @Param server path string true "Server code"
// @Param id path int true "In-game alliance ID"
// @Success 200 {object} alliance.LeaderboardEntry
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 404 {object} responses.ErrorResponse "Not tracked"
// @Router /v1/alliances/{server}/{id} [get]
func (route *AlliancesRoute) getAllianceHandler(reqCtx *gin.Context) {
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
			Code:  "8a2c4e6d-0b7f-4c3e-a9b5-ff1a65aa7005",
			Error: "invalid alliance id",
		})
		return
	}

	entry, entryErr := route.allianceService.GetAlliance(ctx, server, gameID)
	if entryErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusNotFound, responses.ErrorResponse{
			Code:  entryErr.GetCode(),
			Error: "alliance not tracked",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, entry)
}
