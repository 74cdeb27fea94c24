package castles

import (
	"context"
	"net/http"
	"strconv"

	"gametrack.gg/stats-api/app/domain/admission"
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/liveops"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type CastlesRoute struct {
	liveopsService    *liveops.Service
	gameServerService *gameserver.Service
	queue             *admission.Queue
}

func NewCastlesRoute(liveopsService *liveops.Service, gameServerService *gameserver.Service, queue *admission.Queue) *CastlesRoute {
	return &CastlesRoute{
		liveopsService:    liveopsService,
		gameServerService: gameServerService,
		queue:             queue,
	}
}

func (route *CastlesRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/castles/:server/:id", route.getCastleHandler)
}

// GetCastle
// @Summary Live castle lookup
// @Description Returns the current state of one castle from the live game world. Misses are serialized through the admission queue.
// @Tags Castles
// @Produce json
// @Param server path string true "Server code"
// @Param id path int true "Castle ID"
// @Success 200 {object} gamews.CastleDetail
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/castles/{server}/{id} [get]
func (route *CastlesRoute) getCastleHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Param("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}

	castleID, err := strconv.ParseInt(reqCtx.Param("id"), 10, 64)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "1d7f3a9c-8b2e-4c6d-a0f4-ff1a65aa7007",
			Error: "invalid castle id",
		})
		return
	}

	// Cache hits never touch the queue.
	if payload, ok := route.liveopsService.CachedCastle(ctx, server, castleID); ok {
		reqCtx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
		return
	}

	job := admission.NewJob(ctx, "castle-lookup",
		func(jobCtx context.Context) error {
			payload, fetchErr := route.liveopsService.FetchCastle(jobCtx, server, castleID)
			if fetchErr != nil {
				return fetchErr
			}
			reqCtx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
			return nil
		},
		func() {
			if reqCtx.Writer.Written() {
				return
			}
			reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
				Code:  "3f9b5d1e-0c8a-4e2b-b6d8-ff1a65aa7008",
				Error: "castle lookup failed",
			})
		})

	route.queue.Enqueue(job)
	<-job.Done()
}
