package maps

import (
	"context"
	"net/http"
	"strconv"

	"gametrack.gg/stats-api/app/domain/admission"
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/maprender"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type MapsRoute struct {
	maprenderService  *maprender.Service
	gameServerService *gameserver.Service
	queue             *admission.Queue
}

func NewMapsRoute(maprenderService *maprender.Service, gameServerService *gameserver.Service, queue *admission.Queue) *MapsRoute {
	return &MapsRoute{
		maprenderService:  maprenderService,
		gameServerService: gameServerService,
		queue:             queue,
	}
}

func (route *MapsRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/maps/:server/:kingdom", route.getMapHandler)
}

// GetMap
// @Summary Kingdom map image
// @Description Returns the rendered kingdom map as PNG. Misses are serialized through the admission queue because the renderer handles one request at a time.
// @Tags Maps
// @Produce png
// @Param server path string true "Server code"
// @Param kingdom path int true "Kingdom ID"
// @Success 200 {string} binary "PNG image"
// @Failure 400 {object} responses.ErrorResponse "Bad Request"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/maps/{server}/{kingdom} [get]
func (route *MapsRoute) getMapHandler(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	server := reqCtx.Param("server")
	if _, serverErr := route.gameServerService.Resolve(ctx, server); serverErr != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  serverErr.GetCode(),
			Error: serverErr.Message,
		})
		return
	}

	kingdom, err := strconv.Atoi(reqCtx.Param("kingdom"))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "5b1d7f3a-2e0c-4a8e-c2f0-ff1a65aa7009",
			Error: "invalid kingdom id",
		})
		return
	}

	if payload, ok := route.maprenderService.CachedMap(ctx, server, kingdom); ok {
		route.writePNG(reqCtx, payload)
		return
	}

	job := admission.NewJob(ctx, "map-render",
		func(jobCtx context.Context) error {
			payload, renderErr := route.maprenderService.RenderMap(jobCtx, server, kingdom)
			if renderErr != nil {
				return renderErr
			}
			route.writePNG(reqCtx, payload)
			return nil
		},
		func() {
			if reqCtx.Writer.Written() {
				return
			}
			reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
				Code:  "7d3f9b5c-4a2e-4c0a-d4b2-ff1a65aa7010",
				Error: "map render failed",
			})
		})

	route.queue.Enqueue(job)
	<-job.Done()
}

func (route *MapsRoute) writePNG(reqCtx *gin.Context, payload string) {
	png, err := maprender.Decode(payload)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "9f5b1d7e-6c4a-4e2c-e6d4-ff1a65aa7011",
			Error: "corrupt cached map",
		})
		return
	}
	reqCtx.Data(http.StatusOK, "image/png", png)
}
