package admin

import (
	"net/http"
	"slices"

	"gametrack.gg/stats-api/app/domain/admission"
	"gametrack.gg/stats-api/app/domain/auth"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/interfaces/http/responses"
	"github.com/gin-gonic/gin"
)

type AdminRoute struct {
	authService *auth.AuthService
	versions    *statcache.Versions
	queue       *admission.Queue
}

func NewAdminRoute(authService *auth.AuthService, versions *statcache.Versions, queue *admission.Queue) *AdminRoute {
	return &AdminRoute{
		authService: authService,
		versions:    versions,
		queue:       queue,
	}
}

func (route *AdminRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/admin", route.authService.AdminAuthMiddleware())
	group.POST("/cache/bump/:namespace", route.bumpNamespaceHandler)
	group.GET("/queue/status", route.queueStatusHandler)
}

type bumpResult struct {
	Namespace string `json:"namespace"`
	Version   int64  `json:"version"`
}

// BumpNamespace
// @Summary Bump a cache namespace
// @Description Increments the namespace's fill version so every cached entry under the old version is orphaned.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param namespace path string true "Cache namespace" Enums(servers, players, alliances, history, live, maps)
// @Success 200 {object} responses.GeneralResponse[bumpResult]
// @Failure 400 {object} responses.ErrorResponse "Unknown namespace"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal Server Error"
// @Router /v1/admin/cache/bump/{namespace} [post]
func (route *AdminRoute) bumpNamespaceHandler(reqCtx *gin.Context) {
	namespace := reqCtx.Param("namespace")
	if !slices.Contains(cache.Namespaces, namespace) {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "2c8e4a0f-9d5b-4c1e-b3a7-aa0b54ee6005",
			Error: "unknown namespace",
		})
		return
	}

	version, err := route.versions.Bump(reqCtx.Request.Context(), namespace)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "4a0f2c8e-1b7d-4d3f-c5b9-aa0b54ee6006",
			Error: "bump failed",
		})
		return
	}

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[bumpResult]{
		Status: "ok",
		Result: bumpResult{Namespace: namespace, Version: version},
	})
}

type queueStatus struct {
	Depth   int  `json:"depth"`
	Running bool `json:"running"`
}

// QueueStatus
// @Summary Admission queue status
// @Description Reports the current depth and occupancy of the admission queue.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[queueStatus]
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /v1/admin/queue/status [get]
func (route *AdminRoute) queueStatusHandler(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[queueStatus]{
		Status: "ok",
		Result: queueStatus{
			Depth:   route.queue.Depth(),
			Running: route.queue.Running(),
		},
	})
}
