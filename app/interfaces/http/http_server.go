package http

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"gametrack.gg/stats-api/app/infrastructure/metrics"
	"gametrack.gg/stats-api/app/interfaces/http/middleware"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1"
	"gametrack.gg/stats-api/app/utils/logger"
	"gametrack.gg/stats-api/config/environment_variables"
	_ "gametrack.gg/stats-api/docs"
	"github.com/gin-gonic/gin"
	_ "github.com/grafana/pyroscope-go/godeltaprof/http/pprof"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type HttpServer struct {
	engine  *gin.Engine
	v1Route *v1.V1Route
}

func NewHttpServer(v1Route *v1.V1Route, m *metrics.Metrics) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		engine:  gin.New(),
		v1Route: v1Route,
	}
	server.engine.Use(gin.Recovery())
	server.engine.Use(middleware.LoggerMiddleware(logger.GetLogger()))
	server.engine.Use(middleware.CORS())

	server.engine.GET("/health-check", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	server.engine.GET("/metrics", gin.WrapH(m.Handler()))
	server.engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Serves both the stock pprof handlers and godeltaprof's delta profiles,
	// all registered on the default mux by the blank imports above.
	server.engine.Any("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))

	return &server
}

func (httpServer *HttpServer) Run() error {
	port := environment_variables.EnvironmentVariables.API_PORT
	if port == "" {
		port = "8080"
	}
	httpServer.v1Route.RegisterRouter(httpServer.engine.Group("/"))
	if err := httpServer.engine.Run(fmt.Sprintf(":%s", port)); err != nil {
		return err
	}
	return nil
}
