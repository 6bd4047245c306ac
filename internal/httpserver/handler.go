package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"privassistant/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	mw := middleware.New(srv.l, srv.rateLimPerMin)
	srv.setupSchedulerDomain(context.Background(), mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// requestLogger logs one line per request through the shared logger.
func (srv *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		srv.l.Debugf(c.Request.Context(), "%s %s -> %d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
