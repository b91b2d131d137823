package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "github.com/MGhunch/dot-hub-api/internal/assistant/delivery/http"
	jobHTTP "github.com/MGhunch/dot-hub-api/internal/job/delivery/http"
	"github.com/MGhunch/dot-hub-api/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
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

// registerDomainRoutes registers all domain routes. The front end's
// paths predate this service, so everything hangs off the root rather
// than a versioned prefix.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	root := srv.gin.Group("")

	jobHTTP.RegisterRoutes(root, srv.jobHandler)
	srv.l.Infof(ctx, "Job domain registered")

	assistantHTTP.RegisterRoutes(root, srv.assistantHandler, srv.mw.RateLimitAsk())
	srv.l.Infof(ctx, "Assistant domain registered")
}
