package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/internal/http/handler"
	"basegraph.app/heronames/internal/http/web"
	"basegraph.app/heronames/internal/service"
)

type RouterConfig struct {
	ServiceName    string
	ServiceVersion string
}

// SetupAPIRoutes registers the JSON API surface.
func SetupAPIRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	healthHandler := handler.NewHealthHandler(cfg.ServiceName)
	router.GET("/health", healthHandler.Check)

	infoHandler := handler.NewServiceInfoHandler(cfg.ServiceName, cfg.ServiceVersion)
	router.GET("/", infoHandler.Index)

	generationHandler := handler.NewGenerationHandler(services.Generation())
	GenerationRouter(router.Group("/generate"), generationHandler)
}

// SetupPageRoutes registers the HTML page surface.
func SetupPageRoutes(router *gin.Engine, services *service.Services) {
	router.SetHTMLTemplate(web.Templates())

	pageHandler := handler.NewPageHandler(services.Generation())
	PageRouter(&router.RouterGroup, pageHandler)
}
