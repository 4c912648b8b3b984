package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/internal/http/handler"
)

func GenerationRouter(rg *gin.RouterGroup, h *handler.GenerationHandler) {
	rg.POST("", h.Generate)
	rg.GET("/:animal", h.GenerateFromPath)
}
