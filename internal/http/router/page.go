package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/internal/http/handler"
)

func PageRouter(rg *gin.RouterGroup, h *handler.PageHandler) {
	rg.GET("/", h.Index)
	rg.POST("/", h.Submit)
}
