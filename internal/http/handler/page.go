package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/internal/http/dto"
	"basegraph.app/heronames/internal/service"
)

const pageTemplate = "index.html"

type PageHandler struct {
	generation service.GenerationService
}

func NewPageHandler(generation service.GenerationService) *PageHandler {
	return &PageHandler{generation: generation}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, gin.H{})
}

// Submit has no error page: a provider failure becomes a bare 500 and the
// error is left on the context for the logging middleware.
func (h *PageHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var form dto.PageForm
	if err := c.ShouldBind(&form); err != nil {
		slog.WarnContext(ctx, "invalid form", "error", err)
		c.String(http.StatusBadRequest, "animal is required")
		return
	}

	result, err := h.generation.Suggest(ctx, form.Animal)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, pageTemplate, gin.H{"result": result})
}
