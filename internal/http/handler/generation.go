package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/heronames/internal/http/dto"
	"basegraph.app/heronames/internal/service"
)

// GenerationHandler serves the JSON API. Provider failures are reported in the
// envelope with status 200; only malformed input gets a 4xx.
type GenerationHandler struct {
	generation service.GenerationService
}

func NewGenerationHandler(generation service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generation: generation}
}

func (h *GenerationHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respond(c, req.Animal)
}

func (h *GenerationHandler) GenerateFromPath(c *gin.Context) {
	animal := c.Param("animal")
	if animal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing animal"})
		return
	}

	h.respond(c, animal)
}

func (h *GenerationHandler) respond(c *gin.Context, animal string) {
	result := h.generation.Generate(c.Request.Context(), animal)
	c.JSON(http.StatusOK, dto.ToGenerationResponse(result))
}
