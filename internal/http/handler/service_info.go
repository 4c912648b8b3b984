package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"basegraph.app/heronames/internal/http/dto"
)

type ServiceInfoHandler struct {
	info dto.ServiceInfoResponse
}

// NewServiceInfoHandler precomputes the descriptor; the schemas are reflected
// from the dto types so they track the wire format.
func NewServiceInfoHandler(serviceName, version string) *ServiceInfoHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	generationSchema := reflector.Reflect(&dto.GenerationResponse{})

	return &ServiceInfoHandler{
		info: dto.ServiceInfoResponse{
			Service: serviceName,
			Version: version,
			Endpoints: []dto.EndpointInfo{
				{
					Method:         http.MethodPost,
					Path:           "/generate",
					Description:    "Generate superhero names for the animal in the JSON body",
					RequestSchema:  reflector.Reflect(&dto.GenerateRequest{}),
					ResponseSchema: generationSchema,
				},
				{
					Method:         http.MethodGet,
					Path:           "/generate/{animal}",
					Description:    "Generate superhero names for the animal in the path",
					ResponseSchema: generationSchema,
				},
				{
					Method:         http.MethodGet,
					Path:           "/health",
					Description:    "Liveness check; never calls the completion provider",
					ResponseSchema: reflector.Reflect(&dto.HealthResponse{}),
				},
			},
		},
	}
}

func (h *ServiceInfoHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}

type HealthHandler struct {
	serviceName string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Service: h.serviceName})
}
