package dto

import "basegraph.app/heronames/internal/model"

type GenerateRequest struct {
	Animal string `json:"animal" binding:"required" jsonschema:"description=Animal to invent superhero names for"`
}

type GenerationResponse struct {
	Animal  string  `json:"animal"`
	Names   string  `json:"names" jsonschema:"description=Generated names as returned by the model"`
	Success bool    `json:"success"`
	Error   *string `json:"error" jsonschema:"description=Failure description when success is false"`
}

func ToGenerationResponse(r model.GenerationResult) GenerationResponse {
	return GenerationResponse{
		Animal:  r.Animal,
		Names:   r.Names,
		Success: r.Success,
		Error:   r.Error,
	}
}

// PageForm is the form posted by the HTML page.
type PageForm struct {
	Animal string `form:"animal" binding:"required"`
}
