package model

// GenerationResult is the outcome of one name-generation request.
// Build it with Succeeded or Failed; it is not modified afterwards.
type GenerationResult struct {
	Animal  string
	Names   string
	Success bool
	Error   *string
}

func Succeeded(animal, names string) GenerationResult {
	return GenerationResult{
		Animal:  animal,
		Names:   names,
		Success: true,
	}
}

func Failed(animal string, err error) GenerationResult {
	msg := err.Error()
	return GenerationResult{
		Animal:  animal,
		Success: false,
		Error:   &msg,
	}
}
