package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type EndpointInfo struct {
	Method         string `json:"method"`
	Path           string `json:"path"`
	Description    string `json:"description"`
	RequestSchema  any    `json:"request_schema,omitempty"`
	ResponseSchema any    `json:"response_schema,omitempty"`
}

type ServiceInfoResponse struct {
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints []EndpointInfo `json:"endpoints"`
}
