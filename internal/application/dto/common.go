package dto

// ErrorResponse cuerpo de error HTTP. Details lleva los campos
// estructurados del error de dominio (ids, umbrales, valores observados).
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
