package dto

// PageRequest paginación para listados (page base 0).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Valid indica si los parámetros de página son válidos (no negativos y size acotado).
func (p PageRequest) Valid() bool {
	return p.Page >= 0 && p.Size >= 0 && p.Size <= 100
}

// DefaultPage aplica valores por defecto si Size no viene en la petición.
func (p *PageRequest) DefaultPage() {
	if p.Size == 0 {
		p.Size = 10
	}
}

// Offset devuelve el desplazamiento SQL equivalente.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
