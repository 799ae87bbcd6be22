package dto

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

func init() {
	// Montos como número JSON; el frontend los opera directamente.
	decimal.MarshalJSONWithoutQuotes = true
}

// APIResponse sobre común de todas las respuestas JSON.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Fields     []string    `json:"fields,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination calcula total_pages = ceil(total / perPage).
func NewPagination(page, perPage, total int) *Pagination {
	pages := 0
	if perPage > 0 {
		pages = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return &Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: pages}
}

// ListResult página de resultados lista para serializar.
type ListResult[T any] struct {
	Items      []T
	Pagination *Pagination
}

// ErrorResponse cuerpo de error HTTP (documentación swagger).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Present indica si un campo JSON opcional vino con valor; null cuenta como ausente.
func Present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
