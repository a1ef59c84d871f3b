package dto

import "time"

// CreatePropertyRequest body para POST /api/properties.
type CreatePropertyRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// UpdatePropertyRequest body para PATCH /api/properties/:id.
type UpdatePropertyRequest struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

// PropertyResponse definición de propiedad.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyListResponse catálogo de propiedades.
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
}
