package dto

import "time"

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateItemRequest entrada para actualizar un artículo.
type UpdateItemRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListResponse lista de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}
