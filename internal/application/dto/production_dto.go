package dto

import "time"

// CreateProductionRequest entrada para registrar producción.
type CreateProductionRequest struct {
	ItemID         string `json:"item_id" validate:"required,uuid"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	ProductionDate string `json:"production_date" validate:"required,datetime=2006-01-02"`
	Note           string `json:"note" validate:"max=500"`
}

// UpdateProductionRequest entrada para corregir un registro de producción.
type UpdateProductionRequest struct {
	Quantity       *int    `json:"quantity" validate:"omitempty,gt=0"`
	ProductionDate *string `json:"production_date" validate:"omitempty,datetime=2006-01-02"`
	Note           *string `json:"note" validate:"omitempty,max=500"`
}

// ProductionResponse salida de un registro de producción.
type ProductionResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name,omitempty"`
	Quantity       int       `json:"quantity"`
	ProductionDate string    `json:"production_date"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductionListResponse lista de registros de producción.
type ProductionListResponse struct {
	Items []ProductionResponse `json:"items"`
}
