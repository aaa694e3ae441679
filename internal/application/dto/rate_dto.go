package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalesRateRequest entrada para crear una tarifa de venta.
// is_active por defecto true si se omite; effective_to vacío = vigencia abierta.
type CreateSalesRateRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required,uuid"`
	ItemID        string          `json:"item_id" validate:"required,uuid"`
	Rate          decimal.Decimal `json:"rate" validate:"required"`
	EffectiveFrom string          `json:"effective_from" validate:"required,datetime=2006-01-02"`
	EffectiveTo   *string         `json:"effective_to" validate:"omitempty,datetime=2006-01-02"`
	IsActive      *bool           `json:"is_active"`
}

// UpdateSalesRateRequest entrada para actualizar una tarifa (campos opcionales).
// Cambiar is_active o effective_from dispara las cascadas del motor temporal.
type UpdateSalesRateRequest struct {
	Rate          *decimal.Decimal `json:"rate"`
	EffectiveFrom *string          `json:"effective_from" validate:"omitempty,datetime=2006-01-02"`
	EffectiveTo   *string          `json:"effective_to" validate:"omitempty,datetime=2006-01-02"`
	IsActive      *bool            `json:"is_active"`
}

// SalesRateResponse salida de una tarifa.
type SalesRateResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   string          `json:"effective_to,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedBy     string          `json:"created_by,omitempty"`
	UpdatedBy     string          `json:"updated_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SalesRateListResponse lista de tarifas.
type SalesRateListResponse struct {
	Items []SalesRateResponse `json:"items"`
}
