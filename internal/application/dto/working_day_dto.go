package dto

import "time"

// CreateWorkingDayRequest entrada para crear una jornada del calendario laboral.
type CreateWorkingDayRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,oneof=open close"`
	IsWorking *bool  `json:"is_working"`
}

// UpdateWorkingDayRequest entrada para actualizar una jornada.
type UpdateWorkingDayRequest struct {
	Status    *string `json:"status" validate:"omitempty,oneof=open close"`
	IsWorking *bool   `json:"is_working"`
}

// WorkingDayResponse salida de una jornada.
type WorkingDayResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	IsWorking bool      `json:"is_working"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkingDayListResponse lista de jornadas.
type WorkingDayListResponse struct {
	Items []WorkingDayResponse `json:"items"`
}
