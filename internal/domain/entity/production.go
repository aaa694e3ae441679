package entity

import "time"

// Production representa un registro de producción diaria de un artículo.
type Production struct {
	ID             string
	ItemID         string
	Quantity       int
	ProductionDate time.Time
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ItemName string // cargado por join para respuestas
}
