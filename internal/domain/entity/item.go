package entity

import "time"

// Item representa un producto de la panadería (nombre único).
type Item struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
