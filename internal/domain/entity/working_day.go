package entity

import "time"

// Estados válidos para WorkingDay.
const (
	WorkingDayOpen  = "open"
	WorkingDayClose = "close"
)

// WorkingDay representa una jornada del calendario laboral (fecha única).
type WorkingDay struct {
	ID        string
	Date      time.Time
	Status    string // open, close
	IsWorking bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
