package dto

import "time"

// DateLayout formato de fechas calendario en la API (effective_from, assignment_date...).
const DateLayout = "2006-01-02"

// ParseDate parsea una fecha calendario de la API a UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializa una fecha calendario; "" para nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
