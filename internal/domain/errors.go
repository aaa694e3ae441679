package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrInvalidRange   = errors.New("effective_to anterior a effective_from")
	ErrNoActiveRate   = errors.New("no hay tarifa activa ni tarifa manual")
	ErrRateMismatch   = errors.New("la tarifa no corresponde al cliente y artículo de la asignación")
	ErrAmbiguousPrice = errors.New("manual_rate y sales_rate_id son mutuamente excluyentes")
)
