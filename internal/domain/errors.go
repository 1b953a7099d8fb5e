package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrSerialization indica un fallo de serialización del almacén (SQLSTATE 40001/40P01).
	// El motor lo reintenta internamente; si agota los reintentos lo traduce a ErrConflict.
	ErrSerialization = errors.New("fallo de serialización de la transacción")
)
