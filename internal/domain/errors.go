package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de órdenes los retorna tal cual; la capa HTTP los mapea a códigos estables.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrMissingFields         = errors.New("faltan campos requeridos")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrInvalidStatus         = errors.New("estado de orden no reconocido")
	ErrCannotCancelDelivered = errors.New("una orden entregada no puede cancelarse")
)
