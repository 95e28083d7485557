// Package order contiene las reglas puras del ciclo de vida de una orden.
// No toca persistencia: los casos de uso las invocan antes de escribir.
package order

import (
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// known es el conjunto de estados reconocidos.
var known = map[entity.OrderStatus]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusProcessing: true,
	entity.OrderStatusShipped:    true,
	entity.OrderStatusDelivered:  true,
	entity.OrderStatusCancelled:  true,
}

// terminal marca los estados desde los cuales no se permite ninguna transición.
var terminal = map[entity.OrderStatus]bool{
	entity.OrderStatusDelivered: true,
	entity.OrderStatusCancelled: true,
}

// Statuses retorna los estados reconocidos en orden de ciclo de vida.
func Statuses() []entity.OrderStatus {
	return []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}
}

// ParseStatus valida una cadena cruda (body o query param) contra la
// enumeración. Cadena no reconocida ⇒ domain.ErrInvalidStatus.
func ParseStatus(raw string) (entity.OrderStatus, error) {
	s := entity.OrderStatus(raw)
	if !known[s] {
		return "", domain.ErrInvalidStatus
	}
	return s, nil
}

// ValidateTransition decide si una orden puede pasar de from a to.
// El destino debe ser un estado reconocido; delivered y cancelled son
// terminales y no admiten salida. Entre estados no terminales cualquier
// destino reconocido es válido (incluye re-aplicar el estado actual).
func ValidateTransition(from, to entity.OrderStatus) error {
	if !known[to] {
		return domain.ErrInvalidStatus
	}
	if terminal[from] {
		return domain.ErrConflict
	}
	return nil
}

// CanCancel decide si una orden en el estado dado admite cancelación con
// reintegro de stock. Solo delivered la bloquea: la mercancía ya salió.
func CanCancel(s entity.OrderStatus) error {
	if s == entity.OrderStatusDelivered {
		return domain.ErrCannotCancelDelivered
	}
	return nil
}
