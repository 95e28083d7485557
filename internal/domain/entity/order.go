package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus es la enumeración cerrada del ciclo de vida de una orden.
// Las reglas de transición viven en internal/domain/order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order representa la cabecera de una orden confirmada.
// Total se calcula una sola vez al crear la orden (suma de precio congelado × cantidad)
// y nunca se recalcula desde los precios vigentes del catálogo.
// Después de creada solo cambia Status (y UpdatedAt); la cancelación la elimina.
type Order struct {
	ID              string
	UserID          string
	Status          OrderStatus
	Total           decimal.Decimal
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
