package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea solicitada dentro de CreateOrderRequest.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	UserID          string             `json:"user_id" validate:"required"`
	ShippingAddress string             `json:"shipping_address"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de orden con su precio congelado.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Status          string              `json:"status"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderSummaryResponse salida de una orden sin líneas (para listados).
type OrderSummaryResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ListOrdersRequest filtros para GET /api/orders.
type ListOrdersRequest struct {
	UserID string `query:"user_id"`
	Status string `query:"status"`
	PageRequest
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderSummaryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
