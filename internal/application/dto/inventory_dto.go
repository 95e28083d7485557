package dto

import "time"

// AdjustStockRequest body para POST /api/products/:id/stock.
// Delta es firmado: positivo repone, negativo descuenta.
type AdjustStockRequest struct {
	Delta int64  `json:"delta" validate:"required"`
	Notes string `json:"notes"`
}

// AdjustStockResponse salida del ajuste: el contador ya persistido.
type AdjustStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int64  `json:"stock"`
}

// MovementResponse salida de un movimiento de stock (auditoría).
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
