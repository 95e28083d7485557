package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para la auditoría de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
