package orders

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción que incluye
// repos de catálogo, órdenes y auditoría de stock. Toda operación que toca
// stock y orden a la vez pasa por aquí: o se confirma todo, o nada.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// StockAdjuster interfaz para integrar órdenes con el motor de stock.
// ApplyDeltaInTx aplica un delta usando los repositorios del caller (misma
// transacción): bloquea la fila del producto, verifica el piso en cero y
// registra la auditoría. Si retorna error (ej: ErrInsufficientStock), el
// caller debe hacer rollback.
type StockAdjuster interface {
	ApplyDeltaInTx(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		productID string,
		delta int64,
		movType entity.MovementType,
		reference, notes, userID string,
		now time.Time,
	) (int64, error)
}
