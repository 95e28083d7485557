// Package inventory contiene el motor de ajustes de stock: todo cambio al
// contador de un producto pasa por aquí, con bloqueo de fila y auditoría.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// AdjustStockUseCase aplica deltas firmados al stock de un producto de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y piso en cero.
// Es el único camino de escritura del contador: lo usan el ajuste manual,
// la creación de órdenes (descuento) y la cancelación (reintegro).
type AdjustStockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// ApplyDeltaInTx aplica un delta usando los repositorios proporcionados
// (misma transacción del caller). Bloquea la fila del producto, verifica que
// el resultado no quede por debajo de cero, persiste el contador y registra
// el movimiento de auditoría. Retorna el stock resultante.
// Si retorna error (ej: ErrInsufficientStock), el caller debe hacer rollback.
func (uc *AdjustStockUseCase) ApplyDeltaInTx(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	productID string,
	delta int64,
	movType entity.MovementType,
	reference, notes, userID string,
	now time.Time,
) (int64, error) {
	// Bloquea la fila en products (SELECT FOR UPDATE) para evitar condiciones de carrera
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		return 0, domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStock(productID, newStock); err != nil {
		return 0, err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      movType,
		Quantity:  delta,
		Reference: reference,
		Notes:     notes,
		CreatedBy: userID,
		CreatedAt: now,
	}
	if err := movRepo.Create(mov); err != nil {
		return 0, err
	}
	return newStock, nil
}

// AdjustStock es el ajuste manual (POST /api/products/:id/stock): abre su
// propia transacción, aplica el delta y hace Commit o Rollback.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, userID, productID string, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if productID == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var newStock int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		var err error
		newStock, err = uc.ApplyDeltaInTx(productRepo, movRepo, productID, in.Delta,
			entity.MovementTypeADJUSTMENT, "manual", in.Notes, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.AdjustStockResponse{ProductID: productID, Stock: newStock}, nil
}

// ListMovements lista la auditoría de un producto, opcionalmente acotada por fechas.
func (uc *AdjustStockUseCase) ListMovements(productID string, from, to *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrMissingFields
	}
	page.DefaultPage()
	list, err := uc.movementRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      string(m.Type),
			Quantity:  m.Quantity,
			Reference: m.Reference,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}
