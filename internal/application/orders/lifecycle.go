package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/order"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UpdateStatus aplica una transición de estado validada por las reglas de
// internal/domain/order. La cabecera se bloquea dentro de la transacción para
// que una cancelación concurrente no se cruce con la transición.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, rawStatus string) (*dto.OrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrMissingFields
	}
	to, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	var updated *entity.Order
	err = uc.txRunner.RunOrder(ctx, func(
		_ repository.ProductRepository,
		orderRepo repository.OrderRepository,
		_ repository.StockMovementRepository,
	) error {
		ord, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if ord == nil {
			return fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
		}
		if err := order.ValidateTransition(ord.Status, to); err != nil {
			return err
		}
		now := time.Now()
		if err := orderRepo.UpdateStatus(orderID, to, now); err != nil {
			return err
		}
		ord.Status = to
		ord.UpdatedAt = now
		updated = ord
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", updated.ID).
		Str("status", string(updated.Status)).
		Msg("estado de orden actualizado")

	items, err := uc.orderRepo.GetItemsByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated, items), nil
}

// CancelOrder revierte el efecto de una orden: reintegra el stock de cada
// línea y elimina cabecera y líneas, todo en una transacción. Una orden
// entregada ya no se puede cancelar. La cabecera se bloquea primero: si una
// transición concurrente la entregó, aquí se ve ese estado y se rechaza.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, orderID, actorID string) error {
	if orderID == "" {
		return domain.ErrMissingFields
	}

	var cancelled *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
	) error {
		ord, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if ord == nil {
			return fmt.Errorf("orden %s: %w", orderID, domain.ErrNotFound)
		}
		if err := order.CanCancel(ord.Status); err != nil {
			return err
		}
		items, err := orderRepo.GetItemsByOrderID(orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, it := range sortedByProduct(items) {
			_, err := uc.stock.ApplyDeltaInTx(productRepo, movRepo,
				it.ProductID, +it.Quantity, entity.MovementTypeIN,
				"cancel:"+orderID, "", actorID, now)
			if err != nil {
				return err
			}
		}
		// Las líneas caen por ON DELETE CASCADE.
		if err := orderRepo.Delete(orderID); err != nil {
			return err
		}
		cancelled = ord
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("order_id", cancelled.ID).
		Str("user_id", cancelled.UserID).
		Msg("orden cancelada, stock reintegrado")
	return nil
}
