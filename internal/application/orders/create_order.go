// Package orders contiene el libro de órdenes: validación y confirmación de
// órdenes multi-línea contra el catálogo, consulta, transiciones de estado y
// cancelación con reintegro de stock. Toda escritura que toca stock y orden a
// la vez ocurre dentro de una única transacción.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/order"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// OrderUseCase crea una orden y descuenta el inventario en una sola transacción.
type OrderUseCase struct {
	txRunner    OrderTxRunner
	stock       StockAdjuster
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	stock StockAdjuster,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		stock:       stock,
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		log:         log,
	}
}

// CreateOrder valida el carrito contra el catálogo, congela precio de cada
// línea y total, y confirma la orden descontando stock de todas las líneas en
// una única transacción. Si cualquier línea falla no queda ningún efecto:
// ni orden, ni líneas, ni descuento parcial.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.UserID == "" || len(in.Items) == 0 {
		return nil, domain.ErrMissingFields
	}
	for _, it := range in.Items {
		if it.ProductID == "" {
			return nil, domain.ErrMissingFields
		}
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %s: %w", in.UserID, domain.ErrUserNotFound)
	}

	// Fase de validación (solo lecturas): resolver cada producto y congelar su
	// precio vigente. El stock se verifica aquí para rechazar temprano, pero la
	// verificación que vale es la de la fase de commit, bajo bloqueo de fila.
	now := time.Now()
	ord := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          in.UserID,
		Status:          entity.OrderStatusPending,
		Total:           decimal.Zero,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", it.ProductID, domain.ErrNotFound)
		}
		if product.Stock < it.Quantity {
			return nil, fmt.Errorf("producto %s: %w", it.ProductID, domain.ErrInsufficientStock)
		}
		line := &entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   ord.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     product.Price, // instantánea: cambios posteriores del catálogo no la tocan
		}
		items = append(items, line)
		ord.Total = ord.Total.Add(line.Subtotal())
	}

	// Fase de commit: una sola transacción. Cada línea se descuenta con bloqueo
	// de fila y re-verificación (otro carrito pudo consumir el stock entre la
	// validación y este punto); luego se insertan cabecera y líneas. Cualquier
	// error revierte todo.
	err = uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Orden determinista al tomar los bloqueos: dos órdenes con productos
		// cruzados nunca se esperan en círculo.
		for _, it := range sortedByProduct(items) {
			_, err := uc.stock.ApplyDeltaInTx(productRepo, movRepo,
				it.ProductID, -it.Quantity, entity.MovementTypeOUT,
				"order:"+ord.ID, "", in.UserID, now)
			if err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("producto %s: %w", it.ProductID, err)
				}
				return err
			}
		}
		return orderRepo.Create(ord, items)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", ord.ID).
		Str("user_id", ord.UserID).
		Int("items", len(items)).
		Str("total", ord.Total.String()).
		Msg("orden confirmada")

	return toOrderResponse(ord, items), nil
}

// GetOrder obtiene una orden con sus líneas. Solo ve estado confirmado:
// una orden a medio commit nunca es visible.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if id == "" {
		return nil, domain.ErrMissingFields
	}
	ord, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, fmt.Errorf("orden %s: %w", id, domain.ErrNotFound)
	}
	items, err := uc.orderRepo.GetItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord, items), nil
}

// ListOrders lista cabeceras filtradas por usuario y/o estado.
func (uc *OrderUseCase) ListOrders(ctx context.Context, in dto.ListOrdersRequest) (*dto.OrderListResponse, error) {
	var status entity.OrderStatus
	if in.Status != "" {
		s, err := order.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}
	in.DefaultPage()
	list, err := uc.orderRepo.List(in.UserID, status, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderSummaryResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderSummary(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: len(items)},
	}, nil
}

// sortedByProduct devuelve una copia de las líneas ordenada por producto,
// el orden en que se toman los bloqueos de fila.
func sortedByProduct(items []*entity.OrderItem) []*entity.OrderItem {
	sorted := make([]*entity.OrderItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
	return sorted
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		Items:           make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Subtotal(),
		})
	}
	return resp
}

func toOrderSummary(o *entity.Order) dto.OrderSummaryResponse {
	return dto.OrderSummaryResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
