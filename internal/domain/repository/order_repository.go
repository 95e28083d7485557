package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create inserta cabecera y líneas; se invoca dentro de la transacción
	// que también descuenta stock, para que ambas escrituras sean una sola.
	Create(order *entity.Order, items []*entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate carga la cabecera bloqueando la fila (SELECT FOR UPDATE):
	// serializa cancelación y cambios de estado sobre la misma orden.
	GetForUpdate(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	// List filtra por usuario y/o estado; cadena vacía significa sin filtro.
	List(userID string, status entity.OrderStatus, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error
	// Delete elimina la cabecera; las líneas caen por ON DELETE CASCADE.
	Delete(id string) error
}
