package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock vive en la misma fila del producto: es el único contador vendible.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Solo tiene sentido con un Querier transaccional.
	GetForUpdate(id string) (*entity.Product, error)
	// Update actualiza los campos de catálogo; nunca toca stock.
	Update(product *entity.Product) error
	// UpdateStock fija el contador de stock ya validado por el caso de uso.
	UpdateStock(productID string, stock int64) error
	// List pagina el catálogo; category vacía significa sin filtro.
	List(category string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
