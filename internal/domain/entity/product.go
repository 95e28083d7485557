package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es el contador único de unidades vendibles; solo se modifica vía
// movimientos de stock (ajuste manual, commit o cancelación de una orden),
// nunca por el CRUD del catálogo. Stock >= 0 siempre.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta vigente; las órdenes congelan su propia copia
	Stock       int64
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
