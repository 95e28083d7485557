package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de orden. Price es la instantánea del precio
// unitario del producto tomada al validar la orden: cambios posteriores
// en el catálogo no la afectan, ni afectan el Total de la cabecera.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
}

// Subtotal retorna Price × Quantity de la línea.
func (it OrderItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}
