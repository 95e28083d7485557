package entity

import "time"

// MovementType clasifica un movimiento de stock.
type MovementType string

const (
	MovementTypeIN         MovementType = "IN"         // reingreso (cancelación de orden)
	MovementTypeOUT        MovementType = "OUT"        // salida (commit de una orden)
	MovementTypeADJUSTMENT MovementType = "ADJUSTMENT" // ajuste manual
)

// StockMovement es el registro de auditoría de cada cambio de stock.
// Quantity es el delta firmado aplicado al contador: negativo en OUT,
// positivo en IN, cualquiera de los dos en ADJUSTMENT. La suma de los
// movimientos de un producto reproduce su stock desde el inicial.
// Reference enlaza el movimiento con su origen (p.ej. "order:<id>", "cancel:<id>", "manual").
type StockMovement struct {
	ID        string
	ProductID string
	Type      MovementType
	Quantity  int64
	Reference string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
