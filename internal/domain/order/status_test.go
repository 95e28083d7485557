package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// ParseStatus
// ─────────────────────────────────────────────────────────────────────────────

func TestParseStatus_Reconocidos(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(string(s))
		require.NoError(t, err, "estado %q debe ser reconocido", s)
		assert.Equal(t, s, got)
	}
}

func TestParseStatus_NoReconocido(t *testing.T) {
	for _, raw := range []string{"", "archived", "PENDING", "Pending", "canceled"} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus, "cadena %q no debe parsear", raw)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidateTransition
// ─────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_DesdeNoTerminal(t *testing.T) {
	// Desde un estado no terminal se admite cualquier destino reconocido,
	// incluido repetir el estado actual.
	fromStates := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
	}
	for _, from := range fromStates {
		for _, to := range Statuses() {
			assert.NoError(t, ValidateTransition(from, to), "%s → %s debe permitirse", from, to)
		}
	}
}

func TestValidateTransition_DesdeTerminal(t *testing.T) {
	for _, from := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		for _, to := range Statuses() {
			err := ValidateTransition(from, to)
			assert.ErrorIs(t, err, domain.ErrConflict, "%s → %s debe rechazarse", from, to)
		}
	}
}

func TestValidateTransition_DestinoNoReconocido(t *testing.T) {
	err := ValidateTransition(entity.OrderStatusPending, entity.OrderStatus("returned"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	// El destino se valida antes que el origen terminal.
	err = ValidateTransition(entity.OrderStatusDelivered, entity.OrderStatus("returned"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// ─────────────────────────────────────────────────────────────────────────────
// CanCancel
// ─────────────────────────────────────────────────────────────────────────────

func TestCanCancel_SoloDeliveredBloquea(t *testing.T) {
	assert.ErrorIs(t, CanCancel(entity.OrderStatusDelivered), domain.ErrCannotCancelDelivered)

	for _, s := range []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusCancelled,
	} {
		assert.NoError(t, CanCancel(s), "estado %q debe admitir cancelación", s)
	}
}
