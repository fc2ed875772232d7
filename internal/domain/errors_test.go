package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/superandes-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías vía errors.Is
// ──────────────────────────────────────────────────────────────────────────────

func TestError_CategoriaNotFound(t *testing.T) {
	err := domain.BranchNotFound(42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Equal(t, int64(42), err.BranchID)
}

func TestError_CategoriaPreconditionFailed(t *testing.T) {
	err := domain.AboveReorderLevel(1, 10, dec("15"), dec("10"))

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.True(t, err.Observed.Equal(dec("15")), "Observed lleva las existencias")
	assert.True(t, err.Threshold.Equal(dec("10")), "Threshold lleva el nivel de reorden")
}

func TestError_CategoriaInvariantViolation(t *testing.T) {
	err := domain.CapacityExceeded(100, 10, dec("120"), dec("100"))

	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Equal(t, int64(100), err.UnitID)
}

func TestError_CategoriaSobrevivePorWrap(t *testing.T) {
	err := fmt.Errorf("confirmar venta: %w", domain.NotSold(1, 10))

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed,
		"la categoría debe sobrevivir un wrap adicional")
	assert.Equal(t, domain.KindNotSold, domain.KindOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// KindOf
// ──────────────────────────────────────────────────────────────────────────────

func TestKindOf_ErrorDeDominio(t *testing.T) {
	assert.Equal(t, domain.KindInsufficientStock,
		domain.KindOf(domain.InsufficientStock(1, 10, dec("25"), dec("20"))))
	assert.Equal(t, domain.KindSupplierMismatch,
		domain.KindOf(domain.SupplierMismatch(2, 10)))
}

func TestKindOf_ErrorAjeno(t *testing.T) {
	assert.Equal(t, domain.Kind(""), domain.KindOf(errors.New("otra cosa")))
	assert.Equal(t, domain.Kind(""), domain.KindOf(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos estructurados y mensajes
// ──────────────────────────────────────────────────────────────────────────────

func TestError_CamposEstructurados(t *testing.T) {
	err := domain.InsufficientCapacity(1, 5, dec("100"), dec("60"))

	assert.Equal(t, int64(1), err.BranchID)
	assert.Equal(t, int64(5), err.ProductTypeID)
	assert.True(t, err.Required.Equal(dec("100")))
	assert.True(t, err.Available.Equal(dec("60")))
}

func TestError_MensajeIncluyeContexto(t *testing.T) {
	err := domain.InsufficientStock(1, 10, dec("25"), dec("20"))

	msg := err.Error()
	assert.Contains(t, msg, "INSUFFICIENT_STOCK")
	assert.Contains(t, msg, "25")
	assert.Contains(t, msg, "20")
}

func TestTransientFailure_ConservaCausa(t *testing.T) {
	cause := errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")
	err := domain.TransientFailure(cause)

	assert.ErrorIs(t, err, domain.ErrTransientFailure)
	assert.ErrorIs(t, err, cause, "la causa original debe ser alcanzable con errors.Is")
	require.Contains(t, err.Error(), "deadlock")
}
