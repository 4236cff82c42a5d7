package services

import (
	"context"
	"testing"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGastoCrearAndValidate(t *testing.T) {
	repo := &memGastos{}
	svc := GastoService{Repo: repo}
	ctx := context.Background()

	g, err := svc.Crear(ctx, models.Gasto{Descripcion: " gasolina ", Monto: decimal.RequireFromString("7.25"), Fecha: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "gasolina", g.Descripcion)
	assert.Equal(t, int64(1), g.ID)

	for _, m := range []string{"0", "-1", "0.004", "7.255"} {
		_, err := svc.Crear(ctx, models.Gasto{Descripcion: "x", Monto: decimal.RequireFromString(m), Fecha: "2025-03-01"})
		assert.True(t, domain.IsValidation(err), m)
	}
	_, err = svc.Editar(ctx, g.ID, models.GastoFields{Descripcion: "x", Monto: decimal.Zero})
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 1, repo.writes)
}

func TestGastoEditarBorrar(t *testing.T) {
	repo := &memGastos{}
	svc := GastoService{Repo: repo}
	ctx := context.Background()

	g, err := svc.Crear(ctx, models.Gasto{Descripcion: "peaje", Monto: decimal.NewFromInt(5), Fecha: "2025-03-01"})
	require.NoError(t, err)

	f, err := svc.Editar(ctx, g.ID, models.GastoFields{Descripcion: "peaje ida", Monto: decimal.NewFromInt(6)})
	require.NoError(t, err)
	assert.Equal(t, "peaje ida", f.Descripcion)

	require.NoError(t, svc.Borrar(ctx, g.ID))
	list, err := svc.Listar(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.True(t, domain.IsNotFound(svc.Borrar(ctx, g.ID)))
}
