package services

import (
	"context"
	"errors"
	"testing"

	"pipas/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViajeEstadoWithoutRecordIsOpen(t *testing.T) {
	svc := ViajeService{Repo: newMemViajes()}

	st, err := svc.Estado(context.Background(), "2025-03-01", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.EstadoAbierto, st)
}

func TestViajeCerrarThenClosedIsNoop(t *testing.T) {
	repo := newMemViajes()
	svc := ViajeService{Repo: repo}
	ctx := context.Background()

	changed, err := svc.Cerrar(ctx, "2025-03-01", 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, repo.upserts)

	changed, err = svc.Cerrar(ctx, "2025-03-01", 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, repo.upserts, "closing a closed trip must not write")

	st, err := svc.Estado(ctx, "2025-03-01", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EstadoCerrado, st)
}

func TestViajeCerrarAbortsOnReadFailure(t *testing.T) {
	repo := newMemViajes()
	repo.getErr = domain.ReadFailure("viajes_cerrados", errors.New("conn reset"))
	svc := ViajeService{Repo: repo}

	changed, err := svc.Cerrar(context.Background(), "2025-03-01", 3)
	require.Error(t, err)
	assert.True(t, domain.IsReadFailure(err))
	assert.False(t, changed)
	assert.Zero(t, repo.upserts)
}

func TestViajeCerrarRejectsOutOfRange(t *testing.T) {
	repo := newMemViajes()
	svc := ViajeService{Repo: repo}

	for _, v := range []int{0, 6, -1} {
		_, err := svc.Cerrar(context.Background(), "2025-03-01", v)
		assert.True(t, domain.IsValidation(err), "viaje %d", v)
	}
	assert.Zero(t, repo.upserts)
}

func TestViajeGuard(t *testing.T) {
	repo := newMemViajes()
	svc := ViajeService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.Guard(ctx, "2025-03-01", 1))

	_, err := svc.Cerrar(ctx, "2025-03-01", 1)
	require.NoError(t, err)

	err = svc.Guard(ctx, "2025-03-01", 1)
	require.Error(t, err)
	assert.True(t, domain.IsViajeCerrado(err))
	assert.Contains(t, err.Error(), "El viaje 1")

	// other trips and other days stay open
	assert.NoError(t, svc.Guard(ctx, "2025-03-01", 2))
	assert.NoError(t, svc.Guard(ctx, "2025-03-02", 1))
}

func TestViajeEstadosDelDia(t *testing.T) {
	repo := newMemViajes()
	repo.cerrados[viajeKey{"2025-03-01", 2}] = true
	repo.cerrados[viajeKey{"2025-03-01", 4}] = false
	repo.cerrados[viajeKey{"2025-03-02", 1}] = true
	svc := ViajeService{Repo: repo}

	estados, err := svc.EstadosDelDia(context.Background(), "2025-03-01")
	require.NoError(t, err)
	require.Len(t, estados, 5)
	for _, e := range estados {
		want := domain.EstadoAbierto
		if e.Viaje == 2 {
			want = domain.EstadoCerrado
		}
		assert.Equal(t, want, e.Estado, "viaje %d", e.Viaje)
	}
}
