package repositories

import (
	"context"
	"errors"
	"testing"

	"pipas/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viajeCols = []string{"id", "fecha", "viaje", "cerrado"}

func TestViajeRepository_GetMissingIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM viajes_cerrados WHERE fecha = \? AND viaje = \? LIMIT 1`).
		WithArgs("2025-03-01", 2).
		WillReturnRows(sqlmock.NewRows(viajeCols))

	_, err := repo.Get(context.Background(), "2025-03-01", 2)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsReadFailure(err))
}

func TestViajeRepository_GetReadFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM viajes_cerrados`).WillReturnError(errors.New("timeout"))

	_, err := repo.Get(context.Background(), "2025-03-01", 2)
	require.Error(t, err)
	assert.True(t, domain.IsReadFailure(err))
}

func TestViajeRepository_GetClosed(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM viajes_cerrados`).
		WithArgs("2025-03-01", 1).
		WillReturnRows(sqlmock.NewRows(viajeCols).AddRow(4, "2025-03-01", 1, true))

	v, err := repo.Get(context.Background(), "2025-03-01", 1)
	require.NoError(t, err)
	assert.True(t, v.Cerrado)
	assert.Equal(t, int64(4), v.ID)
}

func TestViajeRepository_ListByFecha(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM viajes_cerrados WHERE fecha = \? ORDER BY viaje ASC`).
		WithArgs("2025-03-01").
		WillReturnRows(sqlmock.NewRows(viajeCols).
			AddRow(1, "2025-03-01", 1, true).
			AddRow(2, "2025-03-01", 3, false))

	out, err := repo.ListByFecha(context.Background(), "2025-03-01")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.False(t, out[1].Cerrado)
}

func TestViajeRepository_UpsertCerradoIsSingleStatement(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectExec(`INSERT INTO viajes_cerrados \(fecha,viaje,cerrado\) VALUES \(\?,\?,\?\) ON DUPLICATE KEY UPDATE cerrado = cerrado OR VALUES\(cerrado\)`).
		WithArgs("2025-03-01", 2, true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertCerrado(context.Background(), "2025-03-01", 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViajeRepository_UpsertCerradoWriteFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := ViajeRepository{DB: db}

	mock.ExpectExec(`INSERT INTO viajes_cerrados`).WillReturnError(errors.New("read-only"))

	err := repo.UpsertCerrado(context.Background(), "2025-03-01", 2)
	assert.True(t, domain.IsWriteFailure(err))
}
