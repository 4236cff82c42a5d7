package repositories

import (
	"context"
	"errors"
	"testing"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGastoRepository_List(t *testing.T) {
	db, mock := newMock(t)
	repo := GastoRepository{DB: db}

	mock.ExpectQuery(`SELECT (.+) FROM gastos WHERE fecha = \? ORDER BY id DESC$`).
		WithArgs("2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "descripcion", "monto", "fecha"}).
			AddRow(2, "gasolina", "7.25", "2025-03-01"))

	out, err := repo.List(context.Background(), models.GastoFilter{Fecha: "2025-03-01"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "gasolina", out[0].Descripcion)
	assert.Equal(t, "7.25", out[0].Monto.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoRepository_CreateUpdateDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := GastoRepository{DB: db}

	mock.ExpectExec(`INSERT INTO gastos \(descripcion,monto,fecha\) VALUES \(\?,\?,\?\)`).
		WithArgs("peaje", sqlmock.AnyArg(), "2025-03-01").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec(`UPDATE gastos SET descripcion = \?, monto = \? WHERE id = \?`).
		WithArgs("peaje ida", sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM gastos WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	g, err := repo.Create(ctx, models.Gasto{Descripcion: "peaje", Monto: decimal.RequireFromString("4.5"), Fecha: "2025-03-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.ID)

	require.NoError(t, repo.Update(ctx, 3, models.GastoFields{Descripcion: "peaje ida", Monto: decimal.RequireFromString("5")}))
	require.NoError(t, repo.Delete(ctx, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGastoRepository_UpdateWriteFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := GastoRepository{DB: db}

	mock.ExpectExec(`UPDATE gastos`).WillReturnError(errors.New("lock wait timeout"))

	err := repo.Update(context.Background(), 3, models.GastoFields{Descripcion: "x", Monto: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.True(t, domain.IsWriteFailure(err))
}
