package repositories

import (
	"context"
	"testing"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsuarioRepository_GetByEmailLowercases(t *testing.T) {
	db, mock := newMock(t)
	repo := UsuarioRepository{DB: db}

	mock.ExpectQuery(`SELECT id, email, nombre, password_hash, activo FROM usuarios WHERE email = \? LIMIT 1`).
		WithArgs("ana@pipas.local").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nombre", "password_hash", "activo"}).
			AddRow(3, "ana@pipas.local", "Ana", "$2a$hash", true))

	u, err := repo.GetByEmail(context.Background(), "  Ana@Pipas.local ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.True(t, u.Activo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepository_GetByEmailMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := UsuarioRepository{DB: db}

	mock.ExpectQuery(`FROM usuarios`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nadie@pipas.local")
	assert.True(t, domain.IsNotFound(err))
}

func TestUsuarioRepository_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := UsuarioRepository{DB: db}

	mock.ExpectExec(`INSERT INTO usuarios \(email,nombre,password_hash,activo\) VALUES \(\?,\?,\?,\?\) ON DUPLICATE KEY UPDATE`).
		WithArgs("ana@pipas.local", "Ana", "h", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), models.Usuario{Email: "ANA@pipas.local", Nombre: "Ana", PasswordHash: "h"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
