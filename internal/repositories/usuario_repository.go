package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
)

const tableUsuarios = "usuarios"

type UsuarioRepository struct {
	DB *sql.DB
}

func (r UsuarioRepository) db() Querier { return pick(r.DB) }

func (r UsuarioRepository) GetByEmail(ctx context.Context, email string) (models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	query, args, err := sq.Select("id", "email", "nombre", "password_hash", "activo").
		From(tableUsuarios).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Usuario{}, domain.ReadFailure(tableUsuarios, err)
	}

	var u models.Usuario
	err = r.db().QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.Nombre, &u.PasswordHash, &u.Activo)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Usuario{}, domain.NotFoundError{Resource: "usuario", Err: err}
	}
	if err != nil {
		return models.Usuario{}, domain.ReadFailure(tableUsuarios, err)
	}
	return u, nil
}

// Upsert creates the user or refreshes name, hash and active flag by email.
func (r UsuarioRepository) Upsert(ctx context.Context, u models.Usuario) error {
	query, args, err := sq.Insert(tableUsuarios).
		Columns("email", "nombre", "password_hash", "activo").
		Values(strings.ToLower(strings.TrimSpace(u.Email)), u.Nombre, u.PasswordHash, true).
		Suffix("ON DUPLICATE KEY UPDATE nombre = VALUES(nombre), password_hash = VALUES(password_hash), activo = TRUE").
		ToSql()
	if err != nil {
		return domain.WriteFailure(tableUsuarios, err)
	}
	if _, err := r.db().ExecContext(ctx, query, args...); err != nil {
		return domain.WriteFailure(tableUsuarios, err)
	}
	return nil
}
