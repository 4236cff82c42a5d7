package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ExecQueryer is the subset of *sql.DB the schema helpers need.
type ExecQueryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type table struct {
	name string
	ddl  string
}

// viajes_cerrados relies on uq_fecha_viaje for the close-trip upsert.
var tables = []table{
	{"ventas", `
		CREATE TABLE IF NOT EXISTS ventas (
		  id BIGINT AUTO_INCREMENT PRIMARY KEY,
		  pipas INT NOT NULL,
		  referencia VARCHAR(255) NOT NULL DEFAULT '',
		  precio_unitario DECIMAL(12,2) NOT NULL,
		  fecha DATE NOT NULL,
		  viaje TINYINT NOT NULL,
		  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		  KEY idx_ventas_fecha_viaje (fecha, viaje)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"gastos", `
		CREATE TABLE IF NOT EXISTS gastos (
		  id BIGINT AUTO_INCREMENT PRIMARY KEY,
		  descripcion VARCHAR(255) NOT NULL DEFAULT '',
		  monto DECIMAL(12,2) NOT NULL,
		  fecha DATE NOT NULL,
		  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		  KEY idx_gastos_fecha (fecha)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"viajes_cerrados", `
		CREATE TABLE IF NOT EXISTS viajes_cerrados (
		  id BIGINT AUTO_INCREMENT PRIMARY KEY,
		  fecha DATE NOT NULL,
		  viaje TINYINT NOT NULL,
		  cerrado BOOLEAN NOT NULL DEFAULT FALSE,
		  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		  UNIQUE KEY uq_fecha_viaje (fecha, viaje)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"usuarios", `
		CREATE TABLE IF NOT EXISTS usuarios (
		  id BIGINT AUTO_INCREMENT PRIMARY KEY,
		  email VARCHAR(191) NOT NULL,
		  nombre VARCHAR(191) NOT NULL DEFAULT '',
		  password_hash VARCHAR(255) NOT NULL,
		  activo BOOLEAN NOT NULL DEFAULT TRUE,
		  UNIQUE KEY uq_usuarios_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// TableNames lists the tables EnsureSchema manages, in creation order.
func TableNames() []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.name)
	}
	return out
}

// EnsureSchema creates missing tables and returns the names it created.
func EnsureSchema(ctx context.Context, q ExecQueryer) ([]string, error) {
	created := []string{}
	for _, t := range tables {
		if HasTable(ctx, q, t.name) {
			continue
		}
		if _, err := q.ExecContext(ctx, t.ddl); err != nil {
			return created, fmt.Errorf("create table %s: %w", t.name, err)
		}
		created = append(created, t.name)
	}
	return created, nil
}

func HasTable(ctx context.Context, q ExecQueryer, name string) bool {
	var found sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, name).Scan(&found)
	if err != nil {
		return false
	}
	return found.Valid && found.String != ""
}
