package repositories

import (
	"context"
	"database/sql"
	"errors"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
)

const tableViajesCerrados = "viajes_cerrados"

// ViajeRepository stores the closure flag of each (fecha, viaje).
type ViajeRepository struct {
	DB *sql.DB
}

func (r ViajeRepository) db() Querier { return pick(r.DB) }

// Get fetches the closure row of (fecha, viaje). A missing row is a
// NotFoundError wrapping sql.ErrNoRows.
func (r ViajeRepository) Get(ctx context.Context, fecha string, viaje int) (models.ViajeCerrado, error) {
	query, args, err := sq.Select("id", dateCol("fecha"), "viaje", "cerrado").
		From(tableViajesCerrados).
		Where(sq.Eq{"fecha": fecha, "viaje": viaje}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.ViajeCerrado{}, domain.ReadFailure(tableViajesCerrados, err)
	}

	var out models.ViajeCerrado
	err = r.db().QueryRowContext(ctx, query, args...).Scan(&out.ID, &out.Fecha, &out.Viaje, &out.Cerrado)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ViajeCerrado{}, domain.NotFoundError{Resource: "viaje_cerrado", Err: err}
	}
	if err != nil {
		return models.ViajeCerrado{}, domain.ReadFailure(tableViajesCerrados, err)
	}
	return out, nil
}

// ListByFecha returns every closure row stored for fecha.
func (r ViajeRepository) ListByFecha(ctx context.Context, fecha string) ([]models.ViajeCerrado, error) {
	query, args, err := sq.Select("id", dateCol("fecha"), "viaje", "cerrado").
		From(tableViajesCerrados).
		Where(sq.Eq{"fecha": fecha}).
		OrderBy("viaje ASC").
		ToSql()
	if err != nil {
		return nil, domain.ReadFailure(tableViajesCerrados, err)
	}

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.ReadFailure(tableViajesCerrados, err)
	}
	defer rows.Close()

	out := []models.ViajeCerrado{}
	for rows.Next() {
		var v models.ViajeCerrado
		if err := rows.Scan(&v.ID, &v.Fecha, &v.Viaje, &v.Cerrado); err != nil {
			return nil, domain.ReadFailure(tableViajesCerrados, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ReadFailure(tableViajesCerrados, err)
	}
	return out, nil
}

// UpsertCerrado marks (fecha, viaje) closed in one statement keyed by the
// uq_fecha_viaje index. The OR keeps an already-true flag true.
func (r ViajeRepository) UpsertCerrado(ctx context.Context, fecha string, viaje int) error {
	query, args, err := sq.Insert(tableViajesCerrados).
		Columns("fecha", "viaje", "cerrado").
		Values(fecha, viaje, true).
		Suffix("ON DUPLICATE KEY UPDATE cerrado = cerrado OR VALUES(cerrado)").
		ToSql()
	if err != nil {
		return domain.WriteFailure(tableViajesCerrados, err)
	}
	if _, err := r.db().ExecContext(ctx, query, args...); err != nil {
		return domain.WriteFailure(tableViajesCerrados, err)
	}
	return nil
}
