package repositories

import (
	"context"
	"database/sql"
	"errors"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
)

const tableVentas = "ventas"

// VentaRepository wraps DB access for the ventas table.
type VentaRepository struct {
	DB *sql.DB
}

func (r VentaRepository) db() Querier { return pick(r.DB) }

func ventaWhere(b sq.SelectBuilder, f models.VentaFilter) sq.SelectBuilder {
	if f.Fecha != "" {
		b = b.Where(sq.Eq{"fecha": f.Fecha})
	}
	if f.Viaje > 0 {
		b = b.Where(sq.Eq{"viaje": f.Viaje})
	}
	return b
}

// List returns sales matching f, newest id first.
func (r VentaRepository) List(ctx context.Context, f models.VentaFilter) ([]models.Venta, error) {
	b := sq.Select("id", "pipas", "referencia", "precio_unitario", dateCol("fecha"), "viaje").
		From(tableVentas).
		OrderBy("id DESC")
	b = ventaWhere(b, f)
	if f.Limit > 0 {
		b = b.Limit(f.Limit).Offset(f.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, domain.ReadFailure(tableVentas, err)
	}

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.ReadFailure(tableVentas, err)
	}
	defer rows.Close()

	out := []models.Venta{}
	for rows.Next() {
		var v models.Venta
		if err := rows.Scan(&v.ID, &v.Pipas, &v.Referencia, &v.PrecioUnitario, &v.Fecha, &v.Viaje); err != nil {
			return nil, domain.ReadFailure(tableVentas, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ReadFailure(tableVentas, err)
	}
	return out, nil
}

// Count ignores Limit/Offset in f.
func (r VentaRepository) Count(ctx context.Context, f models.VentaFilter) (int, error) {
	query, args, err := ventaWhere(sq.Select("COUNT(*)").From(tableVentas), f).ToSql()
	if err != nil {
		return 0, domain.ReadFailure(tableVentas, err)
	}
	var n int
	if err := r.db().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, domain.ReadFailure(tableVentas, err)
	}
	return n, nil
}

func (r VentaRepository) GetByID(ctx context.Context, id int64) (models.Venta, error) {
	query, args, err := sq.Select("id", "pipas", "referencia", "precio_unitario", dateCol("fecha"), "viaje").
		From(tableVentas).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Venta{}, domain.ReadFailure(tableVentas, err)
	}

	var v models.Venta
	err = r.db().QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.Pipas, &v.Referencia, &v.PrecioUnitario, &v.Fecha, &v.Viaje)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venta{}, domain.NotFoundError{Resource: "venta", ID: id, Err: err}
	}
	if err != nil {
		return models.Venta{}, domain.ReadFailure(tableVentas, err)
	}
	return v, nil
}

// Create inserts v only while (v.Fecha, v.Viaje) is not closed. The check and
// the insert are one statement, so a concurrent close cannot slip between
// them; a skipped insert is reported as ViajeCerradoError.
func (r VentaRepository) Create(ctx context.Context, v models.Venta) (models.Venta, error) {
	values := sq.Select().
		Column("?", v.Pipas).
		Column("?", v.Referencia).
		Column("?", v.PrecioUnitario).
		Column("?", v.Fecha).
		Column("?", v.Viaje).
		From("DUAL").
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM "+tableViajesCerrados+" WHERE fecha = ? AND viaje = ? AND cerrado)", v.Fecha, v.Viaje))
	query, args, err := sq.Insert(tableVentas).
		Columns("pipas", "referencia", "precio_unitario", "fecha", "viaje").
		Select(values).
		ToSql()
	if err != nil {
		return v, domain.WriteFailure(tableVentas, err)
	}

	res, err := r.db().ExecContext(ctx, query, args...)
	if err != nil {
		return v, domain.WriteFailure(tableVentas, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return v, domain.WriteFailure(tableVentas, err)
	}
	if n == 0 {
		return v, domain.ViajeCerradoError{Fecha: v.Fecha, Viaje: v.Viaje}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return v, domain.WriteFailure(tableVentas, err)
	}
	v.ID = id
	return v, nil
}

// ventaTripOpen limits a write to sales whose trip is not closed.
var ventaTripOpen = sq.Expr("NOT EXISTS (SELECT 1 FROM " + tableViajesCerrados + " vc WHERE vc.fecha = ventas.fecha AND vc.viaje = ventas.viaje AND vc.cerrado)")

// Update replaces the editable fields of sale id. A sale under a closed trip
// is not matched, so the result is NotFoundError; callers that already saw
// the row can tell the two apart by re-reading the trip state.
func (r VentaRepository) Update(ctx context.Context, id int64, f models.VentaFields) error {
	query, args, err := sq.Update(tableVentas).
		Set("pipas", f.Pipas).
		Set("referencia", f.Referencia).
		Set("precio_unitario", f.PrecioUnitario).
		Where(sq.Eq{"id": id}).
		Where(ventaTripOpen).
		ToSql()
	if err != nil {
		return domain.WriteFailure(tableVentas, err)
	}
	return execOne(ctx, r.db(), tableVentas, "venta", id, query, args)
}

// Delete removes sale id under the same open-trip condition as Update.
func (r VentaRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete(tableVentas).Where(sq.Eq{"id": id}).Where(ventaTripOpen).ToSql()
	if err != nil {
		return domain.WriteFailure(tableVentas, err)
	}
	return execOne(ctx, r.db(), tableVentas, "venta", id, query, args)
}

// execOne runs a single-row write and requires the driver to confirm a row
// was matched.
func execOne(ctx context.Context, q Querier, table, resource string, id int64, query string, args []any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.WriteFailure(table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.WriteFailure(table, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}
