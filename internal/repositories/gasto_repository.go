package repositories

import (
	"context"
	"database/sql"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
)

const tableGastos = "gastos"

type GastoRepository struct {
	DB *sql.DB
}

func (r GastoRepository) db() Querier { return pick(r.DB) }

func gastoWhere(b sq.SelectBuilder, f models.GastoFilter) sq.SelectBuilder {
	if f.Fecha != "" {
		b = b.Where(sq.Eq{"fecha": f.Fecha})
	}
	return b
}

func (r GastoRepository) List(ctx context.Context, f models.GastoFilter) ([]models.Gasto, error) {
	b := sq.Select("id", "descripcion", "monto", dateCol("fecha")).
		From(tableGastos).
		OrderBy("id DESC")
	b = gastoWhere(b, f)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, domain.ReadFailure(tableGastos, err)
	}

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.ReadFailure(tableGastos, err)
	}
	defer rows.Close()

	out := []models.Gasto{}
	for rows.Next() {
		var g models.Gasto
		if err := rows.Scan(&g.ID, &g.Descripcion, &g.Monto, &g.Fecha); err != nil {
			return nil, domain.ReadFailure(tableGastos, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ReadFailure(tableGastos, err)
	}
	return out, nil
}

func (r GastoRepository) Create(ctx context.Context, g models.Gasto) (models.Gasto, error) {
	query, args, err := sq.Insert(tableGastos).
		Columns("descripcion", "monto", "fecha").
		Values(g.Descripcion, g.Monto, g.Fecha).
		ToSql()
	if err != nil {
		return g, domain.WriteFailure(tableGastos, err)
	}

	res, err := r.db().ExecContext(ctx, query, args...)
	if err != nil {
		return g, domain.WriteFailure(tableGastos, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return g, domain.WriteFailure(tableGastos, err)
	}
	g.ID = id
	return g, nil
}

func (r GastoRepository) Update(ctx context.Context, id int64, f models.GastoFields) error {
	query, args, err := sq.Update(tableGastos).
		Set("descripcion", f.Descripcion).
		Set("monto", f.Monto).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.WriteFailure(tableGastos, err)
	}
	return execOne(ctx, r.db(), tableGastos, "gasto", id, query, args)
}

func (r GastoRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete(tableGastos).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.WriteFailure(tableGastos, err)
	}
	return execOne(ctx, r.db(), tableGastos, "gasto", id, query, args)
}
