package services

import (
	"context"

	"pipas/internal/domain/models"

	"go.uber.org/zap"
)

// GastoService validates expenses. Expenses have no trip, so nothing here
// depends on trip state.
type GastoService struct {
	Repo GastoStore
	Log  *zap.Logger
}

func (s GastoService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s GastoService) Crear(ctx context.Context, in models.Gasto) (models.Gasto, error) {
	fields, err := validateGastoFields(models.GastoFields{Descripcion: in.Descripcion, Monto: in.Monto})
	if err != nil {
		return in, err
	}
	fecha, err := validateFecha(in.Fecha)
	if err != nil {
		return in, err
	}

	g := models.Gasto{Descripcion: fields.Descripcion, Monto: fields.Monto, Fecha: fecha}
	created, err := s.Repo.Create(ctx, g)
	if err != nil {
		s.log().Error("create gasto failed", zap.String("fecha", fecha), zap.Error(err))
		return g, err
	}
	return created, nil
}

func (s GastoService) Editar(ctx context.Context, id int64, f models.GastoFields) (models.GastoFields, error) {
	f, err := validateGastoFields(f)
	if err != nil {
		return f, err
	}
	if err := s.Repo.Update(ctx, id, f); err != nil {
		s.log().Error("update gasto failed", zap.Int64("id", id), zap.Error(err))
		return f, err
	}
	return f, nil
}

func (s GastoService) Borrar(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		s.log().Error("delete gasto failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s GastoService) Listar(ctx context.Context, fecha string) ([]models.Gasto, error) {
	fecha, err := validateFecha(fecha)
	if err != nil {
		return nil, err
	}
	return s.Repo.List(ctx, models.GastoFilter{Fecha: fecha})
}
