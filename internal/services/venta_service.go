package services

import (
	"context"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"go.uber.org/zap"
)

// VentaService applies validation and the closed-trip guard before any sale
// reaches the store.
type VentaService struct {
	Repo        VentaStore
	Viajes      ViajeService
	Log         *zap.Logger
	MaxPageSize int
}

// VentaPage is one listing window plus the paging totals.
type VentaPage struct {
	Ventas     []models.Venta    `json:"ventas"`
	Pagination domain.Pagination `json:"pagination"`
}

func (s VentaService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s VentaService) maxPageSize() int {
	if s.MaxPageSize > 0 {
		return s.MaxPageSize
	}
	return 100
}

func (s VentaService) Crear(ctx context.Context, in models.Venta) (models.Venta, error) {
	fields, err := validateVentaFields(models.VentaFields{Pipas: in.Pipas, Referencia: in.Referencia, PrecioUnitario: in.PrecioUnitario})
	if err != nil {
		return in, err
	}
	fecha, err := validateFecha(in.Fecha)
	if err != nil {
		return in, err
	}
	if err := validateViaje(in.Viaje); err != nil {
		return in, err
	}

	// The store repeats this check inside the insert; Guard answers early.
	if err := s.Viajes.Guard(ctx, fecha, in.Viaje); err != nil {
		return in, err
	}

	v := models.Venta{
		Pipas:          fields.Pipas,
		Referencia:     fields.Referencia,
		PrecioUnitario: fields.PrecioUnitario,
		Fecha:          fecha,
		Viaje:          in.Viaje,
	}
	created, err := s.Repo.Create(ctx, v)
	if err != nil {
		s.log().Error("create venta failed", zap.String("fecha", fecha), zap.Int("viaje", in.Viaje), zap.Error(err))
		return v, err
	}
	return created, nil
}

// Editar replaces pipas, referencia and precio_unitario of sale id. The sale
// keeps its fecha and viaje.
func (s VentaService) Editar(ctx context.Context, id int64, f models.VentaFields) (models.Venta, error) {
	f, err := validateVentaFields(f)
	if err != nil {
		return models.Venta{}, err
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Venta{}, err
	}
	if err := s.Viajes.Guard(ctx, current.Fecha, current.Viaje); err != nil {
		return current, err
	}

	if err := s.Repo.Update(ctx, id, f); err != nil {
		err = s.missedWrite(ctx, current, err)
		s.log().Error("update venta failed", zap.Int64("id", id), zap.Error(err))
		return current, err
	}

	current.Pipas = f.Pipas
	current.Referencia = f.Referencia
	current.PrecioUnitario = f.PrecioUnitario
	return current, nil
}

func (s VentaService) Borrar(ctx context.Context, id int64) error {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Viajes.Guard(ctx, current.Fecha, current.Viaje); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		err = s.missedWrite(ctx, current, err)
		s.log().Error("delete venta failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// missedWrite explains a write that matched no row although current was
// read just before: the store skips sales of closed trips, so a close that
// landed after Guard shows up here as not found.
func (s VentaService) missedWrite(ctx context.Context, current models.Venta, err error) error {
	if !domain.IsNotFound(err) {
		return err
	}
	if gerr := s.Viajes.Guard(ctx, current.Fecha, current.Viaje); gerr != nil {
		return gerr
	}
	return err
}

// Listar pages the sales of fecha, optionally narrowed to one trip (viaje 0
// means every trip).
func (s VentaService) Listar(ctx context.Context, fecha string, viaje, page, pageSize int) (VentaPage, error) {
	fecha, err := validateFecha(fecha)
	if err != nil {
		return VentaPage{}, err
	}
	if viaje != 0 {
		if err := validateViaje(viaje); err != nil {
			return VentaPage{}, err
		}
	}

	p := domain.NewPagination(page, pageSize, s.maxPageSize())
	f := models.VentaFilter{Fecha: fecha, Viaje: viaje}

	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return VentaPage{}, err
	}
	f.Limit, f.Offset = p.Window()
	ventas, err := s.Repo.List(ctx, f)
	if err != nil {
		return VentaPage{}, err
	}
	return VentaPage{Ventas: ventas, Pagination: p.WithTotal(total)}, nil
}
