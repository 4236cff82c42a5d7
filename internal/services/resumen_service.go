package services

import (
	"context"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ResumenParams are the dashboard selections, passed explicitly on every call.
type ResumenParams struct {
	Fecha    string
	Viaje    int
	Page     int
	PageSize int
}

// Resumen is the dashboard view of one day with one trip selected.
//
// Ventas is the selected trip's current page. VentasDia, Grupos and Totales
// cover the whole day, so TotalDia does not depend on the selected trip.
// Warnings lists the collections that could not be read and were shown empty.
type Resumen struct {
	Fecha        string             `json:"fecha"`
	Viaje        int                `json:"viaje"`
	Estado       domain.EstadoViaje `json:"estado"`
	ViajeCerrado bool               `json:"viajeCerrado"`
	Estados      []EstadoViajeDia   `json:"estados"`

	Ventas     []models.Venta    `json:"ventas"`
	Pagination domain.Pagination `json:"pagination"`
	PipasViaje int               `json:"pipasViaje"`
	TotalViaje decimal.Decimal   `json:"totalViaje"`

	VentasDia []models.Venta      `json:"ventasDia"`
	Gastos    []models.Gasto      `json:"gastos"`
	Grupos    []domain.GrupoViaje `json:"grupos"`
	Totales   domain.Totales      `json:"totales"`

	Warnings []string `json:"warnings,omitempty"`
}

type ResumenService struct {
	Ventas      VentaStore
	Gastos      GastoStore
	Viajes      ViajeService
	Log         *zap.Logger
	MaxPageSize int
}

func (s ResumenService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s ResumenService) maxPageSize() int {
	if s.MaxPageSize > 0 {
		return s.MaxPageSize
	}
	return 100
}

// Cargar assembles the Resumen for p. Only invalid params fail the call; a
// failed read leaves its collection empty and adds a warning, so totals may
// under-report until the next successful load.
func (s ResumenService) Cargar(ctx context.Context, p ResumenParams) (Resumen, error) {
	fecha, err := validateFecha(p.Fecha)
	if err != nil {
		return Resumen{}, err
	}
	if err := validateViaje(p.Viaje); err != nil {
		return Resumen{}, err
	}

	out := Resumen{Fecha: fecha, Viaje: p.Viaje, Estado: domain.EstadoAbierto}
	degrade := func(what string, err error) {
		s.log().Warn("resumen read degraded", zap.String("collection", what), zap.String("fecha", fecha), zap.Error(err))
		out.Warnings = append(out.Warnings, what)
	}

	if st, err := s.Viajes.Estado(ctx, fecha, p.Viaje); err != nil {
		degrade("estado_viaje", err)
	} else {
		out.Estado = st
	}
	out.ViajeCerrado = out.Estado == domain.EstadoCerrado

	if estados, err := s.Viajes.EstadosDelDia(ctx, fecha); err != nil {
		degrade("estados_dia", err)
	} else {
		out.Estados = estados
	}

	page := domain.NewPagination(p.Page, p.PageSize, s.maxPageSize())
	filter := models.VentaFilter{Fecha: fecha, Viaje: p.Viaje}
	total, err := s.Ventas.Count(ctx, filter)
	if err != nil {
		degrade("conteo_ventas", err)
	}
	out.Pagination = page.WithTotal(total)

	filter.Limit, filter.Offset = page.Window()
	out.Ventas, err = s.Ventas.List(ctx, filter)
	if err != nil {
		degrade("ventas", err)
		out.Ventas = []models.Venta{}
	}

	out.VentasDia, err = s.Ventas.List(ctx, models.VentaFilter{Fecha: fecha})
	if err != nil {
		degrade("ventas_dia", err)
		out.VentasDia = []models.Venta{}
	}

	out.Gastos, err = s.Gastos.List(ctx, models.GastoFilter{Fecha: fecha})
	if err != nil {
		degrade("gastos", err)
		out.Gastos = []models.Gasto{}
	}

	out.Grupos = domain.AgruparPorViaje(out.VentasDia)
	out.Totales = domain.ComputeTotales(out.VentasDia, out.Gastos)
	out.TotalViaje = decimal.Zero
	for _, g := range out.Grupos {
		if g.Viaje == p.Viaje {
			out.PipasViaje = g.Pipas
			out.TotalViaje = g.Subtotal
		}
	}
	return out, nil
}
