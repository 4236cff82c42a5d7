package services

import (
	"context"

	"pipas/internal/domain"

	"go.uber.org/zap"
)

// ViajeService owns the OPEN → CLOSED lifecycle of each (fecha, viaje).
// There is no way back to OPEN.
type ViajeService struct {
	Repo ViajeStore
	Log  *zap.Logger
}

func (s ViajeService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// Estado reports CLOSED only for a stored row with cerrado=true. A read
// failure other than "not found" is returned as is.
func (s ViajeService) Estado(ctx context.Context, fecha string, viaje int) (domain.EstadoViaje, error) {
	row, err := s.Repo.Get(ctx, fecha, viaje)
	if domain.IsNotFound(err) {
		return domain.EstadoAbierto, nil
	}
	if err != nil {
		return domain.EstadoAbierto, err
	}
	if row.Cerrado {
		return domain.EstadoCerrado, nil
	}
	return domain.EstadoAbierto, nil
}

// EstadosDelDia returns the state of trips 1..5 of fecha, in order.
func (s ViajeService) EstadosDelDia(ctx context.Context, fecha string) ([]EstadoViajeDia, error) {
	rows, err := s.Repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	cerrados := map[int]bool{}
	for _, r := range rows {
		if r.Cerrado {
			cerrados[r.Viaje] = true
		}
	}
	out := make([]EstadoViajeDia, 0, domain.ViajeMax)
	for v := domain.ViajeMin; v <= domain.ViajeMax; v++ {
		st := domain.EstadoAbierto
		if cerrados[v] {
			st = domain.EstadoCerrado
		}
		out = append(out, EstadoViajeDia{Viaje: v, Estado: st})
	}
	return out, nil
}

type EstadoViajeDia struct {
	Viaje  int                `json:"viaje"`
	Estado domain.EstadoViaje `json:"estado"`
}

// Cerrar closes (fecha, viaje). Closing a closed trip is a no-op without a
// write; changed reports whether a write happened. Concurrent closes of the
// same key all end CLOSED because the write is a single upsert.
func (s ViajeService) Cerrar(ctx context.Context, fecha string, viaje int) (changed bool, err error) {
	fecha, err = validateFecha(fecha)
	if err != nil {
		return false, err
	}
	if err := validateViaje(viaje); err != nil {
		return false, err
	}

	estado, err := s.Estado(ctx, fecha, viaje)
	if err != nil {
		s.log().Error("close trip aborted: state check failed",
			zap.String("fecha", fecha), zap.Int("viaje", viaje), zap.Error(err))
		return false, err
	}
	if estado == domain.EstadoCerrado {
		return false, nil
	}

	if err := s.Repo.UpsertCerrado(ctx, fecha, viaje); err != nil {
		s.log().Error("close trip write failed",
			zap.String("fecha", fecha), zap.Int("viaje", viaje), zap.Error(err))
		return false, err
	}
	s.log().Info("trip closed", zap.String("fecha", fecha), zap.Int("viaje", viaje))
	return true, nil
}

// Guard refuses sale mutations on a closed trip. When the state cannot be
// read the mutation is refused too.
func (s ViajeService) Guard(ctx context.Context, fecha string, viaje int) error {
	estado, err := s.Estado(ctx, fecha, viaje)
	if err != nil {
		return err
	}
	if estado == domain.EstadoCerrado {
		return domain.ViajeCerradoError{Fecha: fecha, Viaje: viaje}
	}
	return nil
}
