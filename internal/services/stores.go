package services

import (
	"context"

	"pipas/internal/domain/models"
)

// VentaStore is the gateway to persisted sales.
type VentaStore interface {
	List(ctx context.Context, f models.VentaFilter) ([]models.Venta, error)
	Count(ctx context.Context, f models.VentaFilter) (int, error)
	GetByID(ctx context.Context, id int64) (models.Venta, error)
	Create(ctx context.Context, v models.Venta) (models.Venta, error)
	Update(ctx context.Context, id int64, f models.VentaFields) error
	Delete(ctx context.Context, id int64) error
}

// GastoStore is the gateway to persisted expenses.
type GastoStore interface {
	List(ctx context.Context, f models.GastoFilter) ([]models.Gasto, error)
	Create(ctx context.Context, g models.Gasto) (models.Gasto, error)
	Update(ctx context.Context, id int64, f models.GastoFields) error
	Delete(ctx context.Context, id int64) error
}

// ViajeStore is the gateway to trip closure rows.
type ViajeStore interface {
	Get(ctx context.Context, fecha string, viaje int) (models.ViajeCerrado, error)
	ListByFecha(ctx context.Context, fecha string) ([]models.ViajeCerrado, error)
	UpsertCerrado(ctx context.Context, fecha string, viaje int) error
}

type UsuarioStore interface {
	GetByEmail(ctx context.Context, email string) (models.Usuario, error)
}
