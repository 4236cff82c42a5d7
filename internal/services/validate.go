package services

import (
	"strings"

	"pipas/internal/domain"
	"pipas/internal/domain/models"
	"pipas/internal/utils"

	"github.com/shopspring/decimal"
)

func validateFecha(fecha string) (string, error) {
	d, ok := utils.NormalizeDate(fecha)
	if !ok {
		return "", domain.ValidationError{Field: "fecha", Msg: "debe tener formato YYYY-MM-DD"}
	}
	return d, nil
}

func validateViaje(viaje int) error {
	if !domain.ValidViaje(viaje) {
		return domain.ValidationError{Field: "viaje", Msg: "debe estar entre 1 y 5"}
	}
	return nil
}

// validateAmount requires a positive value that fits DECIMAL(12,2) without
// rounding.
func validateAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return domain.ValidationError{Field: field, Msg: "debe ser mayor a 0"}
	}
	if !d.Equal(d.Round(2)) {
		return domain.ValidationError{Field: field, Msg: "admite como máximo 2 decimales"}
	}
	return nil
}

func validateVentaFields(f models.VentaFields) (models.VentaFields, error) {
	if f.Pipas <= 0 {
		return f, domain.ValidationError{Field: "pipas", Msg: "debe ser mayor a 0"}
	}
	if err := validateAmount("precio_unitario", f.PrecioUnitario); err != nil {
		return f, err
	}
	f.Referencia = utils.NormalizeSpace(f.Referencia)
	return f, nil
}

func validateGastoFields(f models.GastoFields) (models.GastoFields, error) {
	if err := validateAmount("monto", f.Monto); err != nil {
		return f, err
	}
	f.Descripcion = strings.TrimSpace(f.Descripcion)
	return f, nil
}
