package models

import "github.com/shopspring/decimal"

// Venta is one sale line: Pipas units sold at PrecioUnitario each.
type Venta struct {
	ID             int64           `json:"id"`
	Pipas          int             `json:"pipas"`
	Referencia     string          `json:"referencia"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Fecha          string          `json:"fecha"`
	Viaje          int             `json:"viaje"`
}

// Total is Pipas × PrecioUnitario at full precision.
func (v Venta) Total() decimal.Decimal {
	return v.PrecioUnitario.Mul(decimal.NewFromInt(int64(v.Pipas)))
}

// VentaFields are the editable columns of a sale. Fecha and Viaje are fixed
// once the sale exists.
type VentaFields struct {
	Pipas          int             `json:"pipas"`
	Referencia     string          `json:"referencia"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// VentaFilter selects sales. Zero values mean "no constraint"; Limit 0 means
// no limit.
type VentaFilter struct {
	Fecha  string
	Viaje  int
	Limit  uint64
	Offset uint64
}
