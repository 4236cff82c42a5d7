package models

import "github.com/shopspring/decimal"

type Gasto struct {
	ID          int64           `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}

type GastoFields struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
}

// GastoFilter selects expenses; an empty Fecha means every day.
type GastoFilter struct {
	Fecha string
}
