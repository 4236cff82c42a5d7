package domain

import (
	"pipas/internal/domain/models"

	"github.com/shopspring/decimal"
)

// Totales is the money summary of a set of sales and expenses.
// Amounts keep full precision; round only when displaying.
type Totales struct {
	TotalPipas  int             `json:"totalPipas"`
	TotalVentas decimal.Decimal `json:"totalVentas"`
	TotalGastos decimal.Decimal `json:"totalGastos"`
	TotalDia    decimal.Decimal `json:"totalDia"`
}

// GrupoViaje is the slice of a day's sales belonging to one trip.
type GrupoViaje struct {
	Viaje    int             `json:"viaje"`
	Ventas   []models.Venta  `json:"ventas"`
	Pipas    int             `json:"pipas"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func SumPipas(ventas []models.Venta) int {
	n := 0
	for _, v := range ventas {
		n += v.Pipas
	}
	return n
}

func SumVentas(ventas []models.Venta) decimal.Decimal {
	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total())
	}
	return total
}

func SumGastos(gastos []models.Gasto) decimal.Decimal {
	total := decimal.Zero
	for _, g := range gastos {
		total = total.Add(g.Monto)
	}
	return total
}

// ComputeTotales summarizes ventas against gastos. Pass the date-wide sales
// to get the day's net regardless of which trip is selected.
func ComputeTotales(ventas []models.Venta, gastos []models.Gasto) Totales {
	tv := SumVentas(ventas)
	tg := SumGastos(gastos)
	return Totales{
		TotalPipas:  SumPipas(ventas),
		TotalVentas: tv,
		TotalGastos: tg,
		TotalDia:    tv.Sub(tg),
	}
}

// AgruparPorViaje partitions ventas by trip. Groups come out in the order
// their trip first appears and keep the input order within each group.
func AgruparPorViaje(ventas []models.Venta) []GrupoViaje {
	out := []GrupoViaje{}
	index := map[int]int{}
	for _, v := range ventas {
		i, ok := index[v.Viaje]
		if !ok {
			i = len(out)
			index[v.Viaje] = i
			out = append(out, GrupoViaje{Viaje: v.Viaje, Subtotal: decimal.Zero})
		}
		g := &out[i]
		g.Ventas = append(g.Ventas, v)
		g.Pipas += v.Pipas
		g.Subtotal = g.Subtotal.Add(v.Total())
	}
	return out
}
