package services

import (
	"context"
	"sort"

	"pipas/internal/domain"
	"pipas/internal/domain/models"
)

// memVentas skips writes on sales whose trip tripClosed reports closed, the
// way the SQL store does. beforeWrite runs at the start of every write.
type memVentas struct {
	rows        []models.Venta
	nextID      int64
	listErr     error
	cntErr      error
	writes      int
	tripClosed  func(fecha string, viaje int) bool
	beforeWrite func()
}

func (m *memVentas) startWrite() {
	m.writes++
	if m.beforeWrite != nil {
		m.beforeWrite()
	}
}

func (m *memVentas) closed(v models.Venta) bool {
	return m.tripClosed != nil && m.tripClosed(v.Fecha, v.Viaje)
}

func (m *memVentas) match(f models.VentaFilter) []models.Venta {
	out := []models.Venta{}
	for _, v := range m.rows {
		if f.Fecha != "" && v.Fecha != f.Fecha {
			continue
		}
		if f.Viaje != 0 && v.Viaje != f.Viaje {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memVentas) List(_ context.Context, f models.VentaFilter) ([]models.Venta, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := m.match(f)
	if f.Limit > 0 {
		start := int(f.Offset)
		if start > len(out) {
			start = len(out)
		}
		end := start + int(f.Limit)
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (m *memVentas) Count(_ context.Context, f models.VentaFilter) (int, error) {
	if m.cntErr != nil {
		return 0, m.cntErr
	}
	return len(m.match(f)), nil
}

func (m *memVentas) GetByID(_ context.Context, id int64) (models.Venta, error) {
	for _, v := range m.rows {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Venta{}, domain.NotFoundError{Resource: "venta", ID: id}
}

func (m *memVentas) Create(_ context.Context, v models.Venta) (models.Venta, error) {
	m.startWrite()
	if m.closed(v) {
		return v, domain.ViajeCerradoError{Fecha: v.Fecha, Viaje: v.Viaje}
	}
	m.nextID++
	v.ID = m.nextID
	m.rows = append(m.rows, v)
	return v, nil
}

func (m *memVentas) Update(_ context.Context, id int64, f models.VentaFields) error {
	m.startWrite()
	for i := range m.rows {
		if m.rows[i].ID == id && !m.closed(m.rows[i]) {
			m.rows[i].Pipas = f.Pipas
			m.rows[i].Referencia = f.Referencia
			m.rows[i].PrecioUnitario = f.PrecioUnitario
			return nil
		}
	}
	return domain.NotFoundError{Resource: "venta", ID: id}
}

func (m *memVentas) Delete(_ context.Context, id int64) error {
	m.startWrite()
	for i := range m.rows {
		if m.rows[i].ID == id && !m.closed(m.rows[i]) {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "venta", ID: id}
}

type memGastos struct {
	rows    []models.Gasto
	nextID  int64
	listErr error
	writes  int
}

func (m *memGastos) List(_ context.Context, f models.GastoFilter) ([]models.Gasto, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Gasto{}
	for _, g := range m.rows {
		if f.Fecha == "" || g.Fecha == f.Fecha {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGastos) Create(_ context.Context, g models.Gasto) (models.Gasto, error) {
	m.writes++
	m.nextID++
	g.ID = m.nextID
	m.rows = append(m.rows, g)
	return g, nil
}

func (m *memGastos) Update(_ context.Context, id int64, f models.GastoFields) error {
	m.writes++
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Descripcion = f.Descripcion
			m.rows[i].Monto = f.Monto
			return nil
		}
	}
	return domain.NotFoundError{Resource: "gasto", ID: id}
}

func (m *memGastos) Delete(_ context.Context, id int64) error {
	m.writes++
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "gasto", ID: id}
}

type viajeKey struct {
	fecha string
	viaje int
}

type memViajes struct {
	cerrados map[viajeKey]bool
	getErr   error
	listErr  error
	upserts  int
}

func newMemViajes() *memViajes {
	return &memViajes{cerrados: map[viajeKey]bool{}}
}

func (m *memViajes) Get(_ context.Context, fecha string, viaje int) (models.ViajeCerrado, error) {
	if m.getErr != nil {
		return models.ViajeCerrado{}, m.getErr
	}
	c, ok := m.cerrados[viajeKey{fecha, viaje}]
	if !ok {
		return models.ViajeCerrado{}, domain.NotFoundError{Resource: "viaje_cerrado"}
	}
	return models.ViajeCerrado{Fecha: fecha, Viaje: viaje, Cerrado: c}, nil
}

func (m *memViajes) ListByFecha(_ context.Context, fecha string) ([]models.ViajeCerrado, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.ViajeCerrado{}
	for k, c := range m.cerrados {
		if k.fecha == fecha {
			out = append(out, models.ViajeCerrado{Fecha: k.fecha, Viaje: k.viaje, Cerrado: c})
		}
	}
	return out, nil
}

func (m *memViajes) UpsertCerrado(_ context.Context, fecha string, viaje int) error {
	m.upserts++
	m.cerrados[viajeKey{fecha, viaje}] = true
	return nil
}

type memUsuarios struct {
	byEmail map[string]models.Usuario
	err     error
}

func (m memUsuarios) GetByEmail(_ context.Context, email string) (models.Usuario, error) {
	if m.err != nil {
		return models.Usuario{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return models.Usuario{}, domain.NotFoundError{Resource: "usuario"}
	}
	return u, nil
}
