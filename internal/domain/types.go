package domain

// Trips run from ViajeMin to ViajeMax within a day.
const (
	ViajeMin = 1
	ViajeMax = 5
)

// EstadoViaje is the closing state of a (fecha, viaje) pair.
type EstadoViaje string

const (
	EstadoAbierto EstadoViaje = "OPEN"
	EstadoCerrado EstadoViaje = "CLOSED"
)

func ValidViaje(v int) bool {
	return v >= ViajeMin && v <= ViajeMax
}

// Pagination carries paging params and totals.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination clamps page to >= 1 and pageSize to 1..maxSize.
func NewPagination(page, pageSize, maxSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxSize {
		pageSize = maxSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Window returns the LIMIT/OFFSET pair for the current page.
func (p Pagination) Window() (limit, offset uint64) {
	return uint64(p.PageSize), uint64((p.Page - 1) * p.PageSize)
}

// WithTotal records the row count and derives TotalPages. An empty result
// still has one page.
func (p Pagination) WithTotal(total int) Pagination {
	p.Total = total
	p.TotalPages = 1
	if total > 0 && p.PageSize > 0 {
		p.TotalPages = (total + p.PageSize - 1) / p.PageSize
	}
	return p
}
