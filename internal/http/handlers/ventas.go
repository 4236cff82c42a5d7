package handlers

import (
	"net/http"

	"pipas/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ventaRequest struct {
	Pipas          int             `json:"pipas"`
	Referencia     string          `json:"referencia"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Fecha          string          `json:"fecha"`
	Viaje          int             `json:"viaje"`
}

// GET /api/ventas?fecha=&viaje=&page=&page_size=
func (h Handler) ListVentas(c *gin.Context) {
	viaje, ok := queryInt(c, "viaje", 0)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	size, ok := queryInt(c, "page_size", 0)
	if !ok {
		return
	}
	out, err := h.Ventas.Listar(c.Request.Context(), queryFecha(c), viaje, page, size)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/ventas
func (h Handler) CreateVenta(c *gin.Context) {
	var req ventaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := h.Ventas.Crear(c.Request.Context(), models.Venta{
		Pipas:          req.Pipas,
		Referencia:     req.Referencia,
		PrecioUnitario: req.PrecioUnitario,
		Fecha:          req.Fecha,
		Viaje:          req.Viaje,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/ventas/:id
func (h Handler) UpdateVenta(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.VentaFields
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := h.Ventas.Editar(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/ventas/:id
func (h Handler) DeleteVenta(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Ventas.Borrar(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
