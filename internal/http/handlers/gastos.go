package handlers

import (
	"net/http"

	"pipas/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type gastoRequest struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
}

// GET /api/gastos?fecha=
func (h Handler) ListGastos(c *gin.Context) {
	out, err := h.Gastos.Listar(c.Request.Context(), queryFecha(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gastos": out})
}

// POST /api/gastos
func (h Handler) CreateGasto(c *gin.Context) {
	var req gastoRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	g, err := h.Gastos.Crear(c.Request.Context(), models.Gasto{
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Fecha:       req.Fecha,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// PUT /api/gastos/:id
func (h Handler) UpdateGasto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.GastoFields
	if !BindJSONOrError(c, &req) {
		return
	}
	f, err := h.Gastos.Editar(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "descripcion": f.Descripcion, "monto": f.Monto})
}

// DELETE /api/gastos/:id
func (h Handler) DeleteGasto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Gastos.Borrar(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
