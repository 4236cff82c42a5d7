package handlers

import (
	"net/http"

	"pipas/internal/domain"
	"pipas/internal/utils"

	"github.com/gin-gonic/gin"
)

type cerrarRequest struct {
	Fecha string `json:"fecha"`
	Viaje int    `json:"viaje"`
}

// GET /api/viajes/estado?fecha=&viaje=
func (h Handler) EstadoViaje(c *gin.Context) {
	viaje, ok := queryInt(c, "viaje", 0)
	if !ok {
		return
	}
	fecha, ok := utils.NormalizeDate(queryFecha(c))
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "fecha", Msg: "debe tener formato YYYY-MM-DD"})
		return
	}
	if !domain.ValidViaje(viaje) {
		RespondDomainError(c, domain.ValidationError{Field: "viaje", Msg: "debe estar entre 1 y 5"})
		return
	}
	st, err := h.Viajes.Estado(c.Request.Context(), fecha, viaje)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fecha": fecha, "viaje": viaje, "estado": st, "cerrado": st == domain.EstadoCerrado})
}

// POST /api/viajes/cerrar
func (h Handler) CerrarViaje(c *gin.Context) {
	var req cerrarRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	changed, err := h.Viajes.Cerrar(c.Request.Context(), req.Fecha, req.Viaje)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	fecha, _ := utils.NormalizeDate(req.Fecha)
	c.JSON(http.StatusOK, gin.H{
		"fecha":   fecha,
		"viaje":   req.Viaje,
		"estado":  domain.EstadoCerrado,
		"cerrado": true,
		"changed": changed,
	})
}
