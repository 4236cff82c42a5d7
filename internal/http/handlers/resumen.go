package handlers

import (
	"net/http"

	"pipas/internal/http/middleware"
	"pipas/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/resumen?fecha=&viaje=&page=&page_size=
func (h Handler) GetResumen(c *gin.Context) {
	viaje, ok := queryInt(c, "viaje", 1)
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
	out, err := h.Resumen.Cargar(c.Request.Context(), services.ResumenParams{
		Fecha:    queryFecha(c),
		Viaje:    viaje,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/resumen/pdf?fecha=&agrupar=
func (h Handler) GetResumenPDF(c *gin.Context) {
	svc := h.Report
	svc.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := svc.GenerarResumen(c.Request.Context(), queryFecha(c), queryBool(c, "agrupar"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
