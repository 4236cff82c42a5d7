package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pipas/internal/domain"
	"pipas/internal/http/middleware"
	"pipas/internal/services"
	"pipas/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the dashboard API on top of the services.
type Handler struct {
	Ventas  services.VentaService
	Gastos  services.GastoService
	Viajes  services.ViajeService
	Resumen services.ResumenService
	Report  services.ReportService
	Auth    services.AuthService
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "cuerpo vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload inválido", err)
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "id inválido"})
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query param; missing means def.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: key, Msg: "debe ser un número entero"})
		return 0, false
	}
	return n, true
}

// queryFecha reads the fecha param, defaulting to the current day.
func queryFecha(c *gin.Context) string {
	if f := strings.TrimSpace(c.Query("fecha")); f != "" {
		return f
	}
	return utils.Today()
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return b
}
