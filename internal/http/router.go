package api

import (
	stdhttp "net/http"

	intconfig "pipas/internal/config"
	h "pipas/internal/http/handlers"
	"pipas/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, handler h.Handler, log *zap.Logger) *gin.Engine {
	metrics := middleware.NewHTTPMetrics()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		gin.Recovery(),
		metrics.Middleware(),
		middleware.CORS(env.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "ruta no encontrada",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", middleware.ClientRateLimit(env.LoginRatePerMinute), handler.Login)
		auth.GET("/session", middleware.RequireAuth(handler.Auth), handler.Session)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(handler.Auth))

		secured.GET("/routes", h.Routes)

		// Dashboard
		resumen := secured.Group("/resumen")
		resumen.GET("", handler.GetResumen)
		resumen.GET("/pdf", handler.GetResumenPDF)

		// Sales
		ventas := secured.Group("/ventas")
		ventas.GET("", handler.ListVentas)
		ventas.POST("", handler.CreateVenta)
		ventas.PUT("/:id", handler.UpdateVenta)
		ventas.DELETE("/:id", handler.DeleteVenta)

		// Expenses
		gastos := secured.Group("/gastos")
		gastos.GET("", handler.ListGastos)
		gastos.POST("", handler.CreateGasto)
		gastos.PUT("/:id", handler.UpdateGasto)
		gastos.DELETE("/:id", handler.DeleteGasto)

		// Trips
		viajes := secured.Group("/viajes")
		viajes.GET("/estado", handler.EstadoViaje)
		viajes.POST("/cerrar", handler.CerrarViaje)
	}

	h.SetRouter(r)
	return r
}
