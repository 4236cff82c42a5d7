package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "pipas/internal/config"
	"pipas/internal/db"
	router "pipas/internal/http"
	"pipas/internal/http/handlers"
	"pipas/internal/repositories"
	"pipas/internal/services"
	"pipas/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.MustLogger(utils.NewLogger(gin.Mode() == gin.DebugMode))
	defer func() { _ = log.Sync() }()

	secret, err := env.SigningSecret(gin.Mode() == gin.DebugMode)
	if err != nil {
		log.Fatal("invalid auth config", zap.Error(err), zap.String("gin_mode", gin.Mode()))
	}
	if env.JWTSecret == "" {
		log.Warn("JWT_SECRET unset, signing with the development key")
	}

	conn, err := intconfig.ConnectDB(env, utils.Named(log, "db"))
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	created, err := db.EnsureSchema(initCtx, conn)
	cancelInit()
	if err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}
	if len(created) > 0 {
		log.Info("tables created", zap.Strings("tables", created))
	}

	ventaRepo := repositories.VentaRepository{DB: conn}
	gastoRepo := repositories.GastoRepository{DB: conn}
	viajeSvc := services.ViajeService{Repo: repositories.ViajeRepository{DB: conn}, Log: utils.Named(log, "viajes")}

	handler := handlers.Handler{
		Ventas: services.VentaService{
			Repo:        ventaRepo,
			Viajes:      viajeSvc,
			Log:         utils.Named(log, "ventas"),
			MaxPageSize: env.ListPageSize,
		},
		Gastos: services.GastoService{Repo: gastoRepo, Log: utils.Named(log, "gastos")},
		Viajes: viajeSvc,
		Resumen: services.ResumenService{
			Ventas:      ventaRepo,
			Gastos:      gastoRepo,
			Viajes:      viajeSvc,
			Log:         utils.Named(log, "resumen"),
			MaxPageSize: env.ListPageSize,
		},
		Report: services.ReportService{
			Ventas:   ventaRepo,
			Gastos:   gastoRepo,
			Currency: env.ReportCurrency,
			Log:      utils.Named(log, "report"),
		},
		Auth: services.AuthService{
			Users:  repositories.UsuarioRepository{DB: conn},
			Secret: secret,
			TTL:    time.Duration(env.JWTTTLHours) * time.Hour,
		},
	}

	r := router.NewRouter(env, handler, utils.Named(log, "http"))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		return
	}
	log.Info("server stopped")
}
