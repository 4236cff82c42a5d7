// Command seeduser creates or updates a dashboard user.
//
//	go run ./cmd/seeduser -email admin@pipas.local -password secreto -nombre Admin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	intconfig "pipas/internal/config"
	"pipas/internal/db"
	"pipas/internal/domain/models"
	"pipas/internal/repositories"
	"pipas/internal/services"
	"pipas/internal/utils"

	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_EMAIL"), "user email")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "user password (min 6 chars)")
	nombre := flag.String("nombre", "Administrador", "display name")
	flag.Parse()

	log := utils.MustLogger(utils.NewLogger(false))
	defer func() { _ = log.Sync() }()

	if strings.TrimSpace(*email) == "" {
		log.Fatal("email is required")
	}
	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatal("invalid password", zap.Error(err))
	}

	env := intconfig.LoadEnv()
	conn, err := intconfig.ConnectDB(env, log)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.EnsureSchema(ctx, conn); err != nil {
		log.Fatal("schema init failed", zap.Error(err))
	}

	repo := repositories.UsuarioRepository{DB: conn}
	if err := repo.Upsert(ctx, models.Usuario{Email: *email, Nombre: *nombre, PasswordHash: hash}); err != nil {
		log.Fatal("upsert user failed", zap.Error(err))
	}
	fmt.Printf("usuario %q creado/actualizado\n", strings.ToLower(strings.TrimSpace(*email)))
}
