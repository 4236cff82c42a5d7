package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret   string
	JWTTTLHours int

	CORSAllowedOrigins []string

	ReportCurrency string
	ListPageSize   int

	LoginRatePerMinute int
}

// LoadEnv reads the process environment, optionally seeded from a .env file
// in the working directory. A missing .env file is not an error.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "pipas"),

		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 24),

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),

		ReportCurrency: getenv("REPORT_CURRENCY", "Bs"),
		ListPageSize:   getenvInt("LIST_PAGE_SIZE", 100),

		LoginRatePerMinute: getenvInt("LOGIN_RATE_PER_MIN", 10),
	}
}

// DevJWTSecret signs tokens in gin debug mode when JWT_SECRET is unset.
const DevJWTSecret = "super-secret-key-change-me"

var (
	ErrJWTSecretMissing     = errors.New("JWT_SECRET is required outside debug mode")
	ErrJWTSecretPlaceholder = errors.New("JWT_SECRET must not be the development placeholder outside debug mode")
)

// SigningSecret returns the key used to sign session tokens. Only debug mode
// may run without JWT_SECRET or with DevJWTSecret.
func (e Env) SigningSecret(debug bool) ([]byte, error) {
	switch {
	case e.JWTSecret == "" && debug:
		return []byte(DevJWTSecret), nil
	case e.JWTSecret == "":
		return nil, ErrJWTSecretMissing
	case e.JWTSecret == DevJWTSecret && !debug:
		return nil, ErrJWTSecretPlaceholder
	}
	return []byte(e.JWTSecret), nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
