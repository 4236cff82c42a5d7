package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const msgCredenciales = "credenciales inválidas"

// Claims are carried by every issued token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string         `json:"token"`
	TokenType string         `json:"token_type"`
	ExpiresIn int64          `json:"expires_in"`
	User      models.Usuario `json:"user"`
}

// AuthService signs users in against the usuarios table and validates the
// HS256 tokens it hands out.
type AuthService struct {
	Users  UsuarioStore
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

// Login checks email and password. Unknown users, inactive users and wrong
// passwords all get the same message.
func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "email y password son obligatorios"}
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if domain.IsNotFound(err) {
		return LoginResult{}, domain.UnauthorizedError{Msg: msgCredenciales}
	}
	if err != nil {
		return LoginResult{}, err
	}
	if !u.Activo {
		return LoginResult{}, domain.UnauthorizedError{Msg: msgCredenciales}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.UnauthorizedError{Msg: msgCredenciales}
	}

	token, err := s.sign(u)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "no se pudo emitir el token", Err: err}
	}
	return LoginResult{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int64(s.ttl().Seconds()),
		User:      u,
	}, nil
}

func (s AuthService) sign(u models.Usuario) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Nombre: u.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Session returns the claims of a valid, unexpired token.
func (s AuthService) Session(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.UnauthorizedError{Msg: "autenticación requerida"}
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.UnauthorizedError{Msg: "sesión expirada"}
		}
		return nil, domain.UnauthorizedError{Msg: "token inválido"}
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash stored in usuarios.password_hash.
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", domain.ValidationError{Field: "password", Msg: "debe tener al menos 6 caracteres"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
