package services

import (
	"context"
	"testing"
	"time"

	"pipas/internal/domain"
	"pipas/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto1"), bcrypt.MinCost)
	require.NoError(t, err)
	users := memUsuarios{byEmail: map[string]models.Usuario{
		"ana@pipas.local":  {ID: 7, Email: "ana@pipas.local", Nombre: "Ana", PasswordHash: string(hash), Activo: true},
		"baja@pipas.local": {ID: 8, Email: "baja@pipas.local", PasswordHash: string(hash), Activo: false},
	}}
	return AuthService{Users: users, Secret: []byte("test-secret"), TTL: time.Hour}
}

func TestAuthLoginAndSession(t *testing.T) {
	svc := newAuthService(t)

	res, err := svc.Login(context.Background(), " ANA@pipas.local ", "secreto1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := svc.Session(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@pipas.local", claims.Email)
}

func TestAuthLoginRejects(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	for _, c := range []struct{ email, pass string }{
		{"ana@pipas.local", "otra"},
		{"nadie@pipas.local", "secreto1"},
		{"baja@pipas.local", "secreto1"},
	} {
		_, err := svc.Login(ctx, c.email, c.pass)
		require.Error(t, err)
		assert.True(t, domain.IsUnauthorized(err), c.email)
		assert.Equal(t, "credenciales inválidas", err.Error())
	}

	_, err := svc.Login(ctx, "", "")
	assert.True(t, domain.IsValidation(err))
}

func TestAuthSessionRejectsExpiredAndForeign(t *testing.T) {
	svc := newAuthService(t)
	res, err := svc.Login(context.Background(), "ana@pipas.local", "secreto1")
	require.NoError(t, err)

	later := svc
	later.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.Session(res.Token)
	assert.True(t, domain.IsUnauthorized(err))

	other := svc
	other.Secret = []byte("otro")
	_, err = other.Session(res.Token)
	assert.True(t, domain.IsUnauthorized(err))

	_, err = svc.Session("")
	assert.True(t, domain.IsUnauthorized(err))
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("123")
	assert.True(t, domain.IsValidation(err))

	h, err := HashPassword("secreto1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("secreto1")))
}
