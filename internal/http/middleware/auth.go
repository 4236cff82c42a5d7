package middleware

import (
	"net/http"
	"strings"

	"pipas/internal/services"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// SessionVerifier validates a bearer token.
type SessionVerifier interface {
	Session(token string) (*services.Claims, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// token and stores the claims for GetClaims.
func RequireAuth(v SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "autenticación requerida")
			return
		}
		claims, err := v.Session(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"message":    msg,
		"request_id": GetRequestID(c),
	})
}

// GetClaims returns the claims stored by RequireAuth, or nil.
func GetClaims(c *gin.Context) *services.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if cl, ok := v.(*services.Claims); ok {
			return cl
		}
	}
	return nil
}
