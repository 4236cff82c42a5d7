package handlers

import (
	"net/http"

	"pipas/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/session (behind RequireAuth)
func (h Handler) Session(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		RespondError(c, http.StatusUnauthorized, "sin sesión", nil)
		return
	}
	out := gin.H{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"nombre":  claims.Nombre,
	}
	if claims.ExpiresAt != nil {
		out["expires_at"] = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, out)
}
