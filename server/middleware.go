package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"holokit/internal/models"
)

const contextKeyUser = "current_user"

// requireUser resolves the bearer token to a stored user and aborts with 401
// when it cannot.
func (s *Server) requireUser(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		unauthorized(c)
		return
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		unauthorized(c)
		return
	}

	user, err := s.store.UserByUsername(c.Request.Context(), claims.Username)
	if err != nil {
		unauthorized(c)
		return
	}

	c.Set(contextKeyUser, user)
	c.Next()
}

func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get(contextKeyUser)
	user, _ := v.(*models.User)
	return user
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
}

func extractToken(c *gin.Context) string {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
