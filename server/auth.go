package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"holokit/internal/models"
	"holokit/shared/auth"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"required"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	userType := models.UserType(req.UserType)
	if userType != models.UserTypeCreator && userType != models.UserTypeCompany {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user_type must be either 'creator' or 'company'"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.store.UserByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}
	if _, err := s.store.UserByUsername(ctx, req.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already taken"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	user := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		FullName:       req.FullName,
		UserType:       userType,
		HashedPassword: hash,
		CreatedAt:      time.Now().UTC(),
		IsActive:       true,
	}
	if _, err := s.store.CreateUser(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	token, err := s.tokens.Sign(req.Username, userType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to issue token"})
		return
	}

	log.Printf("✅ New %s registered: %s", userType, req.Username)

	c.JSON(http.StatusCreated, models.Token{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    userType,
		Username:    req.Username,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := s.store.UserByUsername(c.Request.Context(), req.Username)
	if err != nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect username or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Inactive user account"})
		return
	}

	token, err := s.tokens.Sign(user.Username, user.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to issue token"})
		return
	}

	log.Printf("✅ User logged in: %s (%s)", user.Username, user.UserType)

	c.JSON(http.StatusOK, models.Token{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    user.UserType,
		Username:    user.Username,
	})
}

func (s *Server) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) handleLogout(c *gin.Context) {
	log.Printf("✅ User logged out: %s", currentUser(c).Username)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
