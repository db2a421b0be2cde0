// Package server is the HTTP API: profile analysis, accounts, content
// requests, premium subscriptions, and cover image generation.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"holokit/internal/models"
	"holokit/shared/auth"
	"holokit/shared/config"
	"holokit/shared/imagegen"
	"holokit/shared/monitoring"
)

// Analyzer runs the creator analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (*models.AnalysisResult, error)
}

// Store is the persistence surface the handlers need. *storage.Store
// implements it; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	SetPremium(ctx context.Context, id string, since, expires time.Time) error
	ClearPremium(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, req *models.ContentRequest) (*models.ContentRequest, error)
	RequestByID(ctx context.Context, id string) (*models.ContentRequest, error)
	RequestByIDForCompany(ctx context.Context, id, companyID string) (*models.ContentRequest, error)
	RequestsByCompany(ctx context.Context, companyID string) ([]models.ContentRequest, error)
	OpenRequests(ctx context.Context) ([]models.ContentRequest, error)
	DeleteRequest(ctx context.Context, id, companyID string) error

	CreateApplication(ctx context.Context, app *models.CreatorApplication) (*models.CreatorApplication, error)
	ApplicationByID(ctx context.Context, id string) (*models.CreatorApplication, error)
	HasApplied(ctx context.Context, requestID, creatorID string) (bool, error)
	ApplicationsByRequest(ctx context.Context, requestID string) ([]models.CreatorApplication, error)
	ApplicationsByCreator(ctx context.Context, creatorID string) ([]models.CreatorApplication, error)
}

// Server holds the handler dependencies.
type Server struct {
	cfg      *config.Config
	store    Store
	analyzer Analyzer
	tokens   *auth.Manager
	images   *imagegen.Client
	monitor  *monitoring.Monitor
}

func New(cfg *config.Config, store Store, analyzer Analyzer, images *imagegen.Client, monitor *monitoring.Monitor) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		analyzer: analyzer,
		tokens:   auth.NewManager(cfg.Auth.JWTSecret),
		images:   images,
		monitor:  monitor,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(s.corsConfig()))

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.POST("/analyze", s.handleAnalyze)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", s.handleSignup)
		authGroup.POST("/login", s.handleLogin)
		authGroup.GET("/me", s.requireUser, s.handleMe)
		authGroup.POST("/logout", s.requireUser, s.handleLogout)
	}

	requests := router.Group("/requests", s.requireUser)
	{
		requests.POST("/create", s.handleCreateRequest)
		requests.GET("/my-requests", s.handleMyRequests)
		requests.GET("/all", s.handleOpenRequests)
		requests.POST("/apply", s.handleApply)
		requests.GET("/applications/:request_id", s.handleRequestApplications)
		requests.GET("/my-applications", s.handleMyApplications)
		requests.GET("/application/:application_id", s.handleApplicationDetail)
		requests.DELETE("/:request_id", s.handleDeleteRequest)
	}

	premium := router.Group("/premium", s.requireUser)
	{
		premium.POST("/upgrade", s.handlePremiumUpgrade)
		premium.GET("/status", s.handlePremiumStatus)
		premium.POST("/cancel", s.handlePremiumCancel)
	}

	router.POST("/image/generate-profile-cover", s.requireUser, s.handleGenerateCover)

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	if s.cfg.Server.AllowedOrigins == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	var origins []string
	for _, origin := range strings.Split(s.cfg.Server.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": "Holo-Kit API",
		"status":  "online",
		"version": "2.0.0",
		"endpoints": gin.H{
			"analyze": "/analyze",
			"health":  "/health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	youtube := "missing"
	if s.cfg.YouTube.APIKey != "" {
		youtube = "configured"
	}
	github := "optional"
	if s.cfg.GitHub.Token != "" {
		github = "configured"
	}
	instagram := "missing"
	if s.cfg.Instagram.Configured() {
		instagram = "configured"
	}
	gemini := "missing"
	if s.cfg.AI.GeminiAPIKey != "" {
		gemini = "configured"
	}

	c.JSON(200, gin.H{
		"status":        "healthy",
		"healthy":       s.monitor.IsHealthy(),
		"last_analysis": s.monitor.GetStatusSummary(),
		"apis": gin.H{
			"youtube":   youtube,
			"github":    github,
			"instagram": instagram,
			"gemini":    gemini,
		},
	})
}
