package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"holokit/internal/models"
	"holokit/shared/storage"
)

type createRequestBody struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Budget       string `json:"budget"`
	Requirements string `json:"requirements"`
	Deadline     string `json:"deadline"`
}

func (s *Server) handleCreateRequest(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCompany {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only companies can create content requests"})
		return
	}

	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	req := &models.ContentRequest{
		CompanyID:       user.ID.Hex(),
		CompanyUsername: user.Username,
		Title:           body.Title,
		Description:     body.Description,
		Budget:          body.Budget,
		Requirements:    body.Requirements,
		Deadline:        body.Deadline,
		Status:          models.RequestStatusOpen,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.store.CreateRequest(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create request"})
		return
	}

	log.Printf("✅ Content request created by %s: %s", user.Username, body.Title)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleMyRequests(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCompany {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only companies can view their requests"})
		return
	}

	requests, err := s.store.RequestsByCompany(c.Request.Context(), user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (s *Server) handleOpenRequests(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCreator {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only creators can browse requests"})
		return
	}

	requests, err := s.store.OpenRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

type applyBody struct {
	RequestID  string `json:"request_id" binding:"required"`
	ProfileURL string `json:"profile_url" binding:"required"`
}

// handleApply runs the analyzer on the creator's profile URL and stores the
// result alongside the application.
func (s *Server) handleApply(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCreator {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only creators can apply to requests"})
		return
	}

	var body applyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.store.RequestByID(ctx, body.RequestID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Content request not found"})
		return
	}

	applied, err := s.store.HasApplied(ctx, body.RequestID, user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to check existing applications"})
		return
	}
	if applied {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "You have already applied to this request"})
		return
	}

	log.Printf("📊 Analyzing profile for %s: %s", user.Username, body.ProfileURL)
	profileData, err := s.analyzer.Analyze(ctx, body.ProfileURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Failed to analyze profile: %s", err)})
		return
	}

	app := &models.CreatorApplication{
		RequestID:       body.RequestID,
		CreatorID:       user.ID.Hex(),
		CreatorUsername: user.Username,
		IsPremium:       user.IsPremium,
		ProfileURL:      body.ProfileURL,
		ProfileData:     profileData,
		Status:          models.ApplicationStatusPending,
		AppliedAt:       time.Now().UTC(),
	}

	created, err := s.store.CreateApplication(ctx, app)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create application"})
		return
	}

	log.Printf("✅ Application submitted by %s to request %s", user.Username, body.RequestID)
	c.JSON(http.StatusCreated, created)
}

// handleRequestApplications returns every application to a request plus the
// top five ranked by audience size.
func (s *Server) handleRequestApplications(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCompany {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only companies can view applications"})
		return
	}

	requestID := c.Param("request_id")
	ctx := c.Request.Context()

	if _, err := s.store.RequestByIDForCompany(ctx, requestID, user.ID.Hex()); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Request not found or you don't have permission to view it"})
		return
	}

	applications, err := s.store.ApplicationsByRequest(ctx, requestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list applications"})
		return
	}

	sort.SliceStable(applications, func(i, j int) bool {
		return applicationFollowers(applications[i]) > applicationFollowers(applications[j])
	})

	top := applications
	if len(top) > 5 {
		top = top[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"total_applications": len(applications),
		"all_applications":   applications,
		"top_5":              top,
	})
}

func (s *Server) handleMyApplications(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCreator {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only creators can view their applications"})
		return
	}

	applications, err := s.store.ApplicationsByCreator(c.Request.Context(), user.ID.Hex())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// handleApplicationDetail serves a single application to the creator who
// submitted it or the company that owns the request.
func (s *Server) handleApplicationDetail(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	app, err := s.store.ApplicationByID(ctx, c.Param("application_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Application not found"})
		return
	}

	if app.CreatorID != user.ID.Hex() {
		req, err := s.store.RequestByID(ctx, app.RequestID)
		if err != nil || req.CompanyID != user.ID.Hex() {
			c.JSON(http.StatusForbidden, gin.H{"detail": "You don't have permission to view this application"})
			return
		}
	}

	c.JSON(http.StatusOK, app)
}

func (s *Server) handleDeleteRequest(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCompany {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only companies can delete requests"})
		return
	}

	requestID := c.Param("request_id")
	err := s.store.DeleteRequest(c.Request.Context(), requestID, user.ID.Hex())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Request not found or you don't have permission to delete it"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete request"})
		return
	}

	log.Printf("✅ Request %s deleted by %s", requestID, user.Username)
	c.Status(http.StatusNoContent)
}

func applicationFollowers(app models.CreatorApplication) float64 {
	if app.ProfileData == nil {
		return 0
	}
	return parseFollowerCount(app.ProfileData.Subscribers)
}

// parseFollowerCount turns a display string like "1.6M subscribers" or
// "125K followers" back into a number for ranking. Unparseable strings
// rank as zero.
func parseFollowerCount(display string) float64 {
	fields := strings.Fields(display)
	if len(fields) == 0 {
		return 0
	}

	num := fields[0]
	multiplier := 1.0
	switch {
	case strings.Contains(num, "B"):
		num = strings.ReplaceAll(num, "B", "")
		multiplier = 1_000_000_000
	case strings.Contains(num, "M"):
		num = strings.ReplaceAll(num, "M", "")
		multiplier = 1_000_000
	case strings.Contains(num, "K"):
		num = strings.ReplaceAll(num, "K", "")
		multiplier = 1_000
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return value * multiplier
}
