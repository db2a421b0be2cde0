package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"holokit/internal/models"
	"holokit/shared/imagegen"
)

type coverRequest struct {
	Platform    string `json:"platform" binding:"required"`
	ChannelName string `json:"channel_name" binding:"required"`
	Subscribers string `json:"subscribers"`
	Category    string `json:"category"`
}

// handleGenerateCover always returns a usable image URL; generation failures
// fall back to a placeholder inside the image client.
func (s *Server) handleGenerateCover(c *gin.Context) {
	var req coverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result := s.images.GenerateCover(c.Request.Context(), imagegen.CoverRequest{
		Platform:    models.Platform(req.Platform),
		ChannelName: req.ChannelName,
		Subscribers: req.Subscribers,
		Category:    req.Category,
	})
	c.JSON(http.StatusOK, result)
}
