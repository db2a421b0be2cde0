package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	log.Printf("📥 Received analysis request: %s", req.URL)
	start := time.Now()

	result, err := s.analyzer.Analyze(c.Request.Context(), req.URL)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(start))
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.monitor.RecordSuccess(fmt.Sprintf("%s (%s)", result.ChannelName, result.Platform), time.Since(start))
	c.JSON(http.StatusOK, result)
}
