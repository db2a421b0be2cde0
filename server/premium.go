package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"holokit/internal/models"
	"holokit/shared/storage"
)

// premiumPricing maps subscription length in months to price in USD.
var premiumPricing = map[int]float64{
	1:  9.99,
	3:  24.99,
	6:  44.99,
	12: 79.99,
}

type upgradeRequest struct {
	DurationMonths int `json:"duration_months"`
}

func (s *Server) handlePremiumUpgrade(c *gin.Context) {
	user := currentUser(c)
	if user.UserType != models.UserTypeCreator {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only creators can upgrade to premium"})
		return
	}

	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.DurationMonths == 0 {
		req.DurationMonths = 1
	}

	price, ok := premiumPricing[req.DurationMonths]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Duration must be 1, 3, 6, or 12 months"})
		return
	}

	now := time.Now().UTC()
	expires := now.Add(time.Duration(req.DurationMonths) * 30 * 24 * time.Hour)

	err := s.store.SetPremium(c.Request.Context(), user.ID.Hex(), now, expires)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upgrade"})
		return
	}

	log.Printf("✅ %s upgraded to premium for %d months", user.Username, req.DurationMonths)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         fmt.Sprintf("Successfully upgraded to Premium for %d months", req.DurationMonths),
		"premium_expires": expires,
		"amount_charged":  price,
	})
}

// handlePremiumStatus lazily revokes expired subscriptions so a stale record
// never reports premium access.
func (s *Server) handlePremiumStatus(c *gin.Context) {
	user := currentUser(c)

	isPremium := user.IsPremium
	if isPremium && user.PremiumExpires != nil && user.PremiumExpires.Before(time.Now().UTC()) {
		if err := s.store.ClearPremium(c.Request.Context(), user.ID.Hex()); err != nil {
			log.Printf("🚨 Failed to clear expired premium for %s: %v", user.Username, err)
		}
		isPremium = false
	}

	c.JSON(http.StatusOK, gin.H{
		"is_premium":      isPremium,
		"premium_since":   user.PremiumSince,
		"premium_expires": user.PremiumExpires,
		"user_type":       user.UserType,
	})
}

func (s *Server) handlePremiumCancel(c *gin.Context) {
	user := currentUser(c)
	if !user.IsPremium {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "User is not a premium member"})
		return
	}

	log.Printf("✅ %s cancelled premium (access until %v)", user.Username, user.PremiumExpires)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Premium cancelled. You will retain access until expiration date.",
		"premium_expires": user.PremiumExpires,
	})
}
