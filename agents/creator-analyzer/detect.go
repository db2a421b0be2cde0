package creatoranalyzer

import (
	"strings"

	"holokit/internal/models"
)

// DetectPlatform classifies a creator URL by hostname fragment. Matching is
// case-insensitive substring search with a fixed priority: YouTube wins over
// GitHub, GitHub over Instagram.
func DetectPlatform(rawURL string) models.Platform {
	url := strings.ToLower(strings.TrimSpace(rawURL))

	switch {
	case strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be"):
		return models.PlatformYouTube
	case strings.Contains(url, "github.com"):
		return models.PlatformGitHub
	case strings.Contains(url, "instagram.com") || strings.Contains(url, "instagr.am"):
		return models.PlatformInstagram
	default:
		return models.PlatformUnknown
	}
}
