package instagram

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"holokit/internal/models"
)

// Mock serves the fixed profile table when the Graph API is not configured.
type Mock struct{}

func (Mock) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	username := ExtractUsername(rawURL)
	if username == "" {
		return nil, fmt.Errorf("Could not extract Instagram username from URL")
	}
	return MockProfile(username), nil
}

// MockProfile returns the fixed profile for a username: a curated entry when
// one exists, otherwise a generic profile templated from the username.
func MockProfile(username string) *models.CreatorProfile {
	if strings.ToLower(username) == "mkbhd" {
		return &models.CreatorProfile{
			Platform:    models.PlatformInstagram,
			Name:        "Marques Brownlee",
			Subscribers: "19.2M followers",
			About:       "Tech reviews and unboxings 📱⚡️\nYouTube: MKBHD\nPodcast: Waveform",
			Items: []models.ContentItem{
				{
					Title:     "The new iPhone 16 Pro Max is here! Full review on YouTube 📱",
					Likes:     models.Count(892000),
					Comments:  models.Count(12400),
					MediaType: "IMAGE",
					URL:       "https://instagram.com/p/sample1",
				},
				{
					Title:     "Behind the scenes of the studio setup 🎥",
					Likes:     models.Count(756000),
					Comments:  models.Count(9800),
					MediaType: "VIDEO",
					URL:       "https://instagram.com/p/sample2",
				},
				{
					Title:     "Testing out the new camera tech 📸",
					Likes:     models.Count(634000),
					Comments:  models.Count(7200),
					MediaType: "IMAGE",
					URL:       "https://instagram.com/p/sample3",
				},
			},
			Mock: true,
		}
	}

	return &models.CreatorProfile{
		Platform:    models.PlatformInstagram,
		Name:        titleCase(strings.ReplaceAll(username, "_", " ")),
		Subscribers: "125K followers",
		About:       "Creator • Content enthusiast\nFollow for more!",
		Items: []models.ContentItem{
			{
				Title:     "Latest content creation setup 🎬",
				Likes:     models.Count(8900),
				Comments:  models.Count(234),
				MediaType: "IMAGE",
				URL:       fmt.Sprintf("https://instagram.com/p/%s1", username),
			},
			{
				Title:     "Behind the scenes 📸",
				Likes:     models.Count(7600),
				Comments:  models.Count(189),
				MediaType: "VIDEO",
				URL:       fmt.Sprintf("https://instagram.com/p/%s2", username),
			},
		},
		Mock: true,
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
