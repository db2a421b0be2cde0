package youtube

import (
	"context"
	"fmt"

	"holokit/internal/models"
)

var mockVideos = []struct {
	ID    string
	Title string
}{
	{"mock_0", "Building a 3D Portfolio with React Three Fiber"},
	{"mock_1", "Why I Switched to Neovim (Developer Setup Tour)"},
}

// Mock serves a fixed demo channel when no YouTube API key is configured.
type Mock struct{}

func (Mock) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	items := make([]models.ContentItem, len(mockVideos))
	for i, video := range mockVideos {
		items[i] = models.ContentItem{
			Title:   video.Title,
			VideoID: video.ID,
		}
	}

	return &models.CreatorProfile{
		Platform:    models.PlatformYouTube,
		Name:        "Demo Tech Creator",
		Subscribers: "1.5M",
		About:       "Tech reviews, coding tutorials, and developer content",
		Items:       items,
		Mock:        true,
	}, nil
}

func (Mock) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	for _, video := range mockVideos {
		if video.ID == videoID {
			return fmt.Sprintf("[Mock transcript for: %s] This video covers technical content related to the channel's niche.", video.Title), nil
		}
	}
	return "", fmt.Errorf("unknown mock video %s", videoID)
}
