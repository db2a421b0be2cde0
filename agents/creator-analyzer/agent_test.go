package creatoranalyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"holokit/agents/creator-analyzer/github"
	"holokit/agents/creator-analyzer/instagram"
	"holokit/agents/creator-analyzer/youtube"
	"holokit/internal/models"
	"holokit/shared/ai"
	"holokit/shared/config"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.Platform
	}{
		{"youtube channel", "https://www.youtube.com/@mkbhd", models.PlatformYouTube},
		{"youtube short link", "https://youtu.be/dQw4w9WgXcQ", models.PlatformYouTube},
		{"uppercase host", "HTTPS://WWW.YOUTUBE.COM/@MKBHD", models.PlatformYouTube},
		{"github profile", "https://github.com/torvalds", models.PlatformGitHub},
		{"instagram profile", "https://www.instagram.com/mkbhd/", models.PlatformInstagram},
		{"instagram short domain", "https://instagr.am/mkbhd", models.PlatformInstagram},
		{"youtube wins over github", "https://youtube.com/watch?v=abc&ref=github.com", models.PlatformYouTube},
		{"leading whitespace", "  https://github.com/golang/go", models.PlatformGitHub},
		{"unknown site", "https://example.com/someone", models.PlatformUnknown},
		{"empty", "", models.PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPlatform(tt.url); got != tt.want {
				t.Errorf("DetectPlatform(%q) = %s, want %s", tt.url, got, tt.want)
			}
		})
	}
}

// newOfflineAgent builds an agent with mock platform providers and the model
// stages running without an API key.
func newOfflineAgent(t *testing.T) *Agent {
	t.Helper()

	cfg := &config.Config{}
	summarizer, err := ai.NewSummarizer(cfg)
	if err != nil {
		t.Fatalf("NewSummarizer failed: %v", err)
	}
	characterizer, err := ai.NewCharacterizer(cfg)
	if err != nil {
		t.Fatalf("NewCharacterizer failed: %v", err)
	}

	return New(youtube.Mock{}, github.Mock{}, instagram.Mock{}, summarizer, characterizer)
}

func TestAnalyzeUnsupportedURL(t *testing.T) {
	agent := newOfflineAgent(t)

	_, err := agent.Analyze(context.Background(), "https://example.com/someone")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
	}
	if err.Error() != "Unsupported platform. Use YouTube or GitHub URL." {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestAnalyzeYouTubeOffline(t *testing.T) {
	agent := newOfflineAgent(t)

	result, err := agent.Analyze(context.Background(), "https://www.youtube.com/@demo")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Platform != models.PlatformYouTube {
		t.Errorf("platform = %s", result.Platform)
	}
	if result.ChannelName != "Demo Tech Creator" {
		t.Errorf("channel name = %s", result.ChannelName)
	}
	if result.Subscribers != "1.5M" {
		t.Errorf("subscribers = %s", result.Subscribers)
	}
	if result.ContentDescriptor != "Tech Educator" {
		t.Errorf("descriptor = %s", result.ContentDescriptor)
	}
	if result.ContentSummary != "Demo Tech Creator creates content focused on technology, development, and innovation." {
		t.Errorf("content summary = %q", result.ContentSummary)
	}

	if len(result.TopContent) != 2 {
		t.Fatalf("top content = %d items, want 2", len(result.TopContent))
	}
	if len(result.Summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(result.Summaries))
	}
	want := "[Mock Summary] Video discusses: Building a 3D Portfolio with React Three Fiber"
	if result.Summaries[0].Summary != want {
		t.Errorf("summary = %q, want %q", result.Summaries[0].Summary, want)
	}
}

func TestAnalyzeGitHubOffline(t *testing.T) {
	agent := newOfflineAgent(t)

	result, err := agent.Analyze(context.Background(), "https://github.com/demo-developer")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.ChannelName != "Demo Developer" {
		t.Errorf("channel name = %s", result.ChannelName)
	}
	if result.Subscribers != "1.2K followers" {
		t.Errorf("subscribers = %s", result.Subscribers)
	}

	// The profile carries five repos; the output surfaces two.
	if len(result.TopContent) != 2 {
		t.Fatalf("top content = %d items, want 2", len(result.TopContent))
	}
	if result.TopContent[0].Title != "ferrite" || result.TopContent[0].Stars == nil {
		t.Errorf("top repo = %+v", result.TopContent[0])
	}
	if len(result.Summaries) != 0 {
		t.Errorf("summaries = %d, want 0 for GitHub", len(result.Summaries))
	}
}

func TestAnalyzeInstagramOffline(t *testing.T) {
	agent := newOfflineAgent(t)

	result, err := agent.Analyze(context.Background(), "https://www.instagram.com/mkbhd/")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.ChannelName != "Marques Brownlee" {
		t.Errorf("channel name = %s", result.ChannelName)
	}
	if result.Subscribers != "19.2M followers" {
		t.Errorf("subscribers = %s", result.Subscribers)
	}
	if len(result.TopContent) != 2 {
		t.Fatalf("top content = %d items, want 2", len(result.TopContent))
	}
	if result.TopContent[0].Likes == nil || *result.TopContent[0].Likes != 892000 {
		t.Errorf("top post likes = %v", result.TopContent[0].Likes)
	}
}

// failingYouTube simulates a channel whose profile resolves but whose
// captions are disabled.
type failingYouTube struct {
	profile *models.CreatorProfile
}

func (f failingYouTube) FetchProfile(ctx context.Context, url string) (*models.CreatorProfile, error) {
	if f.profile == nil {
		return nil, errors.New("quota exceeded")
	}
	return f.profile, nil
}

func (failingYouTube) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	return "", errors.New("captions disabled")
}

func TestAnalyzeYouTubeCaptionsDisabled(t *testing.T) {
	cfg := &config.Config{}
	summarizer, _ := ai.NewSummarizer(cfg)
	characterizer, _ := ai.NewCharacterizer(cfg)

	provider := failingYouTube{profile: &models.CreatorProfile{
		Platform:    models.PlatformYouTube,
		Name:        "Quiet Channel",
		Subscribers: "10.0K",
		About:       "Silent films and ambient video",
		Items: []models.ContentItem{
			{Title: "Rainy Window", VideoID: "abcdefghijk", Description: "An hour of rain on glass"},
		},
	}}

	agent := New(provider, github.Mock{}, instagram.Mock{}, summarizer, characterizer)

	result, err := agent.Analyze(context.Background(), "https://www.youtube.com/@quiet")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.Summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(result.Summaries))
	}
	want := "Video titled 'Rainy Window' - An hour of rain on glass"
	if result.Summaries[0].Summary != want {
		t.Errorf("summary = %q, want %q", result.Summaries[0].Summary, want)
	}
	if result.ContentSummary == "" {
		t.Error("content summary must not be empty")
	}
}

func TestAnalyzeYouTubeFetchFailure(t *testing.T) {
	cfg := &config.Config{}
	summarizer, _ := ai.NewSummarizer(cfg)
	characterizer, _ := ai.NewCharacterizer(cfg)

	agent := New(failingYouTube{}, github.Mock{}, instagram.Mock{}, summarizer, characterizer)

	_, err := agent.Analyze(context.Background(), "https://www.youtube.com/@gone")
	if !errors.Is(err, ErrYouTubeFetch) {
		t.Fatalf("err = %v, want ErrYouTubeFetch", err)
	}
	if err.Error() != "Failed to fetch YouTube data" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestBuildContentContext(t *testing.T) {
	t.Run("github lists repo descriptions", func(t *testing.T) {
		state := analysisState{
			platform: models.PlatformGitHub,
			topContent: []models.ContentItem{
				{Title: "proj", Description: "does things"},
				{Title: "bare"},
			},
		}
		got := buildContentContext(state)
		want := "- proj: does things\n- bare: No description"
		if got != want {
			t.Errorf("context = %q, want %q", got, want)
		}
	})

	t.Run("instagram lists post engagement", func(t *testing.T) {
		state := analysisState{
			platform: models.PlatformInstagram,
			topContent: []models.ContentItem{
				{Title: "New video!", Likes: models.Count(500), Comments: models.Count(12)},
			},
		}
		got := buildContentContext(state)
		if got != "- Post: New video! (500 likes, 12 comments)" {
			t.Errorf("context = %q", got)
		}
	})

	t.Run("youtube skips placeholder summaries", func(t *testing.T) {
		state := analysisState{
			platform: models.PlatformYouTube,
			profile:  &models.CreatorProfile{About: "All about birds"},
			topContent: []models.ContentItem{
				{Title: "Owls", Description: "Night birds up close"},
			},
			summaries: []models.SummaryRecord{
				{TranscriptRecord: models.TranscriptRecord{Title: "Owls"}, Summary: ai.NoContextSummary},
			},
		}
		got := buildContentContext(state)
		if got != "- Owls: Night birds up close" {
			t.Errorf("context = %q", got)
		}
	})

	t.Run("youtube falls back to about text", func(t *testing.T) {
		state := analysisState{
			platform: models.PlatformYouTube,
			profile:  &models.CreatorProfile{About: "All about birds"},
		}
		got := buildContentContext(state)
		if !strings.HasPrefix(got, "Channel creates content about: All about birds") {
			t.Errorf("context = %q", got)
		}
	})
}
