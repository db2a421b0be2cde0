// Package creatoranalyzer runs the creator profile analysis pipeline:
// platform detection, platform data fetch, transcript retrieval,
// summarization, and characterization.
package creatoranalyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"holokit/internal/format"
	"holokit/internal/models"
	"holokit/shared/ai"
)

// Pipeline errors surfaced to API callers. The messages are the response
// payload, so they read as user-facing text.
var (
	ErrUnsupportedPlatform = errors.New("Unsupported platform. Use YouTube or GitHub URL.")
	ErrYouTubeFetch        = errors.New("Failed to fetch YouTube data")
	ErrGitHubFetch         = errors.New("Failed to fetch GitHub data")
)

// ProfileFetcher is the fetch contract every platform client implements.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, url string) (*models.CreatorProfile, error)
}

// YouTubeProvider additionally retrieves video transcripts.
type YouTubeProvider interface {
	ProfileFetcher
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// TranscriptSummarizer folds a summary into each transcript record.
type TranscriptSummarizer interface {
	SummarizeAll(ctx context.Context, records []models.TranscriptRecord) []models.SummaryRecord
}

// ContentCharacterizer produces the descriptor and summary for a creator.
type ContentCharacterizer interface {
	Characterize(ctx context.Context, platform models.Platform, name, about, contentContext string) ai.Characterization
}

// Agent wires the platform clients and model stages into one pipeline.
type Agent struct {
	youtube       YouTubeProvider
	github        ProfileFetcher
	instagram     ProfileFetcher
	summarizer    TranscriptSummarizer
	characterizer ContentCharacterizer
}

func New(youtube YouTubeProvider, github, instagram ProfileFetcher, summarizer TranscriptSummarizer, characterizer ContentCharacterizer) *Agent {
	return &Agent{
		youtube:       youtube,
		github:        github,
		instagram:     instagram,
		summarizer:    summarizer,
		characterizer: characterizer,
	}
}

// analysisState carries intermediate results between pipeline stages. Stage
// functions take it by value and return the updated copy; nothing is shared
// between concurrent analyses.
type analysisState struct {
	url        string
	platform   models.Platform
	profile    *models.CreatorProfile
	topContent []models.ContentItem
	summaries  []models.SummaryRecord
	character  ai.Characterization
}

// Analyze runs the full pipeline for a creator URL. Unsupported URLs and
// platform fetch failures return an error; transcript and model failures
// degrade inside the stages and never fail the run.
func (a *Agent) Analyze(ctx context.Context, url string) (*models.AnalysisResult, error) {
	state := analysisState{url: url, platform: DetectPlatform(url)}
	log.Printf("🔍 Detected platform: %s", state.platform)

	var err error
	switch state.platform {
	case models.PlatformYouTube:
		if state, err = a.fetchYouTube(ctx, state); err != nil {
			return nil, err
		}
		state = a.summarizeVideos(ctx, state)
	case models.PlatformGitHub:
		if state, err = a.fetchGitHub(ctx, state); err != nil {
			return nil, err
		}
	case models.PlatformInstagram:
		if state, err = a.fetchInstagram(ctx, state); err != nil {
			return nil, err
		}
	case models.PlatformUnknown:
		return nil, ErrUnsupportedPlatform
	default:
		return nil, ErrUnsupportedPlatform
	}

	state = a.characterize(ctx, state)
	return formatOutput(state), nil
}

func (a *Agent) fetchYouTube(ctx context.Context, state analysisState) (analysisState, error) {
	log.Printf("📺 Fetching YouTube data from: %s", state.url)

	profile, err := a.youtube.FetchProfile(ctx, state.url)
	if err != nil {
		log.Printf("YouTube fetch failed: %v", err)
		return state, ErrYouTubeFetch
	}

	state.profile = profile
	state.topContent = topN(profile.Items, 2)
	log.Printf("✅ Fetched: %s (%s subscribers)", profile.Name, profile.Subscribers)
	return state, nil
}

func (a *Agent) fetchGitHub(ctx context.Context, state analysisState) (analysisState, error) {
	log.Printf("💻 Fetching GitHub data from: %s", state.url)

	profile, err := a.github.FetchProfile(ctx, state.url)
	if err != nil {
		log.Printf("GitHub fetch failed: %v", err)
		return state, ErrGitHubFetch
	}

	state.profile = profile
	state.topContent = topN(profile.Items, 2)
	log.Printf("✅ Fetched: %s (%s)", profile.Name, profile.Subscribers)
	return state, nil
}

func (a *Agent) fetchInstagram(ctx context.Context, state analysisState) (analysisState, error) {
	log.Printf("📸 Fetching Instagram data from: %s", state.url)

	profile, err := a.instagram.FetchProfile(ctx, state.url)
	if err != nil {
		return state, err
	}

	state.profile = profile
	state.topContent = topN(profile.Items, 2)
	log.Printf("✅ Fetched: %s (%s)", profile.Name, profile.Subscribers)
	return state, nil
}

// summarizeVideos fetches transcripts for the top videos and summarizes
// them. A missing transcript leaves the record's description as the only
// context; the summarizer handles both cases.
func (a *Agent) summarizeVideos(ctx context.Context, state analysisState) analysisState {
	log.Printf("📝 Fetching transcripts for %d videos...", len(state.topContent))

	records := make([]models.TranscriptRecord, 0, len(state.topContent))
	for _, item := range state.topContent {
		record := models.TranscriptRecord{
			Title:       item.Title,
			VideoID:     item.VideoID,
			Description: item.Description,
		}

		if item.VideoID != "" {
			text, err := a.youtube.FetchTranscript(ctx, item.VideoID)
			if err != nil {
				log.Printf("⚠️  No transcript for %s: %v", item.VideoID, err)
			}
			record.Transcript = text
		}
		records = append(records, record)
	}

	log.Printf("🤖 Summarizing %d transcripts...", len(records))
	state.summaries = a.summarizer.SummarizeAll(ctx, records)
	return state
}

func (a *Agent) characterize(ctx context.Context, state analysisState) analysisState {
	log.Printf("🧠 Analyzing content for: %s", state.profile.Name)

	contentContext := buildContentContext(state)
	state.character = a.characterizer.Characterize(ctx, state.platform, state.profile.Name, state.profile.About, contentContext)
	return state
}

// buildContentContext renders the platform-appropriate content listing fed
// to the characterizer.
func buildContentContext(state analysisState) string {
	switch state.platform {
	case models.PlatformGitHub:
		var lines []string
		for _, item := range state.topContent {
			desc := item.Description
			if desc == "" {
				desc = "No description"
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", item.Title, desc))
		}
		return strings.Join(lines, "\n")

	case models.PlatformInstagram:
		var lines []string
		for _, item := range state.topContent {
			lines = append(lines, fmt.Sprintf("- Post: %s (%d likes, %d comments)",
				item.Title, countOrZero(item.Likes), countOrZero(item.Comments)))
		}
		return strings.Join(lines, "\n")

	default:
		// YouTube: summaries where usable, title and description otherwise.
		var lines []string
		for i, summary := range state.summaries {
			if summary.Summary != "" && !strings.HasPrefix(summary.Summary, "[No") {
				lines = append(lines, fmt.Sprintf("- %s: %s", summary.Title, summary.Summary))
				continue
			}
			if i < len(state.topContent) {
				desc := format.Clip(state.topContent[i].Description, 150)
				if desc == "" {
					desc = "Popular video"
				}
				lines = append(lines, fmt.Sprintf("- %s: %s", state.topContent[i].Title, desc))
			}
		}
		if len(lines) == 0 {
			return fmt.Sprintf("Channel creates content about: %s", format.Clip(state.profile.About, 200))
		}
		return strings.Join(lines, "\n")
	}
}

func formatOutput(state analysisState) *models.AnalysisResult {
	log.Println("📦 Formatting final output...")

	topContent := state.topContent
	if topContent == nil {
		topContent = []models.ContentItem{}
	}
	summaries := state.summaries
	if summaries == nil {
		summaries = []models.SummaryRecord{}
	}

	return &models.AnalysisResult{
		Platform:          state.platform,
		ChannelName:       state.profile.Name,
		Subscribers:       state.profile.Subscribers,
		ContentDescriptor: state.character.Descriptor,
		ContentSummary:    state.character.Summary,
		About:             state.profile.About,
		TopContent:        topContent,
		Summaries:         summaries,
	}
}

func topN(items []models.ContentItem, n int) []models.ContentItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func countOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
