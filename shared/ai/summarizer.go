package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"holokit/internal/models"
	"holokit/shared/config"

	"google.golang.org/genai"
)

// transcriptLimit caps how much transcript text is sent to the model.
const transcriptLimit = 3000

// descriptionLimit caps the description prefix used when no transcript exists.
const descriptionLimit = 200

// NoContextSummary marks items where neither transcript nor description was
// available. Downstream context building checks for the "[No" prefix.
const NoContextSummary = "[No transcript or description available]"

// Summarizer compresses video transcripts into 2-3 sentence summaries using
// Gemini. With no API key configured it produces deterministic mock
// summaries instead, so the pipeline stays fully exercisable offline.
type Summarizer struct {
	client *genai.Client
	model  string
}

func NewSummarizer(cfg *config.Config) (*Summarizer, error) {
	if cfg.AI.GeminiAPIKey == "" {
		log.Println("No Gemini API key, summarizer running in mock mode")
		return &Summarizer{model: cfg.AI.Model}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Summarizer{client: client, model: cfg.AI.Model}, nil
}

// SummarizeTranscript summarizes a single transcript. Model failures never
// propagate: the caller always gets a usable string back.
func (s *Summarizer) SummarizeTranscript(ctx context.Context, transcript, title string) string {
	if s.client == nil {
		return fmt.Sprintf("[Mock Summary] Video discusses: %s", title)
	}

	systemPrompt := `You are a video content summarizer.
Create a concise 2-3 sentence summary of the video transcript.
Focus on the main topic, key points, and overall message.
Be factual and direct.`

	userPrompt := fmt.Sprintf(`Video Title: %s

Transcript:
%s

Provide a brief summary (2-3 sentences):`, title, truncateTranscript(transcript))

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		log.Printf("Error summarizing transcript for %s: %v", title, err)
		return fmt.Sprintf("[Error] Could not summarize: %s", title)
	}

	return strings.TrimSpace(result.Text())
}

// SummarizeAll applies the summary policy to each record in order:
// no transcript and no description yields the fixed placeholder, a
// description alone yields a synthesized one-liner, and a transcript goes
// through the model.
func (s *Summarizer) SummarizeAll(ctx context.Context, records []models.TranscriptRecord) []models.SummaryRecord {
	summaries := make([]models.SummaryRecord, 0, len(records))

	for _, rec := range records {
		var summary string
		switch {
		case rec.Transcript == "" && rec.Description == "":
			summary = NoContextSummary
		case rec.Transcript == "":
			desc := rec.Description
			if len(desc) > descriptionLimit {
				desc = desc[:descriptionLimit]
			}
			summary = fmt.Sprintf("Video titled '%s' - %s", rec.Title, desc)
		default:
			summary = s.SummarizeTranscript(ctx, rec.Transcript, rec.Title)
		}

		summaries = append(summaries, models.SummaryRecord{
			TranscriptRecord: rec,
			Summary:          summary,
		})
	}

	return summaries
}

func truncateTranscript(transcript string) string {
	if len(transcript) <= transcriptLimit {
		return transcript
	}
	return transcript[:transcriptLimit]
}
