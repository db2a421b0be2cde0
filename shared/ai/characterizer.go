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

// Characterization is the two-part result of content analysis: a one-word
// descriptor plus a short style summary.
type Characterization struct {
	Descriptor string
	Summary    string
}

// Characterizer derives a creator's content descriptor and style summary
// from aggregated context. Like the Summarizer it degrades to fixed
// deterministic output when no model is configured, and it never fails a
// request: any model error is absorbed into a fallback pair.
type Characterizer struct {
	client *genai.Client
	model  string
}

func NewCharacterizer(cfg *config.Config) (*Characterizer, error) {
	if cfg.AI.GeminiAPIKey == "" {
		log.Println("No Gemini API key, characterizer running in mock mode")
		return &Characterizer{model: cfg.AI.Model}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Characterizer{client: client, model: cfg.AI.Model}, nil
}

const characterizerSystemPrompt = `You are a content analyst. Analyze creator profiles and provide:
1. A ONE-WORD descriptor that captures their content vibe (e.g., "Innovator", "Educator", "Reviewer")
   - Do NOT use markdown formatting (no ** or __)
   - Just return the single word
2. A SHORT summary (1-2 sentences) describing their content style and focus

Be concise and insightful.`

// Characterize produces the descriptor/summary pair for a creator.
func (c *Characterizer) Characterize(ctx context.Context, platform models.Platform, name, about, contentContext string) Characterization {
	if c.client == nil {
		return Characterization{
			Descriptor: "Tech Educator",
			Summary:    fmt.Sprintf("%s creates content focused on technology, development, and innovation.", name),
		}
	}

	userPrompt := fmt.Sprintf(`Creator: %s
Platform: %s

About: %s

Recent Content:
%s

Provide:
1. One-word descriptor:
2. Short summary:`, name, strings.ToUpper(string(platform)), about, contentContext)

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(characterizerSystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.5),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		log.Printf("Error analyzing content for %s: %v", name, err)
		return Characterization{
			Descriptor: "Creator",
			Summary:    fmt.Sprintf("%s creates content on %s.", name, platform),
		}
	}

	return parseCharacterization(strings.TrimSpace(result.Text()))
}

// parseCharacterization applies the best-effort line heuristic to the model
// response. Lines labelled "descriptor:" or starting with "1." carry the
// descriptor; "summary:" or "2." carry the summary. When neither label is
// found, the descriptor falls back to a generic word and the summary keeps
// the whole raw response.
func parseCharacterization(raw string) Characterization {
	descriptor := "Creator"
	summary := raw

	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "descriptor:") || strings.HasPrefix(line, "1."):
			if idx := strings.LastIndex(line, ":"); idx != -1 {
				descriptor = line[idx+1:]
			} else {
				descriptor = strings.TrimPrefix(line, "1.")
			}
			descriptor = strings.Trim(descriptor, "\"'*_ \t")
		case strings.Contains(lower, "summary:") || strings.HasPrefix(line, "2."):
			if idx := strings.Index(line, ":"); idx != -1 {
				summary = strings.TrimSpace(line[idx+1:])
			} else {
				summary = strings.TrimSpace(line)
			}
		}
	}

	descriptor = stripEmphasis(descriptor)

	return Characterization{Descriptor: descriptor, Summary: summary}
}

func stripEmphasis(s string) string {
	replacer := strings.NewReplacer("**", "", "__", "", "*", "", "_", "")
	return strings.TrimSpace(replacer.Replace(s))
}
