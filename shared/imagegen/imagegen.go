// Package imagegen generates profile cover images through the Replicate API,
// falling back to a gradient placeholder when the API is unavailable.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"holokit/internal/models"
)

const (
	predictionsURL = "https://api.replicate.com/v1/predictions"

	// Stable Diffusion version pinned for cover generation.
	coverModelVersion = "db21e45d3f7023abc2a46ee38a23973f6dce16bb082a930b0c49861f96d1e5bf"
)

// Result is the generation outcome returned to the API layer. Generation
// never fails outright, a placeholder URL is produced instead.
type Result struct {
	ImageURL string `json:"image_url"`
	Message  string `json:"message"`
}

// CoverRequest describes the creator profile the cover is generated for.
type CoverRequest struct {
	Platform    models.Platform
	ChannelName string
	Subscribers string
	Category    string
}

// Client calls the Replicate predictions endpoint.
type Client struct {
	httpClient *http.Client
	apiToken   string
	endpoint   string
}

func NewClient(apiToken string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiToken:   apiToken,
		endpoint:   predictionsURL,
	}
}

// GenerateCover produces a 1200x400 cover image for the creator. Without an
// API token, or on any API failure, it returns a placeholder instead.
func (c *Client) GenerateCover(ctx context.Context, req CoverRequest) Result {
	if c.apiToken == "" {
		return Result{
			ImageURL: placeholderURL(req.Platform, req.ChannelName),
			Message:  "Using placeholder image (Replicate API key not configured)",
		}
	}

	imageURL, err := c.runPrediction(ctx, req)
	if err != nil {
		log.Printf("❌ Image generation error: %v", err)
		return Result{
			ImageURL: placeholderURL(req.Platform, req.ChannelName),
			Message:  fmt.Sprintf("Error generating image, using placeholder: %s", err),
		}
	}

	return Result{
		ImageURL: imageURL,
		Message:  "Image generated successfully",
	}
}

type predictionRequest struct {
	Version string          `json:"version"`
	Input   predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt     string `json:"prompt"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	NumOutputs int    `json:"num_outputs"`
}

type predictionResponse struct {
	Status string   `json:"status"`
	Output []string `json:"output"`
	Error  string   `json:"error"`
}

func (c *Client) runPrediction(ctx context.Context, req CoverRequest) (string, error) {
	prompt := coverPrompt(req)

	body, err := json.Marshal(predictionRequest{
		Version: coverModelVersion,
		Input: predictionInput{
			Prompt:     prompt,
			Width:      1200,
			Height:     400,
			NumOutputs: 1,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create prediction request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	httpReq.Header.Set("Content-Type", "application/json")
	// Block until the prediction finishes instead of polling.
	httpReq.Header.Set("Prefer", "wait")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("prediction API returned status %d: %s", resp.StatusCode, string(data))
	}

	var prediction predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return "", fmt.Errorf("failed to decode prediction response: %w", err)
	}

	if prediction.Error != "" {
		return "", fmt.Errorf("prediction failed: %s", prediction.Error)
	}
	if len(prediction.Output) == 0 {
		return "", fmt.Errorf("prediction returned no output (status: %s)", prediction.Status)
	}
	return prediction.Output[0], nil
}

func coverPrompt(req CoverRequest) string {
	return fmt.Sprintf(`Professional holographic social media cover image for %s.
Platform: %s. Category: %s. Audience: %s.
Style: Modern, glassy, 3D holographic effect with vibrant gradients.
Colors: Cyan, purple, and pink neon tones. Abstract tech background.
Text overlay: "%s" in bold futuristic font.
High quality, 4K resolution, ultra detailed.`,
		req.ChannelName, req.Platform, req.Category, req.Subscribers, req.ChannelName)
}

func placeholderURL(platform models.Platform, channelName string) string {
	return fmt.Sprintf("https://via.placeholder.com/1200x400/%s/ffffff?text=%s",
		platformColor(platform), url.QueryEscape(channelName))
}

func platformColor(platform models.Platform) string {
	switch models.Platform(strings.ToLower(string(platform))) {
	case models.PlatformYouTube:
		return "FF0000"
	case models.PlatformGitHub:
		return "8B5CF6"
	case models.PlatformInstagram:
		return "E4405F"
	default:
		return "22D3EE"
	}
}
