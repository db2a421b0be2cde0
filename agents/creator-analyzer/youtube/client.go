// Package youtube fetches channel profiles, top videos, and caption
// transcripts from the YouTube Data API.
package youtube

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"holokit/internal/format"
	"holokit/internal/models"
)

var (
	channelIDPattern = regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]+)`)
	handlePattern    = regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_.-]+)`)
	customPattern    = regexp.MustCompile(`youtube\.com/(?:c|user)/([a-zA-Z0-9_-]+)`)

	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	}
)

// Client talks to the YouTube Data API with an API key.
type Client struct {
	service     *youtube.Service
	transcripts *TranscriptClient
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:     service,
		transcripts: NewTranscriptClient(),
	}, nil
}

// FetchProfile resolves any YouTube URL (channel, handle, legacy custom name,
// or video) to its channel and returns the channel profile with up to five
// top videos by view count.
func (c *Client) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	channelID, err := c.resolveChannelID(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	call := c.service.Channels.List([]string{"snippet", "statistics"}).Id(channelID).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}

	channel := resp.Items[0]
	profile := &models.CreatorProfile{
		Platform:    models.PlatformYouTube,
		Name:        channel.Snippet.Title,
		Subscribers: format.Count(int64(channel.Statistics.SubscriberCount)),
		About:       channel.Snippet.Description,
		Items:       c.topVideos(ctx, channelID),
	}
	return profile, nil
}

// FetchTranscript retrieves the caption text for a video.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	return c.transcripts.FetchTranscript(ctx, videoID)
}

func (c *Client) resolveChannelID(ctx context.Context, rawURL string) (string, error) {
	// Video URLs resolve through the video's channel.
	if videoID := extractVideoID(rawURL); videoID != "" {
		return c.channelFromVideo(ctx, videoID)
	}

	if match := channelIDPattern.FindStringSubmatch(rawURL); match != nil {
		return match[1], nil
	}
	if match := handlePattern.FindStringSubmatch(rawURL); match != nil {
		return c.searchChannel(ctx, "@"+match[1])
	}
	if match := customPattern.FindStringSubmatch(rawURL); match != nil {
		return c.searchChannel(ctx, match[1])
	}

	return "", fmt.Errorf("could not resolve a channel from URL: %s", rawURL)
}

func (c *Client) channelFromVideo(ctx context.Context, videoID string) (string, error) {
	call := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("video %s not found", videoID)
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

func (c *Client) searchChannel(ctx context.Context, query string) (string, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("channel search for %q failed: %w", query, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("no channel found for %q", query)
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

// topVideos returns up to five of the channel's most viewed videos with
// statistics. Failures degrade to an empty list, the profile itself is
// still useful without them.
func (c *Client) topVideos(ctx context.Context, channelID string) []models.ContentItem {
	searchCall := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("viewCount").
		Type("video").
		MaxResults(5).
		Context(ctx)

	searchResp, err := searchCall.Do()
	if err != nil {
		log.Printf("Failed to search top videos for %s: %v", channelID, err)
		return nil
	}

	var videoIDs []string
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return nil
	}

	videosCall := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx)

	videosResp, err := videosCall.Do()
	if err != nil {
		log.Printf("Failed to fetch video details for %s: %v", channelID, err)
		return nil
	}

	var items []models.ContentItem
	for _, video := range videosResp.Items {
		item := models.ContentItem{
			Title:       video.Snippet.Title,
			VideoID:     video.Id,
			Description: video.Snippet.Description,
		}
		if video.Statistics != nil {
			item.ViewCount = models.Count(int64(video.Statistics.ViewCount))
		}
		items = append(items, item)
	}
	return items
}

func extractVideoID(rawURL string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1]
		}
	}
	return ""
}
