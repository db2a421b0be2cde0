// Package instagram fetches creator profiles through the Meta Graph API
// Business Discovery endpoint. Without credentials, or when the API call
// fails, a fixed mock profile table stands in.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"time"

	"holokit/internal/format"
	"holokit/internal/models"
	"holokit/shared/config"
)

const graphBaseURL = "https://graph.instagram.com"

// reservedPaths are instagram.com paths that are not usernames.
var reservedPaths = map[string]bool{
	"p":        true,
	"reel":     true,
	"tv":       true,
	"explore":  true,
	"accounts": true,
}

var usernamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`instagram\.com/([^/?]+)`),
	regexp.MustCompile(`instagr\.am/([^/?]+)`),
}

// Client queries Business Discovery through the caller's own business
// account ID. Both the access token and the account ID are required.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	accessToken       string
	businessAccountID string
}

func NewClient(cfg *config.InstagramConfig) *Client {
	return &Client{
		httpClient:        &http.Client{Timeout: 10 * time.Second},
		baseURL:           graphBaseURL,
		accessToken:       cfg.AccessToken,
		businessAccountID: cfg.BusinessAccountID,
	}
}

// ExtractUsername pulls an Instagram username out of a profile URL.
// Post, reel, and other non-profile paths are rejected.
func ExtractUsername(rawURL string) string {
	for _, pattern := range usernamePatterns {
		match := pattern.FindStringSubmatch(rawURL)
		if match == nil {
			continue
		}
		if !reservedPaths[match[1]] {
			return match[1]
		}
	}
	return ""
}

type discoveredProfile struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	Biography      string `json:"biography"`
	FollowersCount int64  `json:"followers_count"`
}

type discoveredMedia struct {
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	Permalink     string `json:"permalink"`
	LikeCount     int64  `json:"like_count"`
	CommentsCount int64  `json:"comments_count"`
}

// FetchProfile returns the creator's profile with their top three posts by
// like count. API failures fall back to the mock profile table so analysis
// always has something to work with.
func (c *Client) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	username := ExtractUsername(rawURL)
	if username == "" {
		return nil, fmt.Errorf("Could not extract Instagram username from URL")
	}

	profile, err := c.discoverProfile(ctx, username)
	if err != nil {
		log.Printf("❌ Instagram API error for @%s, using mock data: %v", username, err)
		return MockProfile(username), nil
	}

	name := profile.Name
	if name == "" {
		name = profile.Username
	}

	result := &models.CreatorProfile{
		Platform:    models.PlatformInstagram,
		Name:        name,
		Subscribers: format.Count(profile.FollowersCount) + " followers",
		About:       profile.Biography,
	}

	media, err := c.discoverMedia(ctx, username)
	if err != nil {
		log.Printf("❌ Instagram media fetch failed for @%s: %v", username, err)
		media = nil
	}

	sort.SliceStable(media, func(i, j int) bool {
		return media[i].LikeCount > media[j].LikeCount
	})
	if len(media) > 3 {
		media = media[:3]
	}

	for _, post := range media {
		title := format.Clip(post.Caption, 100)
		if title == "" {
			title = "No caption"
		}
		result.Items = append(result.Items, models.ContentItem{
			Title:     title,
			Likes:     models.Count(post.LikeCount),
			Comments:  models.Count(post.CommentsCount),
			MediaType: post.MediaType,
			URL:       post.Permalink,
		})
	}

	return result, nil
}

func (c *Client) discoverProfile(ctx context.Context, username string) (*discoveredProfile, error) {
	fields := fmt.Sprintf("business_discovery.username(%s){id,username,name,biography,followers_count,follows_count,media_count,profile_picture_url,website}", username)

	var envelope struct {
		BusinessDiscovery discoveredProfile `json:"business_discovery"`
	}
	if err := c.get(ctx, fields, &envelope); err != nil {
		return nil, err
	}
	if envelope.BusinessDiscovery.Username == "" {
		return nil, fmt.Errorf("business discovery returned no profile for @%s", username)
	}
	return &envelope.BusinessDiscovery, nil
}

func (c *Client) discoverMedia(ctx context.Context, username string) ([]discoveredMedia, error) {
	fields := fmt.Sprintf("business_discovery.username(%s){media.limit(6){id,caption,media_type,media_url,permalink,timestamp,like_count,comments_count}}", username)

	var envelope struct {
		BusinessDiscovery struct {
			Media struct {
				Data []discoveredMedia `json:"data"`
			} `json:"media"`
		} `json:"business_discovery"`
	}
	if err := c.get(ctx, fields, &envelope); err != nil {
		return nil, err
	}
	return envelope.BusinessDiscovery.Media.Data, nil
}

func (c *Client) get(ctx context.Context, fields string, v interface{}) error {
	query := url.Values{
		"fields":       {fields},
		"access_token": {c.accessToken},
	}
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, c.businessAccountID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Instagram API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
