// Package github fetches developer profiles from the GitHub REST API:
// user info, top repositories by stars, language mix, and the README of
// the most starred repository.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"sort"
	"time"

	"golang.org/x/oauth2"

	"holokit/internal/format"
	"holokit/internal/models"
)

const apiBaseURL = "https://api.github.com"

// reservedPaths are github.com paths that look like usernames but are not.
var reservedPaths = map[string]bool{
	"features":    true,
	"pricing":     true,
	"explore":     true,
	"topics":      true,
	"collections": true,
}

var usernamePattern = regexp.MustCompile(`github\.com/([a-zA-Z0-9_-]+)`)

// Client talks to the GitHub REST API. A token raises rate limits but is
// optional; unauthenticated requests work for public profiles.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(token string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		httpClient = oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		httpClient.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    apiBaseURL,
	}
}

// ExtractUsername pulls a GitHub username out of a profile or repository
// URL. Reserved site paths are rejected.
func ExtractUsername(rawURL string) string {
	match := usernamePattern.FindStringSubmatch(rawURL)
	if match == nil {
		return ""
	}
	if reservedPaths[match[1]] {
		return ""
	}
	return match[1]
}

type userResponse struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Followers int64  `json:"followers"`
}

type repoResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int64  `json:"stargazers_count"`
	Fork        bool   `json:"fork"`
}

// FetchProfile builds the creator profile for a GitHub user: top five
// non-fork repositories by stars, the aggregate language mix, and the top
// repository's README. Repo, language, and README failures degrade to
// partial results; only a failed user lookup is fatal.
func (c *Client) FetchProfile(ctx context.Context, rawURL string) (*models.CreatorProfile, error) {
	username := ExtractUsername(rawURL)
	if username == "" {
		return nil, fmt.Errorf("could not extract GitHub username from URL: %s", rawURL)
	}

	var user userResponse
	if err := c.get(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, username), &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	repos := c.topReposByStars(ctx, username)

	profile := &models.CreatorProfile{
		Platform:    models.PlatformGitHub,
		Name:        name,
		Subscribers: format.Count(user.Followers) + " followers",
		About:       user.Bio,
		Languages:   c.topLanguages(ctx, username),
	}

	for _, repo := range repos {
		profile.Items = append(profile.Items, models.ContentItem{
			Title:       repo.Name,
			Description: repo.Description,
			Stars:       models.Count(repo.Stars),
		})
	}

	if len(repos) > 0 {
		profile.Readme = c.repoReadme(ctx, username, repos[0].Name)
	}

	return profile, nil
}

// topReposByStars lists up to 30 recently updated repos the user owns,
// drops forks, and returns the five most starred.
func (c *Client) topReposByStars(ctx context.Context, username string) []repoResponse {
	repos, err := c.listRepos(ctx, username)
	if err != nil {
		log.Printf("Failed to fetch repositories for %s: %v", username, err)
		return nil
	}

	var originals []repoResponse
	for _, repo := range repos {
		if !repo.Fork {
			originals = append(originals, repo)
		}
	}

	sort.SliceStable(originals, func(i, j int) bool {
		return originals[i].Stars > originals[j].Stars
	})

	if len(originals) > 5 {
		originals = originals[:5]
	}
	return originals
}

func (c *Client) listRepos(ctx context.Context, username string) ([]repoResponse, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=30&type=owner", c.baseURL, username)

	var repos []repoResponse
	if err := c.get(ctx, url, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// topLanguages aggregates byte counts per language across the user's
// non-fork repositories and returns the five largest.
func (c *Client) topLanguages(ctx context.Context, username string) []string {
	repos, err := c.listRepos(ctx, username)
	if err != nil {
		log.Printf("Failed to fetch repositories for language stats: %v", err)
		return nil
	}

	totals := make(map[string]int64)
	for _, repo := range repos {
		if repo.Fork {
			continue
		}

		var langs map[string]int64
		url := fmt.Sprintf("%s/repos/%s/languages", c.baseURL, repo.FullName)
		if err := c.get(ctx, url, &langs); err != nil {
			log.Printf("Failed to fetch languages for %s: %v", repo.Name, err)
			continue
		}
		for lang, bytes := range langs {
			totals[lang] += bytes
		}
	}

	type langCount struct {
		name  string
		bytes int64
	}
	counts := make([]langCount, 0, len(totals))
	for lang, bytes := range totals {
		counts = append(counts, langCount{lang, bytes})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].bytes != counts[j].bytes {
			return counts[i].bytes > counts[j].bytes
		}
		return counts[i].name < counts[j].name
	})

	var top []string
	for i, count := range counts {
		if i == 5 {
			break
		}
		top = append(top, count.name)
	}
	return top
}

func (c *Client) repoReadme(ctx context.Context, username, repo string) string {
	var readme struct {
		DownloadURL string `json:"download_url"`
	}
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, username, repo)
	if err := c.get(ctx, url, &readme); err != nil {
		log.Printf("Failed to fetch README for %s: %v", repo, err)
		return ""
	}
	if readme.DownloadURL == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readme.DownloadURL, nil)
	if err != nil {
		return ""
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Failed to download README for %s: %v", repo, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(content)
}

func (c *Client) get(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
