package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const timedTextURL = "https://www.youtube.com/api/timedtext"

// englishVariants are tried before falling back to whatever track exists.
var englishVariants = []string{"en", "en-US", "en-GB"}

// TranscriptClient fetches caption tracks from the YouTube timedtext
// endpoint. Videos with captions disabled yield an error; callers treat
// that as "no transcript", never as a fatal condition.
type TranscriptClient struct {
	httpClient *http.Client
	endpoint   string
}

func NewTranscriptClient() *TranscriptClient {
	return &TranscriptClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   timedTextURL,
	}
}

type captionTrack struct {
	LangCode string `xml:"lang_code,attr"`
}

type captionTrackList struct {
	Tracks []captionTrack `xml:"track"`
}

type captionTranscript struct {
	Texts []string `xml:"text"`
}

// FetchTranscript returns the full caption text of a video: English tracks
// first, then the first fetchable track in any language. Segments are joined
// with single spaces and HTML entities are unescaped.
func (t *TranscriptClient) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	for _, lang := range englishVariants {
		text, err := t.fetchTrack(ctx, videoID, lang)
		if err == nil && text != "" {
			return text, nil
		}
	}

	langs, err := t.listTracks(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("failed to list caption tracks for %s: %w", videoID, err)
	}

	for _, lang := range langs {
		text, err := t.fetchTrack(ctx, videoID, lang)
		if err == nil && text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("no transcript available for %s (captions may be disabled)", videoID)
}

func (t *TranscriptClient) fetchTrack(ctx context.Context, videoID, lang string) (string, error) {
	query := url.Values{"v": {videoID}, "lang": {lang}}
	body, err := t.get(ctx, query)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", nil
	}

	var transcript captionTranscript
	if err := xml.Unmarshal(body, &transcript); err != nil {
		return "", fmt.Errorf("failed to parse caption track: %w", err)
	}

	var segments []string
	for _, text := range transcript.Texts {
		segment := strings.TrimSpace(html.UnescapeString(text))
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, " "), nil
}

func (t *TranscriptClient) listTracks(ctx context.Context, videoID string) ([]string, error) {
	query := url.Values{"v": {videoID}, "type": {"list"}}
	body, err := t.get(ctx, query)
	if err != nil {
		return nil, err
	}

	var list captionTrackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse caption track list: %w", err)
	}

	var langs []string
	for _, track := range list.Tracks {
		if track.LangCode != "" {
			langs = append(langs, track.LangCode)
		}
	}
	return langs, nil
}

func (t *TranscriptClient) get(ctx context.Context, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create timedtext request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
