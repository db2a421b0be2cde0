package models

// Platform identifies which service a creator URL belongs to.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformGitHub    Platform = "github"
	PlatformInstagram Platform = "instagram"
	PlatformUnknown   Platform = "unknown"
)

// ContentItem is a single piece of top content: a video, a repository, or a
// post, depending on the platform. Metric fields are pointers so that only
// the metrics a platform actually reports appear in the JSON output.
type ContentItem struct {
	Title       string `json:"title"`
	VideoID     string `json:"video_id,omitempty"`
	Description string `json:"description,omitempty"`
	ViewCount   *int64 `json:"view_count,omitempty"`
	Stars       *int64 `json:"stars,omitempty"`
	Likes       *int64 `json:"likes,omitempty"`
	Comments    *int64 `json:"comments,omitempty"`
	MediaType   string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Count wraps an engagement metric for a ContentItem.
func Count(v int64) *int64 { return &v }

// CreatorProfile is the normalized result of a platform fetch. Items holds
// up to five entries; the pipeline surfaces at most two to callers.
type CreatorProfile struct {
	Platform    Platform
	Name        string
	Subscribers string // formatted display string, e.g. "1.5M"
	About       string
	Items       []ContentItem
	Languages   []string // GitHub: byte-weighted top languages
	Readme      string   // GitHub: README of the top-starred repository
	Mock        bool     // served from fixed fallback data instead of the live API
}

// TranscriptRecord pairs a video with its caption text. Transcript is empty
// when captions are disabled or unavailable; Description is the fallback
// context for summarization in that case.
type TranscriptRecord struct {
	Title       string `json:"title"`
	VideoID     string `json:"video_id,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
	Description string `json:"description,omitempty"`
}

// SummaryRecord is a TranscriptRecord with its derived summary. Summary is
// never empty: the summarizer substitutes a marked placeholder when it has
// nothing to work with.
type SummaryRecord struct {
	TranscriptRecord
	Summary string `json:"summary"`
}

// AnalysisResult is the fixed-shape output of a completed analysis run.
type AnalysisResult struct {
	Platform          Platform        `json:"platform"`
	ChannelName       string          `json:"channel_name"`
	Subscribers       string          `json:"subscribers"`
	ContentDescriptor string          `json:"content_descriptor"`
	ContentSummary    string          `json:"content_summary"`
	About             string          `json:"about"`
	TopContent        []ContentItem   `json:"top_content"`
	Summaries         []SummaryRecord `json:"summaries"`
}
