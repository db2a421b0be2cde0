package ai

import (
	"context"
	"strings"
	"testing"

	"holokit/internal/models"
)

func TestTruncateTranscript(t *testing.T) {
	tests := []struct {
		name        string
		inputLen    int
		expectedLen int
	}{
		{"Short transcript untouched", 100, 100},
		{"Exactly at limit", transcriptLimit, transcriptLimit},
		{"One over limit", transcriptLimit + 1, transcriptLimit},
		{"Far over limit", transcriptLimit * 3, transcriptLimit},
		{"Empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.Repeat("a", tt.inputLen)
			out := truncateTranscript(in)
			if len(out) != tt.expectedLen {
				t.Errorf("truncateTranscript: got %d chars, want %d", len(out), tt.expectedLen)
			}
			if !strings.HasPrefix(in, out) {
				t.Error("truncation must keep the transcript prefix intact")
			}
		})
	}
}

func TestSummarizeAllMockMode(t *testing.T) {
	s := &Summarizer{model: "gemini-2.0-flash"} // no client: mock mode
	ctx := context.Background()

	t.Run("NoTranscriptNoDescription", func(t *testing.T) {
		out := s.SummarizeAll(ctx, []models.TranscriptRecord{
			{Title: "Silent Video"},
		})
		if len(out) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(out))
		}
		if out[0].Summary != NoContextSummary {
			t.Errorf("summary = %q, want %q", out[0].Summary, NoContextSummary)
		}
	})

	t.Run("DescriptionFallback", func(t *testing.T) {
		longDesc := strings.Repeat("d", 500)
		out := s.SummarizeAll(ctx, []models.TranscriptRecord{
			{Title: "My Setup Tour", Description: longDesc},
		})
		summary := out[0].Summary
		if !strings.Contains(summary, "My Setup Tour") {
			t.Errorf("summary %q should contain the video title", summary)
		}
		if !strings.Contains(summary, strings.Repeat("d", descriptionLimit)) {
			t.Errorf("summary should contain the %d-char description prefix", descriptionLimit)
		}
		if strings.Contains(summary, strings.Repeat("d", descriptionLimit+1)) {
			t.Errorf("description must be truncated to %d chars", descriptionLimit)
		}
	})

	t.Run("TranscriptGetsMockSummary", func(t *testing.T) {
		out := s.SummarizeAll(ctx, []models.TranscriptRecord{
			{Title: "Neovim Deep Dive", Transcript: "welcome back to the channel"},
		})
		if !strings.Contains(out[0].Summary, "[Mock Summary]") {
			t.Errorf("mock mode summary = %q, want mock marker", out[0].Summary)
		}
		if !strings.Contains(out[0].Summary, "Neovim Deep Dive") {
			t.Errorf("mock summary should mention the title, got %q", out[0].Summary)
		}
	})

	t.Run("OrderAndFieldsPreserved", func(t *testing.T) {
		records := []models.TranscriptRecord{
			{Title: "First", VideoID: "a1", Transcript: "text one"},
			{Title: "Second", VideoID: "b2", Description: "desc two"},
			{Title: "Third", VideoID: "c3"},
		}
		out := s.SummarizeAll(ctx, records)
		if len(out) != 3 {
			t.Fatalf("expected 3 summaries, got %d", len(out))
		}
		for i, rec := range records {
			if out[i].Title != rec.Title || out[i].VideoID != rec.VideoID {
				t.Errorf("record %d: original fields not preserved", i)
			}
			if out[i].Summary == "" {
				t.Errorf("record %d: summary must never be empty", i)
			}
		}
	})
}
