package ai

import (
	"context"
	"strings"
	"testing"

	"holokit/internal/models"
)

func TestParseCharacterization(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantDescriptor string
		wantSummary    string
	}{
		{
			name:           "Numbered labels",
			raw:            "1. One-word descriptor: Innovator\n2. Short summary: Builds ambitious open source tools.",
			wantDescriptor: "Innovator",
			wantSummary:    "Builds ambitious open source tools.",
		},
		{
			name:           "Plain labels",
			raw:            "Descriptor: Educator\nSummary: Teaches web development with humor.",
			wantDescriptor: "Educator",
			wantSummary:    "Teaches web development with humor.",
		},
		{
			name:           "Markdown emphasis stripped",
			raw:            "1. Descriptor: **Reviewer**\n2. Summary: In-depth gadget reviews.",
			wantDescriptor: "Reviewer",
			wantSummary:    "In-depth gadget reviews.",
		},
		{
			name:           "Quoted descriptor",
			raw:            "descriptor: \"Storyteller\"\nsummary: Narrative-driven videos.",
			wantDescriptor: "Storyteller",
			wantSummary:    "Narrative-driven videos.",
		},
		{
			name:           "No labels falls back to raw response",
			raw:            "This creator makes excellent coding tutorials.",
			wantDescriptor: "Creator",
			wantSummary:    "This creator makes excellent coding tutorials.",
		},
		{
			name:           "Summary keeps text after first colon only",
			raw:            "2. Summary: Reviews: phones, laptops and cameras.",
			wantDescriptor: "Creator",
			wantSummary:    "Reviews: phones, laptops and cameras.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCharacterization(tt.raw)
			if got.Descriptor != tt.wantDescriptor {
				t.Errorf("descriptor = %q, want %q", got.Descriptor, tt.wantDescriptor)
			}
			if got.Summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", got.Summary, tt.wantSummary)
			}
		})
	}
}

func TestCharacterizeMockMode(t *testing.T) {
	c := &Characterizer{model: "gemini-2.0-flash"} // no client: mock mode

	got := c.Characterize(context.Background(), models.PlatformGitHub, "torvalds", "kernel hacker", "- linux: the kernel")

	if got.Descriptor != "Tech Educator" {
		t.Errorf("mock descriptor = %q, want %q", got.Descriptor, "Tech Educator")
	}
	if !strings.Contains(got.Summary, "torvalds") {
		t.Errorf("mock summary %q should mention the creator name", got.Summary)
	}
}

func TestStripEmphasis(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"**Innovator**", "Innovator"},
		{"__Educator__", "Educator"},
		{"*Review*er", "Reviewer"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := stripEmphasis(tt.in); got != tt.expected {
			t.Errorf("stripEmphasis(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
