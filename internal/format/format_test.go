package format

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		expected string
	}{
		{"Zero", 0, "0"},
		{"Under a thousand", 999, "999"},
		{"Thousands", 1500, "1.5K"},
		{"Exact thousand", 1000, "1.0K"},
		{"Millions", 1_500_000, "1.5M"},
		{"Billions", 1_500_000_000, "1.5B"},
		{"Just under a million", 999_999, "1000.0K"},
		{"Nineteen point two million", 19_200_000, "19.2M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.n); got != tt.expected {
				t.Errorf("Count(%d) = %s, want %s", tt.n, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"Short string untouched", "hello", 10, "hello"},
		{"Exact length untouched", "hello", 5, "hello"},
		{"Long string cut", "hello world", 5, "hello..."},
		{"Empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
			}
		})
	}
}
