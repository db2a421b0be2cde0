// Package format holds the display helpers shared by the platform clients.
package format

import "fmt"

// Count renders a follower/subscriber/view count with K/M/B suffixes:
// 1500 -> "1.5K", 1500000 -> "1.5M", 1500000000 -> "1.5B". Values under a
// thousand render as the plain integer.
func Count(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Truncate cuts s to at most max bytes, appending "..." when anything was
// removed.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Clip cuts s to at most max runes with no suffix. Captions and bios carry
// emoji, so this counts runes rather than bytes.
func Clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
