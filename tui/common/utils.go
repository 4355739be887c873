package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to the given display width, appending an ellipsis when it
// was shortened. Width is measured in terminal cells, so styled text and
// wide runes are handled correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Cut(s, 0, width-1) + "…"
}

// RelativeTime renders t against now in the compact feed style
// ("just now", "5m", "3h", "2d", else a date).
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// EstimateWrappedLines returns how many terminal lines text occupies when
// wrapped at width. Used for scroll-gate math in the detail view.
func EstimateWrappedLines(text string, width int) int {
	if width < 1 {
		width = 1
	}
	lines := 0
	for ln := range strings.SplitSeq(text, "\n") {
		r := []rune(ln)
		if len(r) == 0 {
			lines++
			continue
		}
		lines += (len(r)-1)/width + 1
	}
	if lines < 1 {
		lines = 1
	}
	return lines
}
