package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/sleepbar/internal/config"
	"github.com/dustin/go-humanize"
)

// Plural returns "1 second", "5 seconds" and so on.
func Plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatSeconds formats a second count the way progress lines show it.
func FormatSeconds(n int64) string {
	return fmt.Sprintf("%ds", n)
}

// FormatClock formats a wall-clock time as local HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Local().Format(config.ClockLayout)
}

// FormatSpan describes how far eta lies after start, e.g. "5 minutes from now".
func FormatSpan(start, eta time.Time) string {
	return strings.TrimSpace(humanize.RelTime(eta, start, "ago", "from now"))
}
