package formatting

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders a civil date for chat output, e.g. "Tue, May 20 2025".
func FormatDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// FormatTeeTime turns "08:00" or "17:00" into "8:00 AM" / "5:00 PM".
// Anything that is not HH:MM is returned as is.
func FormatTeeTime(value string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// FormatPlayers renders a party size with the right noun.
func FormatPlayers(n int) string {
	if n == 1 {
		return "1 player"
	}
	return fmt.Sprintf("%d players", n)
}
