package tui

import (
	"fmt"
	"time"

	"github.com/muesli/reflow/truncate"
)

// truncateText shortens a string to max display cells with an ellipsis
func truncateText(s string, max int) string {
	if max < 4 {
		max = 4
	}
	return truncate.StringWithTail(s, uint(max), "...")
}

// clock formats a duration as mm:ss, or h:mm:ss past the hour
func clock(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
