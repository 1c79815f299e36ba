package report

import "strconv"

// timeLayout is the timestamp format used in human-readable output.
const timeLayout = "2006-01-02 15:04:05"

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
