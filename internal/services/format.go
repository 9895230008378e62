package services

import "fmt"

// FormatDuration renders a travel time in seconds the way the route panel
// displays it: "2 hr 5 min", "14 min", or "<1 min".
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return "<1 min"
	}

	minutes := (seconds + 30) / 60
	hours := minutes / 60
	minutes %= 60

	if hours == 0 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// FormatDistance renders meters as "850 m" below one kilometer and
// "12.4 km" above.
func FormatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}
