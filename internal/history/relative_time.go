package history

import (
	"fmt"
	"time"
)

const (
	minuteMillis = 60_000
	hourMillis   = 3_600_000
	dayMillis    = 86_400_000
	twoDayMillis = 172_800_000
	weekMillis   = 604_800_000
)

// FormatRelative renders a stored timestamp as a recency string relative to
// now. Both arguments are Unix milliseconds. Bands are checked in order and
// are closed at their lower bound: exactly 60s is "1 minute ago", not
// "Just now". Beyond a week the absolute short date is shown.
func FormatRelative(tsMillis, nowMillis int64) string {
	diff := nowMillis - tsMillis
	switch {
	case diff < minuteMillis:
		return "Just now"
	case diff < hourMillis:
		return pluralize(diff/minuteMillis, "minute")
	case diff < dayMillis:
		return pluralize(diff/hourMillis, "hour")
	case diff < twoDayMillis:
		return "Yesterday"
	case diff < weekMillis:
		return fmt.Sprintf("%d days ago", diff/dayMillis)
	default:
		return time.UnixMilli(tsMillis).Format("Jan 2")
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
