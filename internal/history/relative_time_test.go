package history

import (
	"testing"
	"time"
)

func TestFormatRelativeBands(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC).UnixMilli()

	cases := []struct {
		name string
		diff int64
		want string
	}{
		{"zero", 0, "Just now"},
		{"just_under_minute", 59_999, "Just now"},
		{"exactly_one_minute", 60_000, "1 minute ago"},
		{"two_minutes", 120_000, "2 minutes ago"},
		{"just_under_hour", 3_599_999, "59 minutes ago"},
		{"exactly_one_hour", 3_600_000, "1 hour ago"},
		{"five_hours", 18_000_000, "5 hours ago"},
		{"just_under_day", 86_399_999, "23 hours ago"},
		{"exactly_one_day", 86_400_000, "Yesterday"},
		{"just_under_two_days", 172_799_999, "Yesterday"},
		{"exactly_two_days", 172_800_000, "2 days ago"},
		{"six_days", 518_400_000, "6 days ago"},
		{"just_under_week", 604_799_999, "6 days ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatRelative(now-tc.diff, now); got != tc.want {
				t.Fatalf("diff %d: got %q, want %q", tc.diff, got, tc.want)
			}
		})
	}
}

func TestFormatRelativeFallsBackToShortDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	ts := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC).UnixMilli()

	want := time.UnixMilli(ts).Format("Jan 2")
	if got := FormatRelative(ts, now); got != want {
		t.Fatalf("expected short date %q, got %q", want, got)
	}
}

func TestFormatRelativeFutureTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	// A slightly future timestamp (negative diff) still reads "Just now".
	if got := FormatRelative(now+5_000, now); got != "Just now" {
		t.Fatalf("expected Just now for future timestamp, got %q", got)
	}
}
