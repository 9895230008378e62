package services

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "<1 min"},
		{59, "<1 min"},
		{60, "1 min"},
		{845, "14 min"},
		{3599, "1 hr"},
		{3600, "1 hr"},
		{7500, "2 hr 5 min"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters int
		want   string
	}{
		{0, "0 m"},
		{850, "850 m"},
		{1000, "1.0 km"},
		{12437, "12.4 km"},
	}

	for _, tc := range cases {
		if got := FormatDistance(tc.meters); got != tc.want {
			t.Fatalf("FormatDistance(%d) = %q, want %q", tc.meters, got, tc.want)
		}
	}
}
