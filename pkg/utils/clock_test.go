package utils

import (
	"testing"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"09:30", 570, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ClockMinutes(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ClockMinutes(%q): expected error", tc.clock)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClockMinutes(%q): unexpected error %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestMinutesClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{570, "09:30"},
		{630, "10:30"},
		{1439, "23:59"},
		{1440, "00:00"},
	}

	for _, tc := range cases {
		if got := MinutesClock(tc.minutes); got != tc.want {
			t.Errorf("MinutesClock(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFilterSlice(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	got := FilterSlice(src, func(n int) (int, bool) {
		return n * 10, n%2 == 1
	})
	if len(got) != 3 || got[0] != 10 || got[1] != 30 || got[2] != 50 {
		t.Errorf("FilterSlice = %v, want [10 30 50]", got)
	}
}
