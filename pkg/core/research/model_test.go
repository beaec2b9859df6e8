package research

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"not yet started", "2024-07-01", "2024-12-31", StatusPending},
		{"already finished", "2024-01-01", "2024-05-31", StatusCompleted},
		{"in flight", "2024-05-01", "2024-07-01", StatusActive},
		{"starts today", "2024-06-01", "2024-07-01", StatusActive},
		{"ends today", "2024-05-01", "2024-06-01", StatusActive},
		{"unparseable start", "soon", "2024-12-31", StatusActive},
		{"unparseable end", "2024-01-01", "someday", StatusActive},
		{"both empty", "", "", StatusActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(today, tc.start, tc.end); got != tc.want {
				t.Fatalf("DeriveStatus(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestDeriveStatusEastOfUTC(t *testing.T) {
	// shortly after midnight in UTC+10 it is still the previous day in UTC;
	// the calendar date of the caller's zone is what counts
	today := time.Date(2024, 6, 1, 0, 30, 0, 0, time.FixedZone("AEST", 10*3600))

	if got := DeriveStatus(today, "2024-06-01", "2024-06-30"); got != StatusActive {
		t.Fatalf("project starting today = %q, want %q", got, StatusActive)
	}
	if got := DeriveStatus(today, "2024-05-01", "2024-05-31"); got != StatusCompleted {
		t.Fatalf("project ended yesterday = %q, want %q", got, StatusCompleted)
	}
	if got := DeriveStatus(today, "2024-06-02", "2024-06-30"); got != StatusPending {
		t.Fatalf("project starting tomorrow = %q, want %q", got, StatusPending)
	}
}
