package schedule

import (
	"testing"
	"time"

	"github.com/v322/healthsync/internal/models"
)

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return v
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "09:30", "09:00", "09:30", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "11:00", "09:30", "10:00", true},
		{"touching boundaries do not overlap", "09:00", "09:30", "09:30", "10:00", false},
		{"touching boundaries reversed", "09:30", "10:00", "09:00", "09:30", false},
		{"disjoint", "09:00", "09:30", "11:00", "11:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(
				mustClock(t, tc.aStart), mustClock(t, tc.aEnd),
				mustClock(t, tc.bStart), mustClock(t, tc.bEnd),
			)
			if got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}

			// overlap is symmetric
			rev := Overlaps(
				mustClock(t, tc.bStart), mustClock(t, tc.bEnd),
				mustClock(t, tc.aStart), mustClock(t, tc.aEnd),
			)
			if rev != got {
				t.Errorf("Overlaps is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestConflictsWithAnyPolicy(t *testing.T) {
	existing := []models.Appointment{
		{StartTime: "09:00", EndTime: "09:30", Status: string(StatusCancelled)},
	}

	start := mustClock(t, "09:00")
	end := mustClock(t, "09:30")

	if !ConflictsWithAny(start, end, existing, ConflictAllStatuses) {
		t.Error("default policy should treat cancelled appointments as blocking")
	}
	if ConflictsWithAny(start, end, existing, ConflictActiveOnly) {
		t.Error("active-only policy should ignore cancelled appointments")
	}
}

func TestConflictsWithAnySkipsMalformedTimes(t *testing.T) {
	existing := []models.Appointment{
		{StartTime: "garbage", EndTime: "09:30", Status: string(StatusScheduled)},
	}

	if ConflictsWithAny(mustClock(t, "09:00"), mustClock(t, "09:30"), existing, ConflictAllStatuses) {
		t.Error("appointments with unparseable times should not count as conflicts")
	}
}

func TestWithinAnyWindow(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "14:00", EndTime: "17:00"},
	}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"fully inside first window", "10:00", "11:00", true},
		{"exact window bounds", "09:00", "12:00", true},
		{"starts at window start", "09:00", "09:30", true},
		{"ends at window end", "16:30", "17:00", true},
		{"spans the gap", "11:30", "14:30", false},
		{"before opening", "08:00", "08:30", false},
		{"runs past closing", "16:45", "17:15", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WithinAnyWindow(mustClock(t, tc.start), mustClock(t, tc.end), windows)
			if got != tc.want {
				t.Errorf("WithinAnyWindow(%s-%s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestWithinAnyWindowNoWindows(t *testing.T) {
	if WithinAnyWindow(mustClock(t, "09:00"), mustClock(t, "09:30"), nil) {
		t.Error("no windows should mean not available")
	}
}
