package schedule

import (
	"time"

	"github.com/v322/healthsync/internal/models"
)

// ConflictPolicy selects which stored appointments participate in conflict
// checks.
type ConflictPolicy int

const (
	// ConflictAllStatuses tests against every appointment on the doctor's
	// day, regardless of status. Cancelled and completed appointments keep
	// blocking their slot. Default.
	ConflictAllStatuses ConflictPolicy = iota

	// ConflictActiveOnly tests against SCHEDULED appointments only.
	ConflictActiveOnly
)

func (p ConflictPolicy) includes(status string) bool {
	if p == ConflictActiveOnly {
		return status == string(StatusScheduled)
	}
	return true
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. An interval ending exactly when the other starts
// does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ConflictsWithAny reports whether [start, end) overlaps any appointment in
// existing that the policy admits. Appointments with unparseable clock values
// are skipped.
func ConflictsWithAny(start, end time.Time, existing []models.Appointment, policy ConflictPolicy) bool {
	for _, ap := range existing {
		if !policy.includes(ap.Status) {
			continue
		}

		apStart, err := ParseClock(ap.StartTime)
		if err != nil {
			continue
		}
		apEnd, err := ParseClock(ap.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(start, end, apStart, apEnd) {
			return true
		}
	}
	return false
}

// WithinAnyWindow reports whether some availability window fully contains
// [start, end). Containment is boundary-inclusive: a booking may start at the
// window's start and end at the window's end.
func WithinAnyWindow(start, end time.Time, windows []models.AvailabilityWindow) bool {
	for _, w := range windows {
		wStart, err := ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		wEnd, err := ParseClock(w.EndTime)
		if err != nil {
			continue
		}

		if !start.Before(wStart) && !end.After(wEnd) {
			return true
		}
	}
	return false
}
