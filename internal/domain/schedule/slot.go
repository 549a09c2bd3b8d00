package schedule

import (
	"time"

	"github.com/v322/healthsync/internal/models"
)

// SlotDuration is the fixed booking granularity.
const SlotDuration = 30 * time.Minute

// TimeSlot is an ephemeral free-slot candidate. It is computed on demand and
// never persisted.
type TimeSlot struct {
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// WindowSlots walks one availability window in SlotDuration steps and emits
// every slot that does not conflict with an existing appointment. A slot is
// emitted while its end still fits the window (start+30m <= window end).
// Windows are expanded independently: overlapping windows yield overlapping
// or duplicate slots.
func WindowSlots(w models.AvailabilityWindow, date string, existing []models.Appointment, policy ConflictPolicy) []TimeSlot {
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return nil
	}
	if !start.Before(end) {
		return nil
	}

	var slots []TimeSlot
	for cur := start; !cur.Add(SlotDuration).After(end); cur = cur.Add(SlotDuration) {
		slotEnd := cur.Add(SlotDuration)

		if ConflictsWithAny(cur, slotEnd, existing, policy) {
			continue
		}

		slots = append(slots, TimeSlot{
			DoctorID:  w.DoctorID,
			Date:      date,
			StartTime: FormatClock(cur),
			EndTime:   FormatClock(slotEnd),
		})
	}

	return slots
}
