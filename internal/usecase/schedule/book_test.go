package schedule

import (
	"context"
	"sync"
	"testing"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/infra/repository"
	"github.com/v322/healthsync/internal/models"
)

func seededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()

	store := repository.NewMemoryStore()
	store.AddAvailability(models.AvailabilityWindow{
		ID:        "SLOT-w1",
		DoctorID:  "DOC-1",
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	return store
}

func bookInput(start, end string) BookAppointmentInput {
	return BookAppointmentInput{
		PatientID: "PAT-1",
		DoctorID:  "DOC-1",
		Date:      "2025-06-02", // a Monday
		StartTime: start,
		EndTime:   end,
		Type:      "CONSULTATION",
	}
}

func TestBookAppointment(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)

	ap, err := uc.Execute(context.Background(), bookInput("10:00", "10:30"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.ID == "" {
		t.Error("expected a generated appointment id")
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %s, want SCHEDULED", ap.Status)
	}
}

func TestBookAppointmentAtWindowBoundaries(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)
	ctx := context.Background()

	// both edges of a 09:00-17:00 window are bookable
	if _, err := uc.Execute(ctx, bookInput("09:00", "09:30")); err != nil {
		t.Errorf("booking first slot of window: %v", err)
	}
	if _, err := uc.Execute(ctx, bookInput("16:30", "17:00")); err != nil {
		t.Errorf("booking last slot of window: %v", err)
	}
}

func TestBookAppointmentInvalidTimeRange(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)
	ctx := context.Background()

	cases := []struct {
		name       string
		start, end string
	}{
		{"inverted", "11:00", "10:00"},
		{"zero length", "10:00", "10:00"},
		{"malformed start", "ten", "10:30"},
		{"malformed end", "10:00", "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, bookInput(tc.start, tc.end))
			if !httperr.IsBusiness(err, httperr.CodeInvalidTimeRange) {
				t.Errorf("err = %v, want invalid_time_range", err)
			}
		})
	}
}

func TestBookAppointmentInvalidDate(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)

	in := bookInput("10:00", "10:30")
	in.Date = "06/02/2025"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeInvalidDate) {
		t.Errorf("err = %v, want invalid_date", err)
	}
}

func TestBookAppointmentOutsideAvailability(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)
	ctx := context.Background()

	cases := []struct {
		name       string
		start, end string
	}{
		{"before window", "08:00", "08:30"},
		{"straddles start", "08:45", "09:15"},
		{"straddles end", "16:45", "17:15"},
		{"after window", "18:00", "18:30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, bookInput(tc.start, tc.end))
			if !httperr.IsBusiness(err, httperr.CodeDoctorUnavailable) {
				t.Errorf("err = %v, want doctor_unavailable", err)
			}
		})
	}
}

func TestBookAppointmentNoWindowsForDay(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)

	in := bookInput("10:00", "10:30")
	in.Date = "2025-06-03" // Tuesday, no windows seeded

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeDoctorUnavailable) {
		t.Errorf("err = %v, want doctor_unavailable", err)
	}
}

func TestBookAppointmentConflict(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, bookInput("10:00", "10:30")); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := uc.Execute(ctx, bookInput("10:15", "10:45"))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Errorf("err = %v, want time_conflict", err)
	}

	// back to back does not conflict
	if _, err := uc.Execute(ctx, bookInput("10:30", "11:00")); err != nil {
		t.Errorf("adjacent booking: %v", err)
	}
}

func TestBookAppointmentCancelledStillBlocks(t *testing.T) {
	store := seededStore(t)
	book := NewBookAppointment(store, domain.ConflictAllStatuses, nil, nil)
	cancel := NewCancelAppointment(store, nil, nil)
	ctx := context.Background()

	ap, err := book.Execute(ctx, bookInput("10:00", "10:30"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := cancel.Execute(ctx, ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err = book.Execute(ctx, bookInput("10:00", "10:30"))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Errorf("err = %v, want time_conflict: cancelled appointments hold their slot", err)
	}
}

func TestBookAppointmentActiveOnlyFreesCancelledSlot(t *testing.T) {
	store := seededStore(t)
	book := NewBookAppointment(store, domain.ConflictActiveOnly, nil, nil)
	cancel := NewCancelAppointment(store, nil, nil)
	ctx := context.Background()

	ap, err := book.Execute(ctx, bookInput("10:00", "10:30"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := cancel.Execute(ctx, ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := book.Execute(ctx, bookInput("10:00", "10:30")); err != nil {
		t.Errorf("rebooking a cancelled slot under active-only policy: %v", err)
	}
}

func TestBookAppointmentConcurrentSameSlot(t *testing.T) {
	uc := NewBookAppointment(seededStore(t), domain.ConflictAllStatuses, nil, nil)
	ctx := context.Background()

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, bookInput("14:00", "14:30"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, httperr.CodeTimeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Errorf("%d bookings committed for the same slot, want exactly 1", ok)
	}
	if conflicts != workers-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, workers-1)
	}
}
