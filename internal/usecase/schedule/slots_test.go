package schedule

import (
	"context"
	"reflect"
	"testing"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/models"
)

func TestGetAvailableSlotsEmptyCalendar(t *testing.T) {
	uc := NewGetAvailableSlots(seededStore(t), domain.ConflictAllStatuses, nil)

	slots, err := uc.Execute(context.Background(), "DOC-1", "2025-06-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(slots) != 16 {
		t.Fatalf("expected 16 free slots for an empty 09:00-17:00 day, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[15].EndTime != "17:00" {
		t.Errorf("slots span %s-%s, want 09:00-17:00", slots[0].StartTime, slots[15].EndTime)
	}
}

func TestGetAvailableSlotsExcludesBooked(t *testing.T) {
	store := seededStore(t)
	book := NewBookAppointment(store, domain.ConflictAllStatuses, nil, nil)
	uc := NewGetAvailableSlots(store, domain.ConflictAllStatuses, nil)
	ctx := context.Background()

	if _, err := book.Execute(ctx, bookInput("10:00", "10:30")); err != nil {
		t.Fatalf("book: %v", err)
	}

	slots, err := uc.Execute(ctx, "DOC-1", "2025-06-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(slots) != 15 {
		t.Errorf("expected 15 free slots after one booking, got %d", len(slots))
	}
	for _, s := range slots {
		if s.StartTime == "10:00" {
			t.Error("booked slot 10:00-10:30 still offered")
		}
	}
}

func TestGetAvailableSlotsIdempotent(t *testing.T) {
	uc := NewGetAvailableSlots(seededStore(t), domain.ConflictAllStatuses, nil)
	ctx := context.Background()

	a, err := uc.Execute(ctx, "DOC-1", "2025-06-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := uc.Execute(ctx, "DOC-1", "2025-06-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("repeated enumeration with unchanged state must return identical slots")
	}
}

func TestGetAvailableSlotsOverlappingWindows(t *testing.T) {
	store := seededStore(t)
	store.AddAvailability(models.AvailabilityWindow{
		ID:        "SLOT-w2",
		DoctorID:  "DOC-1",
		DayOfWeek: "MONDAY",
		StartTime: "16:00",
		EndTime:   "18:00",
	})
	uc := NewGetAvailableSlots(store, domain.ConflictAllStatuses, nil)

	slots, err := uc.Execute(context.Background(), "DOC-1", "2025-06-02")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 16 from the first window plus 4 from the second; the 16:00-17:00
	// overlap is emitted by both windows
	if len(slots) != 20 {
		t.Errorf("expected 20 slots across overlapping windows, got %d", len(slots))
	}
}

func TestGetAvailableSlotsNoWindows(t *testing.T) {
	uc := NewGetAvailableSlots(seededStore(t), domain.ConflictAllStatuses, nil)

	slots, err := uc.Execute(context.Background(), "DOC-1", "2025-06-03")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a day without windows, got %d", len(slots))
	}
	if slots == nil {
		t.Error("expected an empty list, not nil")
	}
}

func TestGetAvailableSlotsInvalidDate(t *testing.T) {
	uc := NewGetAvailableSlots(seededStore(t), domain.ConflictAllStatuses, nil)

	_, err := uc.Execute(context.Background(), "DOC-1", "next monday")
	if !httperr.IsBusiness(err, httperr.CodeInvalidDate) {
		t.Errorf("err = %v, want invalid_date", err)
	}
}
