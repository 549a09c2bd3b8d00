package schedule

import (
	"testing"
	"time"

	"github.com/v322/healthsync/internal/models"
)

func TestCancelFromAnyStatus(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusScheduled, StatusCancelled, StatusCompleted} {
		ap := models.Appointment{Status: string(from)}
		Cancel(&ap, now)

		if ap.Status != string(StatusCancelled) {
			t.Errorf("cancel from %s: status = %s, want CANCELLED", from, ap.Status)
		}
		if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
			t.Errorf("cancel from %s: CancelledAt not stamped", from)
		}
	}
}

func TestCancelRepeatable(t *testing.T) {
	ap := models.Appointment{Status: string(StatusScheduled)}

	Cancel(&ap, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	second := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	Cancel(&ap, second)

	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", ap.Status)
	}
	if !ap.CancelledAt.Equal(second) {
		t.Error("repeated cancel should restamp CancelledAt")
	}
}

func TestCompleteOverwritesOutcome(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ap := models.Appointment{Status: string(StatusScheduled)}

	Complete(&ap, "flu", "rest", "follow up in a week", now)
	Complete(&ap, "pneumonia", "antibiotics", "", now.Add(time.Hour))

	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %s, want COMPLETED", ap.Status)
	}
	if ap.Diagnosis != "pneumonia" || ap.TreatmentPlan != "antibiotics" {
		t.Errorf("second consultation must overwrite the first, got diagnosis=%q plan=%q", ap.Diagnosis, ap.TreatmentPlan)
	}
	if ap.Notes != "" {
		t.Errorf("notes = %q, want empty after overwrite", ap.Notes)
	}
}

func TestCompleteAfterCancel(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ap := models.Appointment{Status: string(StatusCancelled)}

	Complete(&ap, "flu", "rest", "", now)

	if ap.Status != string(StatusCompleted) {
		t.Errorf("consultation on a cancelled appointment should still complete it, got %s", ap.Status)
	}
}
