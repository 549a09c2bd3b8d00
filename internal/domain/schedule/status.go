package schedule

import (
	"time"

	"github.com/v322/healthsync/internal/models"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusScheduled
}

// Cancel moves an appointment to CANCELLED. The transition is deliberately
// unguarded: it succeeds from any status and is repeatable, so cancelling an
// already cancelled or completed appointment is a no-op rather than an error.
func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

// Complete records the consultation outcome and moves the appointment to
// COMPLETED. Like Cancel it is unguarded and repeatable; each call overwrites
// the previous diagnosis, treatment plan and notes.
func Complete(ap *models.Appointment, diagnosis, treatmentPlan, notes string, now time.Time) {
	ap.Diagnosis = diagnosis
	ap.TreatmentPlan = treatmentPlan
	ap.Notes = notes
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
}
