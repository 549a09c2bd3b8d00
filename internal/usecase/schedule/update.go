package schedule

import (
	"context"
	"errors"

	"github.com/v322/healthsync/internal/audit"
	"github.com/v322/healthsync/internal/cache"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/models"
)

// AppointmentPatch carries a partial update; nil fields are left untouched.
type AppointmentPatch struct {
	PatientID     *string `json:"patient_id"`
	DoctorID      *string `json:"doctor_id"`
	Date          *string `json:"date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Type          *string `json:"type"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	Diagnosis     *string `json:"diagnosis"`
	TreatmentPlan *string `json:"treatment_plan"`
}

type UpdateAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewUpdateAppointment(
	store domain.Store,
	auditor *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *UpdateAppointment {
	return &UpdateAppointment{
		store: store,
		audit: auditor,
		cache: slotCache,
	}
}

// Execute merges the patch into the stored appointment field by field.
// Date, times and doctor can be moved without re-running the availability or
// conflict checks; callers that care must re-validate themselves. Status is
// applied verbatim, so a patch may set values outside the lifecycle enum.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	patch AppointmentPatch,
) (*models.Appointment, error) {

	ap, err := uc.store.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	prevDoctorID := ap.DoctorID
	prevDate := ap.Date

	if patch.PatientID != nil {
		ap.PatientID = *patch.PatientID
	}
	if patch.DoctorID != nil {
		ap.DoctorID = *patch.DoctorID
	}
	if patch.Date != nil {
		ap.Date = *patch.Date
	}
	if patch.StartTime != nil {
		ap.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		ap.EndTime = *patch.EndTime
	}
	if patch.Type != nil {
		ap.Type = *patch.Type
	}
	if patch.Status != nil {
		ap.Status = *patch.Status
	}
	if patch.Notes != nil {
		ap.Notes = *patch.Notes
	}
	if patch.Diagnosis != nil {
		ap.Diagnosis = *patch.Diagnosis
	}
	if patch.TreatmentPlan != nil {
		ap.TreatmentPlan = *patch.TreatmentPlan
	}

	if err := uc.store.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, prevDoctorID, prevDate)
	if ap.DoctorID != prevDoctorID || ap.Date != prevDate {
		uc.cache.Invalidate(ctx, ap.DoctorID, ap.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_updated",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
