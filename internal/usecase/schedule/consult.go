package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/v322/healthsync/internal/audit"
	"github.com/v322/healthsync/internal/cache"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/models"
)

type ConductConsultationInput struct {
	Diagnosis     string
	TreatmentPlan string
	Notes         string
}

type ConductConsultation struct {
	store domain.Store
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewConductConsultation(
	store domain.Store,
	auditor *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *ConductConsultation {
	return &ConductConsultation{
		store: store,
		audit: auditor,
		cache: slotCache,
	}
}

// Execute records the consultation outcome and marks the appointment
// COMPLETED. Repeatable: a later call overwrites the earlier diagnosis,
// treatment plan and notes.
func (uc *ConductConsultation) Execute(
	ctx context.Context,
	appointmentID string,
	in ConductConsultationInput,
) (*models.Appointment, error) {

	ap, err := uc.store.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	domain.Complete(ap, in.Diagnosis, in.TreatmentPlan, in.Notes, time.Now())

	if err := uc.store.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.DoctorID, ap.Date)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "consultation_recorded",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
