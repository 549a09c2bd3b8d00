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

type CancelAppointment struct {
	store domain.Store
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewCancelAppointment(
	store domain.Store,
	auditor *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *CancelAppointment {
	return &CancelAppointment{
		store: store,
		audit: auditor,
		cache: slotCache,
	}
}

// Execute cancels the appointment unconditionally. Cancelling twice is fine;
// the second call succeeds and leaves the status CANCELLED.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.store.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	domain.Cancel(ap, time.Now())

	if err := uc.store.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.DoctorID, ap.Date)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
