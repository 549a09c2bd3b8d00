package schedule

import (
	"context"

	"github.com/v322/healthsync/internal/audit"
	"github.com/v322/healthsync/internal/cache"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/models"
)

type BookAppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      string
	StartTime string
	EndTime   string
	Type      string
	Notes     string
}

type BookAppointment struct {
	store  domain.Store
	policy domain.ConflictPolicy
	audit  *audit.Dispatcher
	cache  *cache.SlotCache
}

func NewBookAppointment(
	store domain.Store,
	policy domain.ConflictPolicy,
	auditor *audit.Dispatcher,
	slotCache *cache.SlotCache,
) *BookAppointment {
	return &BookAppointment{
		store:  store,
		policy: policy,
		audit:  auditor,
		cache:  slotCache,
	}
}

// Execute validates the requested interval against the doctor's recurring
// availability and existing bookings, then persists the appointment. The
// availability read, conflict read and write all run inside Transact so two
// colliding requests cannot both commit. No retry is attempted here; on
// time_conflict the caller decides whether to re-query slots and rebook.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	start, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}
	end, err := domain.ParseClock(in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}
	if !start.Before(end) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTimeRange)
	}

	day, err := domain.DayOfWeek(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	var created *models.Appointment

	err = uc.store.Transact(ctx, func(s domain.Store) error {

		windows, err := s.FindAvailability(ctx, in.DoctorID, day)
		if err != nil {
			return err
		}
		if !domain.WithinAnyWindow(start, end, windows) {
			return httperr.ErrBusiness(httperr.CodeDoctorUnavailable)
		}

		existing, err := s.FindAppointments(ctx, in.DoctorID, in.Date)
		if err != nil {
			return err
		}
		if domain.ConflictsWithAny(start, end, existing, uc.policy) {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}

		ap := &models.Appointment{
			ID:        ids.New(ids.PrefixAppointment),
			PatientID: in.PatientID,
			DoctorID:  in.DoctorID,
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Status:    string(domain.InitialStatus()),
			Type:      in.Type,
			Notes:     in.Notes,
		}

		if err := s.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.DoctorID, in.Date)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &created.PatientID,
			Action:   "appointment_booked",
			Entity:   "appointment",
			EntityID: &created.ID,
		})
	}

	return created, nil
}
