package schedule

import (
	"context"
	"errors"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/models"
)

type GetAppointment struct {
	store domain.Store
}

func NewGetAppointment(store domain.Store) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(
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

	return ap, nil
}
